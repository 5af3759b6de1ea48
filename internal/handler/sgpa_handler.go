package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sgpa-records-api/internal/dto"
	appErrors "github.com/noah-isme/sgpa-records-api/pkg/errors"
	"github.com/noah-isme/sgpa-records-api/pkg/response"
)

type sgpaService interface {
	Compute(req dto.ComputeSGPARequest) (*dto.ComputeSGPAResponse, error)
}

// SGPAHandler exposes the weighted-average preview endpoint.
type SGPAHandler struct {
	sgpa sgpaService
}

// NewSGPAHandler constructs handler.
func NewSGPAHandler(sgpa sgpaService) *SGPAHandler {
	return &SGPAHandler{sgpa: sgpa}
}

// Compute godoc
// @Summary Compute SGPA and credit total from subject rows
// @Tags SGPA
// @Accept json
// @Produce json
// @Param payload body dto.ComputeSGPARequest true "Subject rows"
// @Success 200 {object} response.Envelope
// @Router /sgpa/compute [post]
func (h *SGPAHandler) Compute(c *gin.Context) {
	var req dto.ComputeSGPARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.sgpa.Compute(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
