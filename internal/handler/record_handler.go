package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sgpa-records-api/internal/dto"
	"github.com/noah-isme/sgpa-records-api/internal/models"
	appErrors "github.com/noah-isme/sgpa-records-api/pkg/errors"
	"github.com/noah-isme/sgpa-records-api/pkg/response"
)

type recordService interface {
	Create(ctx context.Context, req dto.CreateRecordRequest) (*dto.CreateRecordResponse, error)
	List(ctx context.Context) ([]models.Record, error)
	Delete(ctx context.Context, id string) (*dto.DeleteRecordResponse, error)
}

// RecordHandler exposes record submission endpoints.
type RecordHandler struct {
	records recordService
}

// NewRecordHandler constructs handler.
func NewRecordHandler(records recordService) *RecordHandler {
	return &RecordHandler{records: records}
}

// Create godoc
// @Summary Submit a computed SGPA record
// @Tags Records
// @Accept json
// @Produce json
// @Param payload body dto.CreateRecordRequest true "Submission payload"
// @Success 201 {object} response.Envelope
// @Router /records [post]
func (h *RecordHandler) Create(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.records.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List godoc
// @Summary List all stored records in creation order
// @Tags Records
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /records [get]
func (h *RecordHandler) List(c *gin.Context) {
	records, err := h.records.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Delete godoc
// @Summary Delete a record by id
// @Tags Records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Envelope
// @Router /records/{id} [delete]
func (h *RecordHandler) Delete(c *gin.Context) {
	result, err := h.records.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
