package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sgpa-records-api/internal/models"
	"github.com/noah-isme/sgpa-records-api/pkg/response"
)

type statsService interface {
	Summary(ctx context.Context) (*models.StatsSummary, error)
}

// StatsHandler exposes the aggregate statistics endpoint.
type StatsHandler struct {
	stats statsService
}

// NewStatsHandler constructs handler.
func NewStatsHandler(stats statsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Summary godoc
// @Summary Aggregate statistics over all stored records
// @Tags Records
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /records/stats [get]
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.stats.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}
