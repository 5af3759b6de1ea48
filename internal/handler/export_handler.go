package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/sgpa-records-api/internal/service"
	"github.com/noah-isme/sgpa-records-api/pkg/response"
)

type exportService interface {
	Render(ctx context.Context, format service.ExportFormat) (*service.ExportFile, error)
}

// ExportHandler serves record collection downloads.
type ExportHandler struct {
	exports exportService
}

// NewExportHandler constructs handler.
func NewExportHandler(exports exportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Download godoc
// @Summary Download the record collection as CSV or PDF
// @Tags Records
// @Produce octet-stream
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} binary
// @Router /records/export [get]
func (h *ExportHandler) Download(c *gin.Context) {
	file, err := h.exports.Render(c.Request.Context(), service.ExportFormat(c.Query("format")))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
