package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sgpa-records-api/internal/service"
	appErrors "github.com/noah-isme/sgpa-records-api/pkg/errors"
)

type exportServiceMock struct {
	file *service.ExportFile
	err  error
}

func (m *exportServiceMock) Render(context.Context, service.ExportFormat) (*service.ExportFile, error) {
	return m.file, m.err
}

func TestExportHandlerDownload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{
		file: &service.ExportFile{
			Content:     []byte("ID,Student\n"),
			ContentType: "text/csv",
			Filename:    "sgpa-records-20250601-080000.csv",
		},
	}
	h := NewExportHandler(mockSvc)

	c, w := newGinContext(http.MethodGet, "/records/export", nil)

	h.Download(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
}

func TestExportHandlerUnsupportedFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &exportServiceMock{
		err: appErrors.Clone(appErrors.ErrValidation, "unsupported export format, expected csv or pdf"),
	}
	h := NewExportHandler(mockSvc)

	c, w := newGinContext(http.MethodGet, "/records/export?format=xlsx", nil)

	h.Download(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
