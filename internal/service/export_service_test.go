package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/sgpa-records-api/pkg/errors"
)

func TestExportServiceRendersCSVByDefault(t *testing.T) {
	svc := NewExportService(&staticLister{records: recordsWithSGPA(8.75)}, nil)

	file, err := svc.Render(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "text/csv", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".csv"))
	content := string(file.Content)
	assert.Contains(t, content, "ID,Student,Email,SGPA")
	assert.Contains(t, content, "8.75")
}

func TestExportServiceRendersPDF(t *testing.T) {
	svc := NewExportService(&staticLister{records: recordsWithSGPA(7.0, 9.1)}, nil)

	file, err := svc.Render(context.Background(), ExportPDF)
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Content), "%PDF"))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := NewExportService(&staticLister{}, nil)

	_, err := svc.Render(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
