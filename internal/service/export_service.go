package service

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sgpa-records-api/internal/models"
	appErrors "github.com/noah-isme/sgpa-records-api/pkg/errors"
	"github.com/noah-isme/sgpa-records-api/pkg/export"
)

// ExportFormat names a supported export rendering.
type ExportFormat string

const (
	ExportCSV ExportFormat = "csv"
	ExportPDF ExportFormat = "pdf"
)

// ExportFile is a rendered document ready to be served as a download.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the current record collection into tabular documents.
type ExportService struct {
	records recordLister
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService constructs ExportService.
func NewExportService(records recordLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		records: records,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
		now:     time.Now,
	}
}

// Render produces the record table in the requested format.
func (s *ExportService) Render(ctx context.Context, format ExportFormat) (*ExportFile, error) {
	if format == "" {
		format = ExportCSV
	}
	if format != ExportCSV && format != ExportPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format, expected csv or pdf")
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	dataset := recordDataset(records)
	stamp := s.now().UTC().Format("20060102-150405")

	switch format {
	case ExportPDF:
		content, err := s.pdf.Render(dataset, "SGPA Records")
		if err != nil {
			s.logger.Error("pdf export failed", zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "export rendering failed")
		}
		return &ExportFile{Content: content, ContentType: "application/pdf", Filename: "sgpa-records-" + stamp + ".pdf"}, nil
	default:
		content, err := s.csv.Render(dataset)
		if err != nil {
			s.logger.Error("csv export failed", zap.Error(err))
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "export rendering failed")
		}
		return &ExportFile{Content: content, ContentType: "text/csv", Filename: "sgpa-records-" + stamp + ".csv"}, nil
	}
}

func recordDataset(records []models.Record) export.Dataset {
	dataset := export.Dataset{
		Headers: []string{"ID", "Student", "Email", "SGPA", "Total Credits", "Submitted At", "Created At"},
	}
	for _, rec := range records {
		dataset.Rows = append(dataset.Rows, []string{
			rec.ID,
			rec.StudentName,
			rec.StudentEmail,
			strconv.FormatFloat(rec.SGPA, 'f', -1, 64),
			strconv.FormatFloat(rec.TotalCredits, 'f', -1, 64),
			rec.SubmittedAt,
			rec.CreatedAt.Format(time.RFC3339),
		})
	}
	return dataset
}
