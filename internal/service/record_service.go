package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sgpa-records-api/internal/dto"
	"github.com/noah-isme/sgpa-records-api/internal/models"
	"github.com/noah-isme/sgpa-records-api/internal/repository"
	"github.com/noah-isme/sgpa-records-api/pkg/config"
	appErrors "github.com/noah-isme/sgpa-records-api/pkg/errors"
)

type recordRepo interface {
	Create(ctx context.Context, rec models.Record) (models.Record, int, error)
	List(ctx context.Context) ([]models.Record, error)
	Delete(ctx context.Context, id string) (int, error)
}

type storeObserver interface {
	ObserveStoreOperation(op string, duration time.Duration)
	SetRecordsTotal(count int)
}

// RecordService validates submissions and owns the create/list/delete flows
// over the durable record collection.
type RecordService struct {
	records   recordRepo
	metrics   storeObserver
	validator *validator.Validate
	logger    *zap.Logger
	cfg       config.RecordsConfig
}

// NewRecordService constructs RecordService.
func NewRecordService(records recordRepo, metrics storeObserver, validate *validator.Validate, logger *zap.Logger, cfg config.RecordsConfig) *RecordService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.EmailSuffix = strings.ToLower(strings.TrimSpace(cfg.EmailSuffix))
	if cfg.EmailSuffix == "" {
		cfg.EmailSuffix = "@kiit.ac.in"
	}
	return &RecordService{
		records:   records,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// Create validates the submission, persists it and returns the assigned id
// with the new collection size. A rejected or failed create leaves the stored
// collection exactly as it was.
func (s *RecordService) Create(ctx context.Context, req dto.CreateRecordRequest) (*dto.CreateRecordResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	rec := models.Record{
		StudentName:  strings.TrimSpace(req.Name),
		StudentEmail: strings.TrimSpace(req.Email),
		SGPA:         float64(*req.SGPA),
		Subjects:     toSubjectGrades(req.Subjects),
		SubmittedAt:  strings.TrimSpace(req.Timestamp),
	}
	if req.TotalCredits != nil {
		rec.TotalCredits = float64(*req.TotalCredits)
	}

	start := time.Now()
	stored, count, err := s.records.Create(ctx, rec)
	if err != nil {
		s.logger.Error("record create failed", zap.Error(err))
		return nil, mapStoreError(err)
	}
	s.observe("create", start, count)

	s.logger.Info("record created",
		zap.String("id", stored.ID),
		zap.Float64("sgpa", stored.SGPA),
		zap.Int("count", count),
	)
	return &dto.CreateRecordResponse{ID: stored.ID, Count: count}, nil
}

// List returns all records in creation order.
func (s *RecordService) List(ctx context.Context) ([]models.Record, error) {
	start := time.Now()
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	s.observe("list", start, len(records))
	return records, nil
}

// Delete removes one record by id and returns the new collection size.
func (s *RecordService) Delete(ctx context.Context, id string) (*dto.DeleteRecordResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "record id is required")
	}

	start := time.Now()
	count, err := s.records.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("no record with id %s", id))
		}
		s.logger.Error("record delete failed", zap.String("id", id), zap.Error(err))
		return nil, mapStoreError(err)
	}
	s.observe("delete", start, count)

	s.logger.Info("record deleted", zap.String("id", id), zap.Int("count", count))
	return &dto.DeleteRecordResponse{Count: count}, nil
}

func (s *RecordService) validate(req dto.CreateRecordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := strings.ToLower(verrs[0].Field())
			return appErrors.Clone(appErrors.ErrValidation, field+" is required")
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "name is required")
	}
	if req.SGPA == nil {
		return appErrors.Clone(appErrors.ErrValidation, "sgpa is required")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.HasSuffix(email, s.cfg.EmailSuffix) {
		return appErrors.Clone(appErrors.ErrValidation, "email must end with "+s.cfg.EmailSuffix)
	}

	sgpa := float64(*req.SGPA)
	if s.cfg.StrictSGPARange && (sgpa < 0 || sgpa > 10) {
		return appErrors.Clone(appErrors.ErrValidation, "sgpa must be between 0 and 10")
	}

	if req.TotalCredits != nil && float64(*req.TotalCredits) < 0 {
		return appErrors.Clone(appErrors.ErrValidation, "totalCredits must not be negative")
	}

	for _, subject := range req.Subjects {
		if subject.Credits < 0 {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("subject %q has negative credits", subject.Subject))
		}
		if subject.Grade != "" && !models.GradeLetter(subject.Grade).Valid() {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown grade letter %q for subject %q", subject.Grade, subject.Subject))
		}
	}
	return nil
}

func (s *RecordService) observe(op string, start time.Time, count int) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveStoreOperation(op, time.Since(start))
	s.metrics.SetRecordsTotal(count)
}

func toSubjectGrades(inputs []dto.SubjectGradeInput) []models.SubjectGrade {
	subjects := make([]models.SubjectGrade, 0, len(inputs))
	for _, in := range inputs {
		subjects = append(subjects, models.SubjectGrade{
			Subject: strings.TrimSpace(in.Subject),
			Credits: float64(in.Credits),
			Grade:   models.GradeLetter(in.Grade),
		})
	}
	return subjects
}

// mapStoreError converts repository failures into API errors without leaking
// storage details to clients.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, repository.ErrCorrupt):
		return appErrors.Wrap(err, appErrors.ErrCorruptState.Code, appErrors.ErrCorruptState.Status, appErrors.ErrCorruptState.Message)
	default:
		return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, appErrors.ErrPersistence.Message)
	}
}
