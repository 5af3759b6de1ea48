package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/sgpa-records-api/internal/dto"
	"github.com/noah-isme/sgpa-records-api/internal/models"
	appErrors "github.com/noah-isme/sgpa-records-api/pkg/errors"
)

// SGPAService computes credit-weighted grade averages. It is pure: no state,
// no storage access.
type SGPAService struct {
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSGPAService constructs SGPAService.
func NewSGPAService(validate *validator.Validate, logger *zap.Logger) *SGPAService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SGPAService{validator: validate, logger: logger}
}

// Compute folds the subject rows into an SGPA and a credit total.
func (s *SGPAService) Compute(req dto.ComputeSGPARequest) (*dto.ComputeSGPAResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid compute payload")
	}

	sgpa, credits, err := weightedAverage(req.Subjects)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return &dto.ComputeSGPAResponse{SGPA: sgpa, TotalCredits: credits}, nil
}

// weightedAverage implements the grading contract: each graded subject
// contributes gradePoint × credits, ungraded (not taken) subjects are
// excluded from numerator and denominator alike. A zero denominator is an
// error, never a NaN result.
func weightedAverage(subjects []dto.SubjectGradeInput) (float64, float64, error) {
	var points, credits float64
	for _, subject := range subjects {
		if subject.Credits < 0 {
			return 0, 0, fmt.Errorf("subject %q has negative credits", subject.Subject)
		}
		if subject.Grade == "" {
			continue
		}
		letter := models.GradeLetter(subject.Grade)
		if !letter.Valid() {
			return 0, 0, fmt.Errorf("unknown grade letter %q for subject %q", subject.Grade, subject.Subject)
		}
		points += models.GradePoints[letter] * float64(subject.Credits)
		credits += float64(subject.Credits)
	}
	if credits == 0 {
		return 0, 0, fmt.Errorf("no graded subjects with credits to average")
	}
	return points / credits, credits, nil
}
