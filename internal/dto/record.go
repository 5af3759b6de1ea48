package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// Numeric accepts a JSON number or a numeric string ("8.75"). The submission
// form posts either depending on browser, so both decode to the same value.
type Numeric float64

// UnmarshalJSON implements flexible numeric decoding.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("value %s is not numeric", raw)
		}
		raw = strings.TrimSpace(unquoted)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("value %q is not numeric", raw)
	}
	*n = Numeric(value)
	return nil
}

// SubjectGradeInput is one subject row of a submission or compute request.
// An empty grade marks an optional subject that was not taken.
type SubjectGradeInput struct {
	Subject string  `json:"subject"`
	Credits Numeric `json:"credits"`
	Grade   string  `json:"grade"`
}

// CreateRecordRequest is the submission payload delivered by the form client.
type CreateRecordRequest struct {
	Name         string              `json:"name" validate:"required"`
	Email        string              `json:"email" validate:"required"`
	SGPA         *Numeric            `json:"sgpa"`
	TotalCredits *Numeric            `json:"totalCredits"`
	Subjects     []SubjectGradeInput `json:"subjects"`
	Timestamp    string              `json:"timestamp"`
}

// CreateRecordResponse reports the assigned id and the new collection size.
type CreateRecordResponse struct {
	ID    string `json:"id"`
	Count int    `json:"count"`
}

// DeleteRecordResponse reports the collection size after removal.
type DeleteRecordResponse struct {
	Count int `json:"count"`
}

// ComputeSGPARequest asks for a weighted average over subject rows.
type ComputeSGPARequest struct {
	Subjects []SubjectGradeInput `json:"subjects" validate:"required"`
}

// ComputeSGPAResponse carries the computed average and credit total.
type ComputeSGPAResponse struct {
	SGPA         float64 `json:"sgpa"`
	TotalCredits float64 `json:"total_credits"`
}
