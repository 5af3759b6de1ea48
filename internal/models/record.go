package models

import "time"

// GradeLetter is a letter grade on the institutional 10-point scale.
type GradeLetter string

const (
	GradeO GradeLetter = "O"
	GradeE GradeLetter = "E"
	GradeA GradeLetter = "A"
	GradeB GradeLetter = "B"
	GradeC GradeLetter = "C"
	GradeD GradeLetter = "D"
)

// GradePoints maps letter grades to their integer grade-point values.
var GradePoints = map[GradeLetter]float64{
	GradeO: 10,
	GradeE: 9,
	GradeA: 8,
	GradeB: 7,
	GradeC: 6,
	GradeD: 5,
}

// Valid reports whether the letter belongs to the grading scale.
func (g GradeLetter) Valid() bool {
	_, ok := GradePoints[g]
	return ok
}

// SubjectGrade is one subject's contribution to an SGPA submission. An empty
// Grade marks an optional subject that was not taken.
type SubjectGrade struct {
	Subject string      `json:"subject"`
	Credits float64     `json:"credits"`
	Grade   GradeLetter `json:"grade,omitempty"`
}

// Taken reports whether the subject carries a grade.
func (s SubjectGrade) Taken() bool {
	return s.Grade != ""
}

// Record is one persisted SGPA submission. ID and CreatedAt are assigned by
// the store at creation time and never change afterwards.
type Record struct {
	ID           string         `json:"id"`
	StudentName  string         `json:"student_name"`
	StudentEmail string         `json:"student_email"`
	SGPA         float64        `json:"sgpa"`
	TotalCredits float64        `json:"total_credits"`
	Subjects     []SubjectGrade `json:"subjects"`
	SubmittedAt  string         `json:"submitted_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// StatsSummary aggregates the full record collection.
type StatsSummary struct {
	TotalRecords      int                 `json:"total_records"`
	AverageSGPA       float64             `json:"average_sgpa"`
	HighestSGPA       float64             `json:"highest_sgpa"`
	LowestSGPA        float64             `json:"lowest_sgpa"`
	GradeDistribution map[GradeLetter]int `json:"grade_distribution"`
	RecentRecords     []Record            `json:"recent_records"`
}

// BucketFor classifies an aggregate SGPA into a letter-grade bucket. The
// thresholds are coarser than the per-subject scale on purpose: they grade
// the semester average, not a single subject.
func BucketFor(sgpa float64) GradeLetter {
	switch {
	case sgpa >= 9.5:
		return GradeO
	case sgpa >= 8.5:
		return GradeE
	case sgpa >= 7.5:
		return GradeA
	case sgpa >= 6.5:
		return GradeB
	case sgpa >= 5.5:
		return GradeC
	default:
		return GradeD
	}
}
