package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sgpa-records-api/internal/models"
)

type staticLister struct {
	records []models.Record
	err     error
}

func (s *staticLister) List(context.Context) ([]models.Record, error) {
	return s.records, s.err
}

func recordsWithSGPA(values ...float64) []models.Record {
	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	records := make([]models.Record, 0, len(values))
	for i, v := range values {
		records = append(records, models.Record{
			ID:           fmt.Sprintf("id-%d", i+1),
			StudentName:  fmt.Sprintf("student-%d", i+1),
			StudentEmail: "s@kiit.ac.in",
			SGPA:         v,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
	}
	return records
}

func TestStatsServiceSummaryEmptyStore(t *testing.T) {
	svc := NewStatsService(&staticLister{}, 5, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalRecords)
	assert.Equal(t, 0.0, summary.AverageSGPA)
	assert.Equal(t, 0.0, summary.HighestSGPA)
	assert.Equal(t, 0.0, summary.LowestSGPA)
	assert.Empty(t, summary.GradeDistribution)
	assert.Empty(t, summary.RecentRecords)
}

func TestStatsServiceSummaryAggregates(t *testing.T) {
	svc := NewStatsService(&staticLister{records: recordsWithSGPA(9.6, 7.0, 5.0)}, 5, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 7.2, summary.AverageSGPA)
	assert.Equal(t, 9.6, summary.HighestSGPA)
	assert.Equal(t, 5.0, summary.LowestSGPA)
	assert.Equal(t, map[models.GradeLetter]int{
		models.GradeO: 1,
		models.GradeA: 1,
		models.GradeD: 1,
	}, summary.GradeDistribution)
}

func TestStatsServiceSummaryRecentRecordsMostRecentFirst(t *testing.T) {
	records := recordsWithSGPA(6, 6.5, 7, 7.5, 8, 8.5, 9)
	svc := NewStatsService(&staticLister{records: records}, 5, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.RecentRecords, 5)
	assert.Equal(t, "id-7", summary.RecentRecords[0].ID)
	assert.Equal(t, "id-3", summary.RecentRecords[4].ID)
}

func TestStatsServiceSummaryIsDeterministic(t *testing.T) {
	svc := NewStatsService(&staticLister{records: recordsWithSGPA(8.1, 9.9)}, 5, nil)

	first, err := svc.Summary(context.Background())
	require.NoError(t, err)
	second, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStatsServiceBucketThresholds(t *testing.T) {
	cases := map[float64]models.GradeLetter{
		9.5:  models.GradeO,
		9.49: models.GradeE,
		8.5:  models.GradeE,
		7.5:  models.GradeA,
		6.5:  models.GradeB,
		5.5:  models.GradeC,
		5.49: models.GradeD,
		0:    models.GradeD,
	}
	for sgpa, want := range cases {
		assert.Equal(t, want, models.BucketFor(sgpa), "sgpa %v", sgpa)
	}
}
