package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/noah-isme/sgpa-records-api/internal/models"
)

type recordLister interface {
	List(ctx context.Context) ([]models.Record, error)
}

// StatsService derives summary statistics over the current record collection.
// Every query folds the full collection from scratch; nothing is cached, so an
// unchanged store always yields an identical summary.
type StatsService struct {
	records     recordLister
	recentLimit int
	logger      *zap.Logger
}

// NewStatsService constructs StatsService.
func NewStatsService(records recordLister, recentLimit int, logger *zap.Logger) *StatsService {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{records: records, recentLimit: recentLimit, logger: logger}
}

// Summary computes the aggregate view over whatever the store currently holds.
func (s *StatsService) Summary(ctx context.Context) (*models.StatsSummary, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	summary := &models.StatsSummary{
		TotalRecords:      len(records),
		GradeDistribution: map[models.GradeLetter]int{},
		RecentRecords:     []models.Record{},
	}
	if len(records) == 0 {
		return summary, nil
	}

	var sum float64
	highest := records[0].SGPA
	lowest := records[0].SGPA
	for _, rec := range records {
		sum += rec.SGPA
		if rec.SGPA > highest {
			highest = rec.SGPA
		}
		if rec.SGPA < lowest {
			lowest = rec.SGPA
		}
		summary.GradeDistribution[models.BucketFor(rec.SGPA)]++
	}

	summary.AverageSGPA = round2(sum / float64(len(records)))
	summary.HighestSGPA = highest
	summary.LowestSGPA = lowest

	start := len(records) - s.recentLimit
	if start < 0 {
		start = 0
	}
	for i := len(records) - 1; i >= start; i-- {
		summary.RecentRecords = append(summary.RecentRecords, records[i])
	}
	return summary, nil
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
