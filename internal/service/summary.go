package service

import (
	"context"
	"time"

	"github.com/aqipulse/aqipulse/internal/aqi"
	"github.com/aqipulse/aqipulse/internal/domain/models"
	"github.com/aqipulse/aqipulse/internal/provider"
)

// timeNow is an indirection so tests can pin the observation window.
var timeNow = time.Now

// SummaryService runs the full pipeline for one location: fetch raw
// history, normalize, fold into daily buckets.
type SummaryService interface {
	// DailySummaries returns one summary per day covered by the last
	// days*24h, sorted ascending by date. A location with no readings
	// yields an empty slice, not an error.
	DailySummaries(ctx context.Context, loc provider.Location, days int) ([]models.DailySummary, error)

	// Overview additionally condenses the run into statistics. Stats
	// is nil when there are no summaries.
	Overview(ctx context.Context, loc provider.Location, days int) ([]models.DailySummary, *models.Stats, error)
}

type summaryService struct {
	source     provider.HistoryProvider
	normalizer *aqi.Normalizer
}

// NewSummaryService builds the service on top of a history source.
// Day keys are derived in UTC so runs are reproducible across hosts.
func NewSummaryService(source provider.HistoryProvider) SummaryService {
	return &summaryService{
		source:     source,
		normalizer: aqi.NewNormalizer(time.UTC),
	}
}

func (s *summaryService) DailySummaries(ctx context.Context, loc provider.Location, days int) ([]models.DailySummary, error) {
	window := provider.LastDays(days, timeNow())

	raws, err := s.source.FetchHistory(ctx, loc, window)
	if err != nil {
		return nil, err
	}
	readings, err := s.normalizer.NormalizeAll(raws)
	if err != nil {
		return nil, err
	}
	return aqi.Aggregate(readings)
}

func (s *summaryService) Overview(ctx context.Context, loc provider.Location, days int) ([]models.DailySummary, *models.Stats, error) {
	summaries, err := s.DailySummaries(ctx, loc, days)
	if err != nil {
		return nil, nil, err
	}
	return summaries, aqi.ComputeStats(summaries), nil
}
