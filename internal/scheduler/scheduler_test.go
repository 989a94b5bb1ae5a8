package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aqipulse/aqipulse/internal/domain/models"
	"github.com/aqipulse/aqipulse/internal/provider"
	"github.com/aqipulse/aqipulse/internal/store"
)

type stubService struct {
	summaries []models.DailySummary
	stats     *models.Stats
	err       error
	calls     int
}

func (s *stubService) DailySummaries(_ context.Context, _ provider.Location, _ int) ([]models.DailySummary, error) {
	s.calls++
	return s.summaries, s.err
}

func (s *stubService) Overview(_ context.Context, _ provider.Location, _ int) ([]models.DailySummary, *models.Stats, error) {
	s.calls++
	return s.summaries, s.stats, s.err
}

func TestRunOnce_PublishesEntry(t *testing.T) {
	svc := &stubService{
		summaries: []models.DailySummary{{Date: "2026-08-20", AQI: 2, AQILabel: "Fair"}},
		stats:     &models.Stats{Days: 1, AvgAQI: 2},
	}
	st := store.NewMemoryStore(time.Hour)
	loc := provider.Location{Lat: 12.9716, Lon: 77.5946}

	s := New(svc, st, loc, 10, time.Hour)
	s.RunOnce()

	e, err := st.Latest(loc.Key())
	if err != nil {
		t.Fatalf("entry not published: %v", err)
	}
	if len(e.Summaries) != 1 || e.Summaries[0].Date != "2026-08-20" {
		t.Fatalf("entry summaries: got %+v", e.Summaries)
	}
	if e.Stats == nil || e.Stats.Days != 1 {
		t.Fatalf("entry stats: got %+v", e.Stats)
	}
	if e.FetchedAt.IsZero() {
		t.Fatalf("entry missing fetch time")
	}
}

func TestRunOnce_FailureKeepsPreviousEntry(t *testing.T) {
	st := store.NewMemoryStore(time.Hour)
	loc := provider.Location{Lat: 1, Lon: 2}

	good := &stubService{summaries: []models.DailySummary{{Date: "2026-08-20"}}}
	New(good, st, loc, 10, time.Hour).RunOnce()

	bad := &stubService{err: errors.New("upstream down")}
	New(bad, st, loc, 10, time.Hour).RunOnce()

	e, err := st.Latest(loc.Key())
	if err != nil {
		t.Fatalf("previous entry lost: %v", err)
	}
	if len(e.Summaries) != 1 {
		t.Fatalf("previous entry overwritten: %+v", e.Summaries)
	}
}

func TestStartAndStop(t *testing.T) {
	svc := &stubService{}
	st := store.NewMemoryStore(0)

	s := New(svc, st, provider.Location{}, 10, time.Hour)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	// First run is one interval out, so nothing fires during the test.
	if svc.calls != 0 {
		t.Fatalf("unexpected immediate run")
	}
	s.Stop()
}

func TestStart_DefaultsInterval(t *testing.T) {
	s := New(&stubService{}, store.NewMemoryStore(0), provider.Location{}, 10, 0)
	if err := s.Start(); err != nil {
		t.Fatalf("start with zero interval: %v", err)
	}
	s.Stop()
}
