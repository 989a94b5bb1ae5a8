// Package scheduler refreshes the cached daily summaries for the home
// location in the background, keeping API answers warm without a fetch
// on every request.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/aqipulse/aqipulse/internal/logger"
	"github.com/aqipulse/aqipulse/internal/provider"
	"github.com/aqipulse/aqipulse/internal/service"
	"github.com/aqipulse/aqipulse/internal/store"
)

// refreshTimeout bounds one refresh run end to end, including every
// chunked upstream request.
const refreshTimeout = 60 * time.Second

// Scheduler periodically recomputes the summaries for one location and
// publishes the result to the store. A failed run keeps the previous
// entry in place.
type Scheduler struct {
	scheduler *gocron.Scheduler
	svc       service.SummaryService
	store     *store.MemoryStore
	loc       provider.Location
	days      int
	interval  time.Duration
}

// New creates a Scheduler refreshing loc every interval with a
// days*24h observation window.
func New(svc service.SummaryService, st *store.MemoryStore, loc provider.Location, days int, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		svc:       svc,
		store:     st,
		loc:       loc,
		days:      days,
		interval:  interval,
	}
}

// Start schedules the periodic refresh and starts the underlying
// scheduler. The first run happens one interval after start; until
// then the API falls back to on-demand fetches.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 60
	}

	if _, err := s.scheduler.Every(minutes).Minutes().Do(s.RunOnce); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	logger.L().Info().
		Int("interval_minutes", minutes).
		Int("days", s.days).
		Str("location", s.loc.Key()).
		Msg("summary refresh scheduled")
	return nil
}

// RunOnce performs a single refresh. Exported so a run can also be
// triggered outside the schedule.
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	summaries, stats, err := s.svc.Overview(ctx, s.loc, s.days)
	if err != nil {
		logger.L().Error().
			Err(err).
			Str("location", s.loc.Key()).
			Msg("summary refresh failed, keeping previous entry")
		return
	}

	s.store.Save(s.loc.Key(), store.Entry{
		Summaries: summaries,
		Stats:     stats,
		FetchedAt: time.Now(),
	})
	logger.L().Info().
		Int("days", len(summaries)).
		Dur("elapsed", time.Since(start)).
		Str("location", s.loc.Key()).
		Msg("summary refresh done")
}

// Stop stops the scheduler and cancels any future runs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
