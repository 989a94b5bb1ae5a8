// Package store keeps the most recent aggregation result per location
// so the API can answer default queries without a round trip upstream.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/aqipulse/aqipulse/internal/domain/models"
)

var (
	// ErrNotFound is returned when no fresh result is held for a location.
	ErrNotFound = errors.New("no summary data for location")
)

// Entry is one cached run: the summaries, their statistics, and when
// they were fetched.
type Entry struct {
	Summaries []models.DailySummary
	Stats     *models.Stats
	FetchedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory cache of the latest run
// per location key. A stale entry is treated like a missing one, so a
// cache hit is always recent enough to serve.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Entry

	// maxAge bounds how old an entry may be before Latest stops
	// returning it. <= 0 disables the bound.
	maxAge time.Duration
}

// NewMemoryStore creates an empty store. maxAge <= 0 means entries
// never expire.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:   make(map[string]Entry),
		maxAge: maxAge,
	}
}

// Save replaces the entry held for key.
func (s *MemoryStore) Save(key string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = e
}

// Latest returns the entry for key, or ErrNotFound when there is none
// or the held one is older than maxAge.
func (s *MemoryStore) Latest(key string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok {
		return Entry{}, ErrNotFound
	}
	if s.maxAge > 0 && time.Since(e.FetchedAt) > s.maxAge {
		return Entry{}, ErrNotFound
	}
	return e, nil
}
