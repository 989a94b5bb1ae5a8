// Package provider fetches raw air quality history from external APIs.
// It owns the transport boundary: everything that can fail between this
// process and the upstream service surfaces as a TransportError, while
// the shape of individual records is left for normalization to judge.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/aqipulse/aqipulse/internal/domain/models"
)

// Location is a geographic point readings are fetched for.
type Location struct {
	Lat float64
	Lon float64
}

// Key returns a stable cache key for the location.
func (l Location) Key() string {
	return fmt.Sprintf("%.4f,%.4f", l.Lat, l.Lon)
}

// Window is a half-open observation interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// LastDays returns the window covering the n*24h before now.
func LastDays(n int, now time.Time) Window {
	return Window{Start: now.Add(-time.Duration(n) * 24 * time.Hour), End: now}
}

// HistoryProvider fetches the raw readings recorded for a location
// inside a window. Implementations return records as delivered by the
// upstream, unvalidated and in upstream order.
type HistoryProvider interface {
	FetchHistory(ctx context.Context, loc Location, w Window) ([]models.RawReading, error)
}

// TransportError wraps any failure to obtain a well-formed response
// from the upstream: connection problems, timeouts, authentication
// rejections, non-200 statuses, or undecodable bodies. Status carries
// the HTTP status code when the upstream answered at all, 0 otherwise.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("air quality upstream: status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("air quality upstream: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
