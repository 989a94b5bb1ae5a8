// Package aqi holds the aggregation core: normalization of raw provider
// records, the group-by-day fold, index classification, and run statistics.
// The package is pure; it performs no I/O and emits no logs, so callers
// decide how failures surface.
package aqi

import "fmt"

// MalformedRecordError reports a provider record that is missing a
// required field. Index is the record's position in the fetched
// sequence, Field the missing key (e.g., "dt", "aqi", "so2").
type MalformedRecordError struct {
	Index int
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at index %d: missing field %q", e.Index, e.Field)
}

// IncompleteBucketError reports a day that collected readings but ended
// up with no samples for one of the fixed pollutant channels. It guards
// the averaging step against dividing by zero.
type IncompleteBucketError struct {
	Date    string
	Channel string
}

func (e *IncompleteBucketError) Error() string {
	return fmt.Sprintf("incomplete bucket for %s: no samples for channel %q", e.Date, e.Channel)
}
