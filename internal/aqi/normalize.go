package aqi

import (
	"time"

	"github.com/aqipulse/aqipulse/internal/domain/models"
)

// dayKeyLayout is the calendar-day key readings are grouped by.
const dayKeyLayout = "2006-01-02"

// Normalizer validates raw provider records and stamps each one with
// its calendar day. All timestamps are interpreted in a single fixed
// location so that samples near midnight land in a stable day no matter
// where the process runs.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer returns a Normalizer that derives day keys in loc.
// A nil loc defaults to UTC.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{loc: loc}
}

// Normalize converts one raw record into a Reading. It is STRICT about
// presence: a missing timestamp, index code, or pollutant channel fails
// with a MalformedRecordError naming the first absent field. index is
// the record's position in the fetched sequence and is carried into the
// error for context.
//
// Channels beyond the fixed set are tolerated and dropped.
func (n *Normalizer) Normalize(index int, raw models.RawReading) (models.Reading, error) {
	var r models.Reading

	if raw.UnixTime == nil {
		return r, &MalformedRecordError{Index: index, Field: "dt"}
	}
	if raw.AQI == nil {
		return r, &MalformedRecordError{Index: index, Field: "aqi"}
	}
	if raw.Components == nil {
		return r, &MalformedRecordError{Index: index, Field: "components"}
	}

	pollutants := make(map[string]float64, len(models.PollutantChannels))
	for _, ch := range models.PollutantChannels {
		v, ok := raw.Components[ch]
		if !ok {
			return r, &MalformedRecordError{Index: index, Field: ch}
		}
		pollutants[ch] = v
	}

	ts := time.Unix(*raw.UnixTime, 0).In(n.loc)
	r = models.Reading{
		Timestamp:  ts,
		Date:       ts.Format(dayKeyLayout),
		AQI:        *raw.AQI,
		Pollutants: pollutants,
	}
	return r, nil
}

// NormalizeAll converts a fetched sequence in order. One malformed
// record fails the whole batch; no partial result is returned.
func (n *Normalizer) NormalizeAll(raws []models.RawReading) ([]models.Reading, error) {
	readings := make([]models.Reading, 0, len(raws))
	for i, raw := range raws {
		r, err := n.Normalize(i, raw)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	return readings, nil
}
