package aqi

import (
	"math"
	"sort"

	"github.com/aqipulse/aqipulse/internal/domain/models"
)

// dayBucket accumulates the samples that landed on one calendar day.
// Sequences are only ever appended to, so per-channel arrival order is
// preserved even though readings for several days interleave.
type dayBucket struct {
	aqi        []int
	pollutants map[string][]float64
}

func newDayBucket() *dayBucket {
	return &dayBucket{pollutants: make(map[string][]float64, len(models.PollutantChannels))}
}

// Aggregate folds readings into per-day summaries.
//
// Grouping is by Reading.Date: every reading joins exactly one bucket,
// buckets materialize only for days that actually have samples, and
// duplicate timestamps count as distinct samples. The result is sorted
// ascending by date; day keys are ISO dates, so lexicographic order is
// chronological order.
//
// Averaging is all-or-nothing: a bucket whose fixed channels are not
// all present fails with an IncompleteBucketError instead of returning
// partial output. AQI means round half to even to an integer, pollutant
// means round half to even at 2 decimals. Empty input yields an empty,
// non-nil slice.
func Aggregate(readings []models.Reading) ([]models.DailySummary, error) {
	buckets := make(map[string]*dayBucket)
	for _, r := range readings {
		b, ok := buckets[r.Date]
		if !ok {
			b = newDayBucket()
			buckets[r.Date] = b
		}
		b.aqi = append(b.aqi, r.AQI)
		for ch, v := range r.Pollutants {
			b.pollutants[ch] = append(b.pollutants[ch], v)
		}
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	summaries := make([]models.DailySummary, 0, len(dates))
	for _, d := range dates {
		b := buckets[d]

		sum := 0
		for _, v := range b.aqi {
			sum += v
		}
		avg := roundToInt(float64(sum) / float64(len(b.aqi)))

		pollutants := make(map[string]float64, len(models.PollutantChannels))
		for _, ch := range models.PollutantChannels {
			samples := b.pollutants[ch]
			if len(samples) == 0 {
				return nil, &IncompleteBucketError{Date: d, Channel: ch}
			}
			var s float64
			for _, v := range samples {
				s += v
			}
			pollutants[ch] = round2(s / float64(len(samples)))
		}

		summaries = append(summaries, models.DailySummary{
			Date:       d,
			AQI:        avg,
			AQILabel:   Label(avg),
			Pollutants: pollutants,
		})
	}
	return summaries, nil
}

// roundToInt rounds half to even, so 1.5 and 2.5 both land on 2.
func roundToInt(v float64) int {
	return int(math.RoundToEven(v))
}

// round2 rounds half to even at 2 decimal places.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
