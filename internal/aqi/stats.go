package aqi

import "github.com/aqipulse/aqipulse/internal/domain/models"

// ComputeStats condenses summaries into run-level statistics: average
// AQI and PM2.5 across days, plus the best and worst day by AQI. Input
// is expected sorted by date, so ties keep the earliest day. Returns
// nil when there are no summaries to describe.
func ComputeStats(summaries []models.DailySummary) *models.Stats {
	if len(summaries) == 0 {
		return nil
	}

	var sumAQI int
	var sumPM25 float64
	best, worst := summaries[0], summaries[0]
	for _, s := range summaries {
		sumAQI += s.AQI
		sumPM25 += s.Pollutants["pm2_5"]
		if s.AQI < best.AQI {
			best = s
		}
		if s.AQI > worst.AQI {
			worst = s
		}
	}

	n := float64(len(summaries))
	avgAQI := float64(sumAQI) / n
	return &models.Stats{
		Days:        len(summaries),
		AvgAQI:      round2(avgAQI),
		AvgAQILabel: Label(roundToInt(avgAQI)),
		AvgPM25:     round2(sumPM25 / n),
		BestDay:     best,
		WorstDay:    worst,
	}
}
