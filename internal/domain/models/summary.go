package models

// DailySummary is the per-day aggregation result for one location.
//
// Fields:
//   - Date: calendar day in "2006-01-02" form, unique within a result set.
//   - AQI: mean of the day's index samples, rounded half to even.
//   - AQILabel: qualitative category for AQI (e.g., "Fair").
//   - Pollutants: mean concentration per channel, rounded to 2 decimals.
//
// This model is returned by the API when querying /api/v1/summary and is
// the unit of the JSON export written in fetch mode.
//
// swagger:model DailySummary
type DailySummary struct {
	Date       string             `json:"date" example:"2026-08-20"`
	AQI        int                `json:"aqi" example:"2"`
	AQILabel   string             `json:"aqi_label" example:"Fair"`
	Pollutants map[string]float64 `json:"pollutants"`
}

// Stats condenses a run of daily summaries into headline numbers.
// Averages are rounded to 2 decimals; best and worst are the days with
// the lowest and highest AQI, earliest day winning ties.
//
// swagger:model Stats
type Stats struct {
	Days        int          `json:"days" example:"10"`
	AvgAQI      float64      `json:"avg_aqi" example:"2.3"`
	AvgAQILabel string       `json:"avg_aqi_label" example:"Fair"`
	AvgPM25     float64      `json:"avg_pm2_5" example:"14.21"`
	BestDay     DailySummary `json:"best_day"`
	WorstDay    DailySummary `json:"worst_day"`
}
