package dto

import "github.com/aqipulse/aqipulse/internal/domain/models"

// SummaryResponse is the JSON structure returned by
// GET /api/v1/summary.
//
// A location with no readings in the window returns Count 0 and an
// empty Summaries list; that is a successful response, not an error.
// Source tells whether the result came from the background cache or a
// live upstream fetch.
type SummaryResponse struct {
	Lat       float64               `json:"lat" example:"12.9716"`
	Lon       float64               `json:"lon" example:"77.5946"`
	Days      int                   `json:"days" example:"10"`
	Count     int                   `json:"count" example:"10"`
	Source    string                `json:"source" example:"live"`
	Summaries []models.DailySummary `json:"summaries"`
}

// OverviewResponse extends SummaryResponse with run statistics.
// Stats is omitted when the window held no readings.
type OverviewResponse struct {
	Lat       float64               `json:"lat" example:"12.9716"`
	Lon       float64               `json:"lon" example:"77.5946"`
	Days      int                   `json:"days" example:"10"`
	Count     int                   `json:"count" example:"10"`
	Source    string                `json:"source" example:"live"`
	Summaries []models.DailySummary `json:"summaries"`
	Stats     *models.Stats         `json:"stats,omitempty"`
}

// ClassifyResponse is the JSON structure returned by
// GET /api/v1/classify.
type ClassifyResponse struct {
	AQI   int    `json:"aqi" example:"3"`
	Label string `json:"aqi_label" example:"Moderate"`
}

// Sources for SummaryResponse.Source.
const (
	SourceLive  = "live"
	SourceCache = "cache"
)
