// Package report renders daily summaries as a human-readable console
// report. It writes to any io.Writer and never mutates its input.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aqipulse/aqipulse/internal/domain/models"
)

// headlinePollutants are the channels shown per day, in print order.
// The full channel set stays available in the JSON export.
var headlinePollutants = []struct {
	key   string
	label string
}{
	{"pm2_5", "PM2.5"},
	{"pm10", "PM10"},
	{"o3", "O3"},
	{"no2", "NO2"},
}

// Write renders the summaries and, when present, the run statistics.
//
// Parameters:
//   - w: destination writer (stdout in the CLI).
//   - summaries: one entry per day, already sorted by date.
//   - stats: aggregate statistics; nil when the window held no data.
//
// Returns:
//   - error: the first write error, if any.
func Write(w io.Writer, summaries []models.DailySummary, stats *models.Stats) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No air quality data for the requested window.")
		return err
	}

	if _, err := fmt.Fprintf(w, "AQI Data Summary (%d days):\n", len(summaries)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("=", 50)); err != nil {
		return err
	}

	for _, day := range summaries {
		if _, err := fmt.Fprintf(w, "%s: AQI %d (%s)\n", day.Date, day.AQI, day.AQILabel); err != nil {
			return err
		}
		for _, p := range headlinePollutants {
			if _, err := fmt.Fprintf(w, "  %s: %s μg/m³\n", p.label, formatValue(day.Pollutants[p.key])); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, strings.Repeat("-", 30)); err != nil {
			return err
		}
	}

	if stats == nil {
		return nil
	}

	if _, err := fmt.Fprintln(w, "\nStatistics:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average AQI: %.1f\n", stats.AvgAQI); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Average PM2.5: %.1f μg/m³\n", stats.AvgPM25); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best day: %s (AQI %d)\n", stats.BestDay.Date, stats.BestDay.AQI); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Worst day: %s (AQI %d)\n", stats.WorstDay.Date, stats.WorstDay.AQI)
	return err
}

// formatValue prints a pollutant mean without trailing zeros, so 12.5
// renders as "12.5" and 7 as "7".
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
