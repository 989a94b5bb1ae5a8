// Package export persists daily summaries as structured JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aqipulse/aqipulse/internal/domain/models"
)

// WriteJSON writes the summaries to path as 2-space-indented JSON,
// creating or truncating the file with 0644 permissions. The parent
// directory must already exist.
func WriteJSON(path string, summaries []models.DailySummary) error {
	b, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summaries: %w", err)
	}
	b = append(b, '\n')

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
