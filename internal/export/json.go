package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sadopc/sugr/internal/analytics"
	"github.com/sadopc/sugr/internal/model"
)

type jsonExport struct {
	ExportedAt string         `json:"exported_at"`
	Settings   jsonSettings   `json:"settings"`
	Count      int            `json:"count"`
	Days       []jsonDayTotal `json:"days"`
	Entries    []jsonEntry    `json:"entries"`
}

type jsonSettings struct {
	DailyGoal        float64 `json:"daily_goal"`
	CautionThreshold float64 `json:"caution_threshold"`
	Preset           string  `json:"preset"`
}

type jsonDayTotal struct {
	Date   string  `json:"date"`
	Total  float64 `json:"total_grams"`
	Status string  `json:"status"`
}

type jsonEntry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ItemNumber int     `json:"item_number"`
	Grams      float64 `json:"grams"`
	Timestamp  string  `json:"timestamp"`
	Date       string  `json:"date"`
	Label      string  `json:"label,omitempty"`
}

// ToJSON writes entries, day totals and the active thresholds to path.
// Timestamps are rendered in loc.
func ToJSON(entries []model.Entry, settings model.Settings, loc *time.Location, exportedAt time.Time, path string) error {
	data, err := MarshalJSON(entries, settings, loc, exportedAt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// MarshalJSON builds the indented export document.
func MarshalJSON(entries []model.Entry, settings model.Settings, loc *time.Location, exportedAt time.Time) ([]byte, error) {
	settings = settings.Normalize()
	export := jsonExport{
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		Settings: jsonSettings{
			DailyGoal:        settings.DailyGoal,
			CautionThreshold: settings.CautionThreshold,
			Preset:           string(settings.Preset),
		},
		Count:   len(entries),
		Days:    []jsonDayTotal{},
		Entries: []jsonEntry{},
	}

	for _, d := range analytics.DayTotals(entries, loc) {
		export.Days = append(export.Days, jsonDayTotal{
			Date:   d.DayKey,
			Total:  roundGrams(d.Total),
			Status: settings.StatusFor(d.Total).String(),
		})
	}

	for _, e := range entries {
		export.Entries = append(export.Entries, jsonEntry{
			ID:         e.ID,
			Name:       e.DisplayName(),
			ItemNumber: e.ItemNumber,
			Grams:      e.Grams,
			Timestamp:  e.Timestamp.In(loc).Format(time.RFC3339),
			Date:       e.DayKey,
			Label:      e.Label,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return data, nil
}

func roundGrams(g float64) float64 {
	return decimal.NewFromFloat(g).Round(2).InexactFloat64()
}
