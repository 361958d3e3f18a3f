package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sadopc/sugr/internal/model"
	"github.com/sadopc/sugr/internal/store"
)

func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.DBPath
}

func withStore(run func(*store.Store, *time.Location) error) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	s, err := store.New(resolveDBPath())
	if err != nil {
		return err
	}
	defer s.Close()
	return run(s, loc)
}

func parseGrams(value string) (float64, error) {
	g, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, fmt.Errorf("invalid grams %q", value)
	}
	if g <= 0 {
		return 0, fmt.Errorf("grams must be > 0")
	}
	return g, nil
}

// parseAt accepts RFC3339, "YYYY-MM-DD HH:MM" or "HH:MM" (today in loc).
// An empty value means now.
func parseAt(value string, now time.Time, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", value, loc); err == nil {
		day := model.StartOfDay(now, loc)
		return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected RFC3339, YYYY-MM-DD HH:MM or HH:MM)", value)
}

func parseDay(value string, loc *time.Location) (string, error) {
	if _, err := model.ParseDayKey(value, loc); err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
