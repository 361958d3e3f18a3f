package model

import (
	"fmt"
	"time"
)

// DayKeyLayout is the layout of a day key ("YYYY-MM-DD").
const DayKeyLayout = "2006-01-02"

// Entry is one logged intake event.
type Entry struct {
	ID         string    `json:"id"`
	Grams      float64   `json:"grams"`
	ItemNumber int       `json:"item_number"`
	Timestamp  time.Time `json:"timestamp"`
	DayKey     string    `json:"day_key"`
	Label      string    `json:"label,omitempty"`
}

// NewEntry builds an entry whose day key is derived from at in loc.
func NewEntry(id string, grams float64, itemNumber int, at time.Time, loc *time.Location) Entry {
	return Entry{
		ID:         id,
		Grams:      grams,
		ItemNumber: itemNumber,
		Timestamp:  at,
		DayKey:     DayKey(at, loc),
	}
}

// Reschedule moves the entry to at and recomputes its day key. The day key is
// never refreshed anywhere else.
func (e *Entry) Reschedule(at time.Time, loc *time.Location) {
	e.Timestamp = at
	e.DayKey = DayKey(at, loc)
}

// DisplayName returns the custom label, or "Item N" when none is set.
func (e Entry) DisplayName() string {
	if e.Label != "" {
		return e.Label
	}
	return fmt.Sprintf("Item %d", e.ItemNumber)
}

// DayKey formats the local calendar day of t.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayKeyLayout)
}

// ParseDayKey returns local midnight of the day named by key.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DayKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", key, err)
	}
	return t, nil
}

// StartOfDay returns local midnight of t's day.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ShiftDayKey returns the key n calendar days after key. Invalid keys are
// returned unchanged.
func ShiftDayKey(key string, n int) string {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return key
	}
	return t.AddDate(0, 0, n).Format(DayKeyLayout)
}

// DayTotal is the sum of all entries sharing a day key.
type DayTotal struct {
	DayKey string
	Date   time.Time
	Total  float64
}
