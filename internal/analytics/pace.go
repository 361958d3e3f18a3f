package analytics

import (
	"fmt"
	"time"

	"github.com/sadopc/sugr/internal/model"
)

const (
	paceMinEntries     = 2
	paceFirstHour      = 8
	paceLastHour       = 22
	paceDayStartHour   = 6
	paceMaxRemaining   = 16
	paceRemainingRate  = 0.5
	paceComfortableCap = 0.8
)

// Projection is an end-of-day estimate built from today's entries.
type Projection struct {
	CurrentTotal float64
	HoursElapsed int
	HourlyRate   float64
	Projected    float64
}

// ProjectPace extrapolates today's total. It only applies during active hours
// and once today has at least two entries. The hourly rate assumes the day
// starts at 06:00 and the remaining hours run at half that rate.
func ProjectPace(entries []model.Entry, now time.Time) (Projection, bool) {
	loc := now.Location()
	today := model.DayKey(now, loc)

	var current float64
	count := 0
	for _, e := range entries {
		if e.DayKey == today {
			current += e.Grams
			count++
		}
	}
	if count < paceMinEntries {
		return Projection{}, false
	}

	hours := int(now.Sub(model.StartOfDay(now, loc)).Hours())
	if hours < paceFirstHour || hours >= paceLastHour {
		return Projection{}, false
	}

	remaining := min(paceMaxRemaining, 24-hours)
	rate := current / float64(max(1, hours-paceDayStartHour))
	return Projection{
		CurrentTotal: current,
		HoursElapsed: hours,
		HourlyRate:   rate,
		Projected:    current + rate*float64(remaining)*paceRemainingRate,
	}, true
}

func paceInsight(entries []model.Entry, settings model.Settings, now time.Time) (model.Insight, bool) {
	p, ok := ProjectPace(entries, now)
	if !ok {
		return model.Insight{}, false
	}
	goal := settings.DailyGoal
	switch {
	case p.Projected > goal && p.CurrentTotal <= goal:
		return model.Insight{
			Message:  fmt.Sprintf("At this pace, you might hit ~%dg by end of day", int(p.Projected)),
			Category: model.CategoryPaceProjection,
			Icon:     "exclamationmark.triangle",
		}, true
	case p.Projected <= goal*paceComfortableCap:
		return model.Insight{
			Message:  fmt.Sprintf("Great pace! You're on track to stay well under your %dg goal", int(goal)),
			Category: model.CategoryPaceProjection,
			Icon:     "checkmark.circle.fill",
		}, true
	}
	return model.Insight{}, false
}
