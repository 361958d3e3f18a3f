package analytics

import (
	"time"

	"github.com/sadopc/sugr/internal/model"
)

const insightMinTrackedDays = 2

// GenerateFunc produces an insight, or false when its rule does not apply.
type GenerateFunc func(entries []model.Entry, settings model.Settings, now time.Time) (model.Insight, bool)

// Generator is a named insight rule.
type Generator struct {
	Name     string
	Generate GenerateFunc
}

// DefaultGenerators is the rule list in priority order.
var DefaultGenerators = []Generator{
	{Name: "weekly_comparison", Generate: weeklyComparisonInsight},
	{Name: "pace_projection", Generate: paceInsight},
	{Name: "time_of_day", Generate: timeOfDayInsight},
	{Name: "weekday_vs_weekend", Generate: weekdayWeekendInsight},
	{Name: "streak_progress", Generate: streakInsight},
}

// Selector returns the first insight produced by its generators.
type Selector struct {
	Generators []Generator
}

// NewSelector builds a selector over the default rules.
func NewSelector() *Selector {
	return &Selector{Generators: DefaultGenerators}
}

// Select falls back to the placeholder when fewer than two days are tracked
// or no rule applies.
func (s *Selector) Select(entries []model.Entry, settings model.Settings, now time.Time) model.Insight {
	insight, _ := s.SelectNamed(entries, settings, now)
	return insight
}

// SelectNamed is Select that also reports which generator fired ("" for the
// placeholder).
func (s *Selector) SelectNamed(entries []model.Entry, settings model.Settings, now time.Time) (model.Insight, string) {
	if TrackedDays(entries) < insightMinTrackedDays {
		return model.PlaceholderInsight, ""
	}
	settings = settings.Normalize()
	for _, g := range s.Generators {
		if insight, ok := g.Generate(entries, settings, now); ok {
			return insight, g.Name
		}
	}
	return model.PlaceholderInsight, ""
}

// SelectInsight runs the default rules.
func SelectInsight(entries []model.Entry, settings model.Settings, now time.Time) model.Insight {
	return NewSelector().Select(entries, settings, now)
}
