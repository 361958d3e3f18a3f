package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sadopc/sugr/internal/model"
)

const (
	weeklyInsightMinDays      = 3
	weeklyInsightMinDelta     = 3.0
	weeklyTrendMinDays        = 2
	weekdayInsightMinWeekdays = 3
	weekdayInsightMinWeekends = 2
	weekdayInsightMinDelta    = 5.0
	weekdayPatternMinDelta    = 3.0
)

// WeeklyTrend compares the last seven days with the seven before them.
type WeeklyTrend struct {
	ThisWeekAverage     float64 `json:"this_week_average"`
	LastWeekAverage     float64 `json:"last_week_average"`
	ThisWeekDaysTracked int     `json:"this_week_days"`
	LastWeekDaysTracked int     `json:"last_week_days"`
}

// Difference is positive when this week is lower than last week.
func (w WeeklyTrend) Difference() float64 { return w.LastWeekAverage - w.ThisWeekAverage }

func (w WeeklyTrend) IsImproving() bool { return w.Difference() > 0 }

// PercentChange is the difference relative to last week, or 0 without a baseline.
func (w WeeklyTrend) PercentChange() float64 {
	if w.LastWeekAverage <= 0 {
		return 0
	}
	return w.Difference() / w.LastWeekAverage * 100
}

func (w WeeklyTrend) HasEnoughData() bool {
	return w.ThisWeekDaysTracked >= weeklyTrendMinDays && w.LastWeekDaysTracked >= weeklyTrendMinDays
}

// weekWindows returns the inclusive day key bounds of this week and last week.
func weekWindows(now time.Time) (thisFrom, thisTo, lastFrom, lastTo string) {
	today := model.DayKey(now, now.Location())
	return model.ShiftDayKey(today, -6), today, model.ShiftDayKey(today, -13), model.ShiftDayKey(today, -7)
}

// CalculateWeeklyTrend averages each week over the days actually tracked in it.
func CalculateWeeklyTrend(entries []model.Entry, now time.Time) WeeklyTrend {
	thisFrom, thisTo, lastFrom, lastTo := weekWindows(now)
	this := DailyTotalsBetween(entries, thisFrom, thisTo)
	last := DailyTotalsBetween(entries, lastFrom, lastTo)
	return WeeklyTrend{
		ThisWeekAverage:     average(sumValues(this), len(this)),
		LastWeekAverage:     average(sumValues(last), len(last)),
		ThisWeekDaysTracked: len(this),
		LastWeekDaysTracked: len(last),
	}
}

func weeklyComparisonInsight(entries []model.Entry, _ model.Settings, now time.Time) (model.Insight, bool) {
	trend := CalculateWeeklyTrend(entries, now)
	if trend.ThisWeekDaysTracked < weeklyInsightMinDays || trend.LastWeekDaysTracked < weeklyInsightMinDays {
		return model.Insight{}, false
	}
	diff := trend.Difference()
	if math.Abs(diff) < weeklyInsightMinDelta {
		return model.Insight{}, false
	}
	if diff > 0 {
		return model.Insight{
			Message:  fmt.Sprintf("This week you're averaging %dg - %dg better than last week!", int(trend.ThisWeekAverage), int(diff)),
			Category: model.CategoryWeeklyComparison,
			Icon:     "arrow.down.circle.fill",
		}, true
	}
	return model.Insight{
		Message:  fmt.Sprintf("This week's average is %dg - %dg higher than last week", int(trend.ThisWeekAverage), int(math.Abs(diff))),
		Category: model.CategoryWeeklyComparison,
		Icon:     "arrow.up.circle",
	}, true
}

// WeekdayWeekend holds per-group averages of tracked day totals.
type WeekdayWeekend struct {
	WeekdayAverage float64 `json:"weekday_average"`
	WeekendAverage float64 `json:"weekend_average"`
	WeekdayDays    int     `json:"weekday_days"`
	WeekendDays    int     `json:"weekend_days"`
}

// Difference is positive when weekends are higher.
func (w WeekdayWeekend) Difference() float64 { return w.WeekendAverage - w.WeekdayAverage }

// Pattern describes the comparison for display.
func (w WeekdayWeekend) Pattern() string {
	diff := w.Difference()
	switch {
	case w.WeekdayAverage == 0 && w.WeekendAverage == 0:
		return "Track more days to see patterns"
	case math.Abs(diff) < weekdayPatternMinDelta:
		return "Your intake is consistent throughout the week"
	case diff > 0:
		return fmt.Sprintf("You consume %dg more on weekends", int(math.Abs(diff)))
	default:
		return fmt.Sprintf("You consume %dg less on weekends", int(math.Abs(diff)))
	}
}

// CompareWeekdayWeekend partitions tracked days by the weekday of the day
// itself (Saturday and Sunday are the weekend).
func CompareWeekdayWeekend(entries []model.Entry, loc *time.Location) WeekdayWeekend {
	var out WeekdayWeekend
	var weekdaySum, weekendSum float64
	for _, day := range DayTotals(entries, loc) {
		if day.Date.IsZero() {
			continue
		}
		if isWeekend(day.Date.Weekday()) {
			weekendSum += day.Total
			out.WeekendDays++
		} else {
			weekdaySum += day.Total
			out.WeekdayDays++
		}
	}
	out.WeekdayAverage = average(weekdaySum, out.WeekdayDays)
	out.WeekendAverage = average(weekendSum, out.WeekendDays)
	return out
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func weekdayWeekendInsight(entries []model.Entry, _ model.Settings, now time.Time) (model.Insight, bool) {
	cmp := CompareWeekdayWeekend(entries, now.Location())
	if cmp.WeekdayDays < weekdayInsightMinWeekdays || cmp.WeekendDays < weekdayInsightMinWeekends {
		return model.Insight{}, false
	}
	diff := cmp.Difference()
	if math.Abs(diff) < weekdayInsightMinDelta {
		return model.Insight{}, false
	}
	if diff > 0 {
		return model.Insight{
			Message:  fmt.Sprintf("Your weekend average is %dg higher than weekdays", int(diff)),
			Category: model.CategoryWeekdayWeekend,
			Icon:     "calendar.badge.exclamationmark",
		}, true
	}
	return model.Insight{
		Message:  fmt.Sprintf("You consume %dg less sugar on weekends", int(math.Abs(diff))),
		Category: model.CategoryWeekdayWeekend,
		Icon:     "hand.thumbsup.fill",
	}, true
}

// sumValues adds in key order so repeated calls give identical results.
func sumValues(m map[string]float64) float64 {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sum float64
	for _, k := range keys {
		sum += m[k]
	}
	return sum
}
