// Package analytics turns an entry log into day totals, trends, streaks and
// insights. Every function is pure: callers pass the entries, the settings
// and the reference instant, and the local zone is taken from that instant.
package analytics

import (
	"sort"
	"time"

	"github.com/sadopc/sugr/internal/model"
)

// DailyTotals sums grams per day key.
func DailyTotals(entries []model.Entry) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range entries {
		totals[e.DayKey] += e.Grams
	}
	return totals
}

// DailyTotalsBetween sums grams per day key for keys in [fromKey, toKey].
func DailyTotalsBetween(entries []model.Entry, fromKey, toKey string) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range entries {
		if e.DayKey < fromKey || e.DayKey > toKey {
			continue
		}
		totals[e.DayKey] += e.Grams
	}
	return totals
}

// TrackedDays counts the distinct day keys in entries.
func TrackedDays(entries []model.Entry) int {
	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.DayKey] = struct{}{}
	}
	return len(seen)
}

// DayTotals returns one total per tracked day in chronological order.
func DayTotals(entries []model.Entry, loc *time.Location) []model.DayTotal {
	return sortedDayTotals(DailyTotals(entries), loc)
}

func sortedDayTotals(totals map[string]float64, loc *time.Location) []model.DayTotal {
	if len(totals) == 0 {
		return nil
	}
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	days := make([]model.DayTotal, 0, len(keys))
	for _, k := range keys {
		date, _ := model.ParseDayKey(k, loc)
		days = append(days, model.DayTotal{DayKey: k, Date: date, Total: totals[k]})
	}
	return days
}

// Series returns the last n calendar days ending on now's day, oldest first.
// Days without entries are present with a zero total.
func Series(entries []model.Entry, n int, now time.Time) []model.DayTotal {
	if n <= 0 {
		return nil
	}
	loc := now.Location()
	today := model.StartOfDay(now, loc)
	start := today.AddDate(0, 0, -(n - 1))
	totals := DailyTotalsBetween(entries, model.DayKey(start, loc), model.DayKey(today, loc))

	series := make([]model.DayTotal, 0, n)
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		key := model.DayKey(d, loc)
		series = append(series, model.DayTotal{DayKey: key, Date: d, Total: totals[key]})
	}
	return series
}

// SeriesSummary describes a chart window.
type SeriesSummary struct {
	Average       float64
	DaysOverLimit int
	DaysInGreen   int
}

// SummarizeSeries averages over every day of the window, tracked or not.
func SummarizeSeries(series []model.DayTotal, settings model.Settings) SeriesSummary {
	var out SeriesSummary
	if len(series) == 0 {
		return out
	}
	var sum float64
	for _, d := range series {
		sum += d.Total
		if d.Total > settings.DailyGoal {
			out.DaysOverLimit++
		}
		if d.Total > 0 && d.Total <= settings.CautionThreshold {
			out.DaysInGreen++
		}
	}
	out.Average = sum / float64(len(series))
	return out
}

// EntriesForDay returns the entries of one day ordered by item number.
func EntriesForDay(entries []model.Entry, dayKey string) []model.Entry {
	var out []model.Entry
	for _, e := range entries {
		if e.DayKey == dayKey {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ItemNumber < out[j].ItemNumber })
	return out
}

// NextItemNumber returns the sequence number for a new entry on dayKey.
func NextItemNumber(entries []model.Entry, dayKey string) int {
	highest := 0
	for _, e := range entries {
		if e.DayKey == dayKey && e.ItemNumber > highest {
			highest = e.ItemNumber
		}
	}
	return highest + 1
}

func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
