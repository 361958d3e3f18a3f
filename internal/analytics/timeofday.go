package analytics

import (
	"fmt"
	"time"

	"github.com/sadopc/sugr/internal/model"
)

const (
	timeOfDayMinEntries = 3
	timeOfDayMinPeriods = 2
	timeOfDayMinSpread  = 3.0
)

// Period is a four-way split of the local day by hour.
type Period int

const (
	Morning   Period = iota // [06:00, 12:00)
	Afternoon               // [12:00, 18:00)
	Evening                 // [18:00, 24:00)
	Night                   // [00:00, 06:00)
)

// Periods lists the periods in tie-break order.
var Periods = []Period{Morning, Afternoon, Evening, Night}

func (p Period) String() string {
	switch p {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	default:
		return "Night"
	}
}

// PeriodOf maps an hour of day to its period.
func PeriodOf(hour int) Period {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 24:
		return Evening
	default:
		return Night
	}
}

// PeriodStats are the raw figures behind one period's average.
type PeriodStats struct {
	Sum     float64
	Entries int
	Days    int
}

// TimeBreakdown holds per-day averages for each period: a period's sum divided
// by the number of distinct days with at least one entry in it.
type TimeBreakdown struct {
	Morning   float64
	Afternoon float64
	Evening   float64
	Night     float64

	Raw [4]PeriodStats
}

// Average returns the per-day average of p.
func (b TimeBreakdown) Average(p Period) float64 {
	switch p {
	case Morning:
		return b.Morning
	case Afternoon:
		return b.Afternoon
	case Evening:
		return b.Evening
	default:
		return b.Night
	}
}

// Total sums the four averages.
func (b TimeBreakdown) Total() float64 {
	return b.Morning + b.Afternoon + b.Evening + b.Night
}

// RawTotal sums the grams recorded across all periods.
func (b TimeBreakdown) RawTotal() float64 {
	var sum float64
	for _, s := range b.Raw {
		sum += s.Sum
	}
	return sum
}

// PeakPeriod is the period with the highest average. Ties go to the earlier
// period, so an empty breakdown reports Morning.
func (b TimeBreakdown) PeakPeriod() Period {
	peak := Morning
	for _, p := range Periods[1:] {
		if b.Average(p) > b.Average(peak) {
			peak = p
		}
	}
	return peak
}

// Percentage is p's share of Total, in percent.
func (b TimeBreakdown) Percentage(p Period) float64 {
	total := b.Total()
	if total <= 0 {
		return 0
	}
	return b.Average(p) / total * 100
}

func periodStats(entries []model.Entry, loc *time.Location) [4]PeriodStats {
	var stats [4]PeriodStats
	var days [4]map[string]struct{}
	for i := range days {
		days[i] = make(map[string]struct{})
	}
	for _, e := range entries {
		p := PeriodOf(e.Timestamp.In(loc).Hour())
		stats[p].Sum += e.Grams
		stats[p].Entries++
		days[p][e.DayKey] = struct{}{}
	}
	for i := range stats {
		stats[i].Days = len(days[i])
	}
	return stats
}

// CalculateTimeBreakdown buckets entries by the local hour of their timestamp.
func CalculateTimeBreakdown(entries []model.Entry, loc *time.Location) TimeBreakdown {
	stats := periodStats(entries, loc)
	return TimeBreakdown{
		Morning:   average(stats[Morning].Sum, stats[Morning].Days),
		Afternoon: average(stats[Afternoon].Sum, stats[Afternoon].Days),
		Evening:   average(stats[Evening].Sum, stats[Evening].Days),
		Night:     average(stats[Night].Sum, stats[Night].Days),
		Raw:       stats,
	}
}

// timeOfDayInsight ignores night entries. A period qualifies once it has
// enough entries; at least two must qualify and their averages must spread.
func timeOfDayInsight(entries []model.Entry, _ model.Settings, now time.Time) (model.Insight, bool) {
	b := CalculateTimeBreakdown(entries, now.Location())

	var qualifying []Period
	for _, p := range []Period{Morning, Afternoon, Evening} {
		if b.Raw[p].Entries >= timeOfDayMinEntries {
			qualifying = append(qualifying, p)
		}
	}
	if len(qualifying) < timeOfDayMinPeriods {
		return model.Insight{}, false
	}

	high, low := qualifying[0], qualifying[0]
	for _, p := range qualifying[1:] {
		if b.Average(p) > b.Average(high) {
			high = p
		}
		if b.Average(p) < b.Average(low) {
			low = p
		}
	}
	if b.Average(high)-b.Average(low) < timeOfDayMinSpread {
		return model.Insight{}, false
	}
	return model.Insight{
		Message:  fmt.Sprintf("%s is your peak sugar time at %dg average", high, int(b.Average(high))),
		Category: model.CategoryTimeOfDay,
		Icon:     "clock.fill",
	}, true
}
