package analytics

import (
	"math"
	"time"

	"github.com/sadopc/sugr/internal/model"
)

// RequirementKind selects which statistic an achievement tests.
type RequirementKind int

const (
	RequireStreak RequirementKind = iota
	RequireTotalDays
	RequireDaysUnderGoal
	RequirePerfectWeek
)

// Requirement is the unlock condition of an achievement. Days is unused for
// RequirePerfectWeek.
type Requirement struct {
	Kind RequirementKind
	Days int
}

// Achievement is a static catalog entry.
type Achievement struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Requirement Requirement `json:"-"`
}

// Achievements is the ordered catalog.
var Achievements = []Achievement{
	{"First Step", "Track your first day", "figure.walk", Requirement{RequireTotalDays, 1}},
	{"Week Warrior", "Track for 7 days", "calendar.badge.clock", Requirement{RequireTotalDays, 7}},
	{"Monthly Master", "Track for 30 days", "calendar", Requirement{RequireTotalDays, 30}},
	{"On Fire", "3-day streak under goal", "flame.fill", Requirement{RequireStreak, 3}},
	{"Unstoppable", "7-day streak under goal", "bolt.fill", Requirement{RequireStreak, 7}},
	{"Sugar Master", "14-day streak under goal", "crown.fill", Requirement{RequireStreak, 14}},
	{"Perfect Week", "7 consecutive days under goal", "star.circle.fill", Requirement{Kind: RequirePerfectWeek}},
	{"Goal Getter", "10 days under goal", "target", Requirement{RequireDaysUnderGoal, 10}},
	{"Sugar Champion", "30 days under goal", "trophy.fill", Requirement{RequireDaysUnderGoal, 30}},
}

// Stats are the figures computed once per evaluation.
type Stats struct {
	CurrentStreak    int  `json:"current_streak"`
	LongestStreak    int  `json:"longest_streak"`
	TotalDaysTracked int  `json:"total_days_tracked"`
	DaysUnderGoal    int  `json:"days_under_goal"`
	PerfectWeek      bool `json:"perfect_week"`

	AverageDaily   float64        `json:"average_daily"`
	BestDay        float64        `json:"best_day"`
	SuccessRate    float64        `json:"success_rate"`
	WeekdayWeekend WeekdayWeekend `json:"weekday_weekend"`
}

// ComputeStats derives the streak and day-count statistics.
func ComputeStats(entries []model.Entry, settings model.Settings, now time.Time) Stats {
	settings = settings.Normalize()
	loc := now.Location()
	totals := DailyTotals(entries)
	days := sortedDayTotals(totals, loc)
	goal := settings.DailyGoal

	st := Stats{
		CurrentStreak:    CurrentStreak(totals, goal, now),
		LongestStreak:    LongestStreak(days, goal),
		TotalDaysTracked: len(days),
		DaysUnderGoal:    DaysUnderGoal(days, goal),
		PerfectWeek:      HasPerfectWeek(days, goal),
		WeekdayWeekend:   CompareWeekdayWeekend(entries, loc),
	}

	var sum float64
	positive := 0
	best := math.Inf(1)
	for _, d := range days {
		if d.Total <= 0 {
			continue
		}
		sum += d.Total
		positive++
		best = math.Min(best, d.Total)
	}
	st.AverageDaily = average(sum, positive)
	if positive > 0 {
		st.BestDay = best
	}
	if st.TotalDaysTracked > 0 {
		st.SuccessRate = float64(st.DaysUnderGoal) / float64(st.TotalDaysTracked) * 100
	}
	return st
}

// Met reports whether stats satisfy r.
func (r Requirement) Met(st Stats) bool {
	switch r.Kind {
	case RequireStreak:
		return st.LongestStreak >= r.Days
	case RequireTotalDays:
		return st.TotalDaysTracked >= r.Days
	case RequireDaysUnderGoal:
		return st.DaysUnderGoal >= r.Days
	case RequirePerfectWeek:
		return st.PerfectWeek
	}
	return false
}

// AchievementStatus pairs a catalog entry with its derived unlock state.
type AchievementStatus struct {
	Achievement
	Unlocked bool `json:"unlocked"`
}

// EvaluateAchievements tests every catalog entry against st.
func EvaluateAchievements(st Stats) []AchievementStatus {
	out := make([]AchievementStatus, len(Achievements))
	for i, a := range Achievements {
		out[i] = AchievementStatus{Achievement: a, Unlocked: a.Requirement.Met(st)}
	}
	return out
}

// UnlockedCount counts unlocked entries.
func UnlockedCount(statuses []AchievementStatus) int {
	n := 0
	for _, s := range statuses {
		if s.Unlocked {
			n++
		}
	}
	return n
}
