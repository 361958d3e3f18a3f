package analytics

import (
	"fmt"
	"time"

	"github.com/sadopc/sugr/internal/model"
)

// StreakBefore counts consecutive qualifying calendar days ending the day
// before now. A day with no entries ends the streak.
func StreakBefore(totals map[string]float64, goal float64, now time.Time) int {
	loc := now.Location()
	day := model.StartOfDay(now, loc).AddDate(0, 0, -1)
	streak := 0
	for qualifies(totals[model.DayKey(day, loc)], goal) {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CurrentStreak is the streak shown to the user. Today counts when it already
// qualifies, resets the streak when it is over goal, and is skipped when empty.
func CurrentStreak(totals map[string]float64, goal float64, now time.Time) int {
	today := totals[model.DayKey(now, now.Location())]
	switch {
	case today > goal:
		return 0
	case today > 0:
		return 1 + StreakBefore(totals, goal, now)
	default:
		return StreakBefore(totals, goal, now)
	}
}

// LongestStreak scans tracked days only, in chronological order. Calendar
// gaps between tracked days do not reset the run; a tracked day over goal does.
func LongestStreak(days []model.DayTotal, goal float64) int {
	longest, run := 0, 0
	for _, d := range days {
		if !qualifies(d.Total, goal) {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

// HasPerfectWeek reports a run of at least seven qualifying tracked days,
// using the same gap semantics as LongestStreak.
func HasPerfectWeek(days []model.DayTotal, goal float64) bool {
	return LongestStreak(days, goal) >= 7
}

// DaysUnderGoal counts tracked days whose total qualifies.
func DaysUnderGoal(days []model.DayTotal, goal float64) int {
	n := 0
	for _, d := range days {
		if qualifies(d.Total, goal) {
			n++
		}
	}
	return n
}

func qualifies(total, goal float64) bool {
	return total > 0 && total <= goal
}

func streakInsight(entries []model.Entry, settings model.Settings, now time.Time) (model.Insight, bool) {
	streak := StreakBefore(DailyTotals(entries), settings.DailyGoal, now)
	switch {
	case streak >= 3 && streak < 7:
		return model.Insight{
			Message:  fmt.Sprintf("You're on a %d-day streak! Keep it going for 7 days", streak),
			Category: model.CategoryStreakProgress,
			Icon:     "flame.fill",
		}, true
	case streak >= 7 && streak < 14:
		return model.Insight{
			Message:  fmt.Sprintf("Amazing %d-day streak! Push for 14 days", streak),
			Category: model.CategoryStreakProgress,
			Icon:     "bolt.fill",
		}, true
	}
	return model.Insight{}, false
}
