package analytics

import (
	"testing"
	"time"

	"github.com/sadopc/sugr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goal = model.DefaultDailyGoal

func TestStreakBefore_WalksBackFromYesterday(t *testing.T) {
	totals := DailyTotals(oneEntryPerDay(10, 0, -1, -2, -3, -5, -6))

	assert.Equal(t, 3, StreakBefore(totals, goal, refNow), "gap at -4 ends the walk")
}

func TestStreakBefore_StopsAtOverGoal(t *testing.T) {
	entries := append(oneEntryPerDay(10, -1, -3), entry(-2, 12, 30))
	assert.Equal(t, 1, StreakBefore(DailyTotals(entries), goal, refNow))
}

func TestStreakBefore_IgnoresToday(t *testing.T) {
	totals := DailyTotals(append(oneEntryPerDay(10, -1, -2), entry(0, 9, 99)))
	assert.Equal(t, 2, StreakBefore(totals, goal, refNow))
}

func TestCurrentStreak(t *testing.T) {
	history := func(today ...model.Entry) []model.Entry {
		return append(oneEntryPerDay(10, -1, -2, -3), today...)
	}

	t.Run("today over goal", func(t *testing.T) {
		entries := history(entry(0, 9, 20), entry(0, 15, 6))
		assert.Equal(t, 0, CurrentStreak(DailyTotals(entries), goal, refNow))
	})
	t.Run("today qualifies", func(t *testing.T) {
		entries := history(entry(0, 9, 5))
		assert.Equal(t, 4, CurrentStreak(DailyTotals(entries), goal, refNow))
	})
	t.Run("today empty", func(t *testing.T) {
		assert.Equal(t, 3, CurrentStreak(DailyTotals(history()), goal, refNow))
	})
	t.Run("exactly at goal counts", func(t *testing.T) {
		entries := history(entry(0, 9, goal))
		assert.Equal(t, 4, CurrentStreak(DailyTotals(entries), goal, refNow))
	})
}

// Longest streak only looks at tracked days, so an untracked calendar day
// between two runs does not split them. The current streak walks the
// calendar and stops at the same gap.
func TestLongestStreak_SpansCalendarGaps(t *testing.T) {
	entries := oneEntryPerDay(10, -1, -2, -3, -5, -6, -7)
	days := DayTotals(entries, time.UTC)

	assert.Equal(t, 6, LongestStreak(days, goal))
	assert.Equal(t, 3, StreakBefore(DailyTotals(entries), goal, refNow))
}

func TestLongestStreak_ResetsOnOverGoalDay(t *testing.T) {
	entries := append(oneEntryPerDay(10, -10, -9, -8, -6, -5), entry(-7, 12, 40))
	days := DayTotals(entries, time.UTC)

	assert.Equal(t, 3, LongestStreak(days, goal))
	assert.Equal(t, 0, LongestStreak(nil, goal))
}

func TestPerfectWeek_SevenConsecutiveTrackedDays(t *testing.T) {
	entries := oneEntryPerDay(12, -6, -5, -4, -3, -2, -1, 0)
	days := DayTotals(entries, time.UTC)

	assert.Equal(t, 7, LongestStreak(days, goal))
	assert.True(t, HasPerfectWeek(days, goal))
	assert.False(t, HasPerfectWeek(days[:6], goal))
}

func TestDaysUnderGoal(t *testing.T) {
	entries := append(oneEntryPerDay(10, -1, -2, -4), entry(-3, 12, 26))
	assert.Equal(t, 3, DaysUnderGoal(DayTotals(entries, time.UTC), goal))
}

func TestStreakInsight_Bands(t *testing.T) {
	tests := []struct {
		days int
		want string
		icon string
	}{
		{2, "", ""},
		{3, "You're on a 3-day streak! Keep it going for 7 days", "flame.fill"},
		{6, "You're on a 6-day streak! Keep it going for 7 days", "flame.fill"},
		{7, "Amazing 7-day streak! Push for 14 days", "bolt.fill"},
		{13, "Amazing 13-day streak! Push for 14 days", "bolt.fill"},
		{14, "", ""},
	}
	for _, tt := range tests {
		var offsets []int
		for i := 1; i <= tt.days; i++ {
			offsets = append(offsets, -i)
		}
		insight, ok := streakInsight(oneEntryPerDay(10, offsets...), model.DefaultSettings(), refNow)
		if tt.want == "" {
			assert.False(t, ok, "%d-day streak", tt.days)
			continue
		}
		require.True(t, ok, "%d-day streak", tt.days)
		assert.Equal(t, tt.want, insight.Message)
		assert.Equal(t, tt.icon, insight.Icon)
		assert.Equal(t, model.CategoryStreakProgress, insight.Category)
	}
}
