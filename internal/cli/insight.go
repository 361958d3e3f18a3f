package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/sugr/internal/analytics"
	"github.com/sadopc/sugr/internal/model"
	"github.com/sadopc/sugr/internal/store"
)

type todaySummary struct {
	Date      string        `json:"date"`
	Total     float64       `json:"total_grams"`
	Goal      float64       `json:"daily_goal"`
	Remaining float64       `json:"remaining_grams"`
	Status    string        `json:"status"`
	Entries   []model.Entry `json:"entries"`
	Insight   model.Insight `json:"insight"`
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's total, goal progress and insight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store, loc *time.Location) error {
			now := nowFunc().In(loc)
			all, settings, err := loadAll(s)
			if err != nil {
				return err
			}

			key := model.DayKey(now, loc)
			day := analytics.EntriesForDay(all, key)
			total := analytics.DailyTotals(day)[key]
			sum := todaySummary{
				Date:      key,
				Total:     total,
				Goal:      settings.DailyGoal,
				Remaining: max(0, settings.DailyGoal-total),
				Status:    settings.StatusFor(total).String(),
				Entries:   day,
				Insight:   analytics.SelectInsight(all, settings, now),
			}
			if sum.Entries == nil {
				sum.Entries = []model.Entry{}
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), sum)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", sum.Date)
			fmt.Fprintf(out, "Total: %.1fg / %.0fg (%s)\n", sum.Total, sum.Goal, sum.Status)
			fmt.Fprintf(out, "Remaining: %.1fg\n", sum.Remaining)
			for _, e := range day {
				fmt.Fprintf(out, "  %s\t%s\t%.1fg\n", e.Timestamp.In(loc).Format("15:04"), e.DisplayName(), e.Grams)
			}
			fmt.Fprintf(out, "Insight: %s\n", sum.Insight.Message)
			return nil
		})
	},
}

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Print the current insight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store, loc *time.Location) error {
			all, settings, err := loadAll(s)
			if err != nil {
				return err
			}
			insight, rule := analytics.NewSelector().SelectNamed(all, settings, nowFunc().In(loc))
			logger.Debug("insight selected", "rule", rule, "category", insight.Category)
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), insight)
			}
			fmt.Fprintln(cmd.OutOrStdout(), insight.Message)
			return nil
		})
	},
}

type statsReport struct {
	analytics.Stats
	WeeklyTrend  analytics.WeeklyTrend         `json:"weekly_trend"`
	TimeOfDay    map[string]float64            `json:"time_of_day"`
	Achievements []analytics.AchievementStatus `json:"achievements"`
	Unlocked     int                           `json:"unlocked"`
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks, trends and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.Store, loc *time.Location) error {
			now := nowFunc().In(loc)
			all, settings, err := loadAll(s)
			if err != nil {
				return err
			}

			st := analytics.ComputeStats(all, settings, now)
			statuses := analytics.EvaluateAchievements(st)
			breakdown := analytics.CalculateTimeBreakdown(all, loc)
			report := statsReport{
				Stats:        st,
				WeeklyTrend:  analytics.CalculateWeeklyTrend(all, now),
				TimeOfDay:    map[string]float64{},
				Achievements: statuses,
				Unlocked:     analytics.UnlockedCount(statuses),
			}
			for _, p := range analytics.Periods {
				report.TimeOfDay[p.String()] = breakdown.Average(p)
			}
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Current streak: %d days\n", st.CurrentStreak)
			fmt.Fprintf(out, "Longest streak: %d days\n", st.LongestStreak)
			fmt.Fprintf(out, "Days tracked: %d (%d under goal, %.0f%%)\n", st.TotalDaysTracked, st.DaysUnderGoal, st.SuccessRate)
			fmt.Fprintf(out, "Daily average: %.1fg | Best day: %.1fg\n", st.AverageDaily, st.BestDay)
			if t := report.WeeklyTrend; t.HasEnoughData() {
				fmt.Fprintf(out, "This week: %.1fg avg | Last week: %.1fg avg\n", t.ThisWeekAverage, t.LastWeekAverage)
			}
			fmt.Fprintf(out, "Peak time: %s\n", breakdown.PeakPeriod())
			fmt.Fprintf(out, "Weekends: %s\n", st.WeekdayWeekend.Pattern())
			fmt.Fprintf(out, "Achievements: %d/%d\n", report.Unlocked, len(statuses))
			for _, a := range statuses {
				mark := " "
				if a.Unlocked {
					mark = "x"
				}
				fmt.Fprintf(out, "  [%s] %s\t%s\n", mark, a.Title, a.Description)
			}
			return nil
		})
	},
}

func loadAll(s *store.Store) ([]model.Entry, model.Settings, error) {
	all, err := s.AllEntries()
	if err != nil {
		return nil, model.Settings{}, err
	}
	settings, err := s.LoadSettings()
	if err != nil {
		return nil, model.Settings{}, err
	}
	return all, settings, nil
}

func init() {
	rootCmd.AddCommand(todayCmd, insightCmd, statsCmd)
}
