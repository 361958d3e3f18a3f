package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sugr/internal/analytics"
	"github.com/sadopc/sugr/internal/model"
)

type insightsModel struct {
	env    env
	width  int
	height int

	loaded       bool
	insight      model.Insight
	stats        analytics.Stats
	trend        analytics.WeeklyTrend
	breakdown    analytics.TimeBreakdown
	achievements []analytics.AchievementStatus
}

func newInsightsModel(e env) insightsModel {
	return insightsModel{env: e, insight: model.PlaceholderInsight}
}

func (m *insightsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type insightsDataMsg struct {
	insight      model.Insight
	stats        analytics.Stats
	trend        analytics.WeeklyTrend
	breakdown    analytics.TimeBreakdown
	achievements []analytics.AchievementStatus
}

// refresh evaluates every analytic against one clock reading.
func (m insightsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.env.store.AllEntries()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		settings, err := m.env.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		now := m.env.today()
		stats := analytics.ComputeStats(entries, settings, now)
		return insightsDataMsg{
			insight:      analytics.SelectInsight(entries, settings, now),
			stats:        stats,
			trend:        analytics.CalculateWeeklyTrend(entries, now),
			breakdown:    analytics.CalculateTimeBreakdown(entries, m.env.loc),
			achievements: analytics.EvaluateAchievements(stats),
		}
	}
}

func (m insightsModel) update(msg tea.Msg) (insightsModel, tea.Cmd) {
	if msg, ok := msg.(insightsDataMsg); ok {
		m.loaded = true
		m.insight = msg.insight
		m.stats = msg.stats
		m.trend = msg.trend
		m.breakdown = msg.breakdown
		m.achievements = msg.achievements
	}
	return m, nil
}

func (m insightsModel) view() string {
	w := m.width - 4
	if !m.loaded {
		return panelStyle.Width(w).Render(mutedStyle.Render("Loading insights..."))
	}

	insight := panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Insight"),
		highlightStyle.Render(m.insight.Message),
	))

	half := w/2 - 1
	left := panelStyle.Width(half).Render(m.renderStats())
	right := panelStyle.Width(half).Render(m.renderPatterns())

	return lipgloss.JoinVertical(lipgloss.Left,
		insight,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		panelStyle.Width(w).Render(m.renderAchievements()),
	)
}

func (m insightsModel) renderStats() string {
	st := m.stats
	rows := []string{
		titleStyle.Render("Streaks"),
		fmt.Sprintf("Current streak   %s", accentStyle.Render(fmt.Sprintf("%d days", st.CurrentStreak))),
		fmt.Sprintf("Longest streak   %d days", st.LongestStreak),
		fmt.Sprintf("Days tracked     %d", st.TotalDaysTracked),
		fmt.Sprintf("Days under goal  %d", st.DaysUnderGoal),
		fmt.Sprintf("Success rate     %.0f%%", st.SuccessRate),
		fmt.Sprintf("Daily average    %s", formatGrams(st.AverageDaily)),
		fmt.Sprintf("Best day         %s", formatGrams(st.BestDay)),
	}
	return strings.Join(rows, "\n")
}

func (m insightsModel) renderPatterns() string {
	rows := []string{titleStyle.Render("This week vs last")}
	if m.trend.HasEnoughData() {
		change := fmt.Sprintf("%.0f%% lower", m.trend.PercentChange())
		style := successStyle
		if !m.trend.IsImproving() {
			change = fmt.Sprintf("%.0f%% higher", -m.trend.PercentChange())
			style = warningStyle
		}
		rows = append(rows,
			fmt.Sprintf("%s vs %s  %s",
				formatGrams(m.trend.ThisWeekAverage), formatGrams(m.trend.LastWeekAverage), style.Render(change)))
	} else {
		rows = append(rows, mutedStyle.Render("Not enough data yet"))
	}

	rows = append(rows, "", titleStyle.Render("Time of day"))
	peak := m.breakdown.PeakPeriod()
	for _, p := range analytics.Periods {
		line := fmt.Sprintf("%-10s %7s  %3.0f%%", p.String(), formatGrams(m.breakdown.Average(p)), m.breakdown.Percentage(p))
		if p == peak && m.breakdown.Total() > 0 {
			line = accentStyle.Render(line)
		}
		rows = append(rows, line)
	}

	ww := m.stats.WeekdayWeekend
	rows = append(rows, "", titleStyle.Render("Weekdays vs weekends"),
		fmt.Sprintf("Weekday %s  Weekend %s", formatGrams(ww.WeekdayAverage), formatGrams(ww.WeekendAverage)),
		mutedStyle.Render(ww.Pattern()),
	)
	return strings.Join(rows, "\n")
}

func (m insightsModel) renderAchievements() string {
	rows := []string{titleStyle.Render(fmt.Sprintf("Achievements %d/%d",
		analytics.UnlockedCount(m.achievements), len(m.achievements)))}
	for _, a := range m.achievements {
		mark, style := "[ ]", mutedStyle
		if a.Unlocked {
			mark, style = "[x]", successStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s %-16s %s", mark, a.Title, a.Description)))
	}
	return strings.Join(rows, "\n")
}
