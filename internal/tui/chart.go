package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sugr/internal/analytics"
	"github.com/sadopc/sugr/internal/model"
)

// chartPeriods are the selectable window lengths in days.
var chartPeriods = []int{7, 14, 21, 30}

type chartModel struct {
	env    env
	width  int
	height int

	period   int // index into chartPeriods
	series   []model.DayTotal
	summary  analytics.SeriesSummary
	settings model.Settings

	chart barchart.Model
}

func newChartModel(e env) chartModel {
	return chartModel{
		env:      e,
		settings: model.DefaultSettings(),
		chart:    barchart.New(60, 12),
	}
}

func (c *chartModel) setSize(w, h int) {
	c.width = w
	c.height = h
	if len(c.series) > 0 {
		c.buildChart()
	}
}

func (c chartModel) days() int { return chartPeriods[c.period] }

type chartDataMsg struct {
	entries  []model.Entry
	settings model.Settings
}

func (c chartModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := c.env.store.AllEntries()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		settings, err := c.env.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		return chartDataMsg{entries: entries, settings: settings}
	}
}

func (c chartModel) update(msg tea.Msg) (chartModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chartDataMsg:
		c.settings = msg.settings
		c.series = analytics.Series(msg.entries, c.days(), c.env.today())
		c.summary = analytics.SummarizeSeries(c.series, c.settings)
		c.buildChart()
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if c.period > 0 {
				c.period--
				return c, c.refresh()
			}
		case key.Matches(msg, keys.Right), key.Matches(msg, keys.Period):
			c.period = (c.period + 1) % len(chartPeriods)
			return c, c.refresh()
		}
	}
	return c, nil
}

func (c *chartModel) buildChart() {
	chartWidth := c.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if c.height > 30 {
		chartHeight = 16
	}

	c.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for i, d := range c.series {
		bars = append(bars, barchart.BarData{
			Label: c.barLabel(i, d),
			Values: []barchart.BarValue{{
				Name:  d.DayKey,
				Value: d.Total,
				Style: c.barStyle(d),
			}},
		})
	}

	c.chart.PushAll(bars)
	c.chart.Draw()
}

// barLabel names every bar of a week, and every seventh bar of longer windows
// counting back from today.
func (c chartModel) barLabel(i int, d model.DayTotal) string {
	if len(c.series) <= 7 {
		return d.Date.Format("Mon")
	}
	if (len(c.series)-1-i)%7 == 0 {
		return d.Date.Format("02")
	}
	return ""
}

func (c chartModel) barStyle(d model.DayTotal) lipgloss.Style {
	if d.Total == 0 {
		return lipgloss.NewStyle().Foreground(colorSubtle)
	}
	return statusStyle(c.settings.StatusFor(d.Total))
}

func (c chartModel) view() string {
	w := c.width - 4

	var tabs []string
	for i, n := range chartPeriods {
		label := fmt.Sprintf("%dd", n)
		if i == c.period {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	periodTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	var dateLabel string
	if len(c.series) > 0 {
		first, last := c.series[0].Date, c.series[len(c.series)-1].Date
		dateLabel = mutedStyle.Render(fmt.Sprintf("%s to %s", first.Format("Jan 02"), last.Format("Jan 02, 2006")))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Daily Sugar"), "  ", periodTabs, "  ", dateLabel,
	)

	nav := mutedStyle.Render("  ←/→: change period")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", c.chart.View(), "", c.renderSummary(), "", c.renderLegend(), "", nav,
		),
	)
}

func (c chartModel) renderSummary() string {
	if len(c.series) == 0 {
		return mutedStyle.Render("  No data for this period")
	}
	return strings.Join([]string{
		fmt.Sprintf("  Average      %s", highlightStyle.Render(formatGrams(c.summary.Average))),
		fmt.Sprintf("  Over limit   %s", errorStyle.Render(fmt.Sprintf("%d days", c.summary.DaysOverLimit))),
		fmt.Sprintf("  In green     %s", successStyle.Render(fmt.Sprintf("%d days", c.summary.DaysInGreen))),
		fmt.Sprintf("  Daily goal   %s", mutedStyle.Render(formatGrams(c.settings.DailyGoal))),
	}, "\n")
}

func (c chartModel) renderLegend() string {
	var items []string
	for _, st := range []model.Status{model.StatusGood, model.StatusCaution, model.StatusOverLimit} {
		items = append(items, fmt.Sprintf("%s %s", statusStyle(st).Render("●"), st.String()))
	}
	return "  " + strings.Join(items, "  ")
}
