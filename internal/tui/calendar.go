package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sugr/internal/analytics"
	"github.com/sadopc/sugr/internal/model"
)

var weekdayHeaders = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type calendarModel struct {
	env    env
	width  int
	height int

	cursor   time.Time // selected day, midnight in env.loc
	entries  []model.Entry
	totals   map[string]float64
	settings model.Settings
}

func newCalendarModel(e env) calendarModel {
	return calendarModel{
		env:      e,
		cursor:   model.StartOfDay(e.now(), e.loc),
		settings: model.DefaultSettings(),
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type calendarDataMsg struct {
	entries  []model.Entry
	settings model.Settings
}

func (c calendarModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := c.env.store.AllEntries()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		settings, err := c.env.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		return calendarDataMsg{entries: entries, settings: settings}
	}
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarDataMsg:
		c.entries = msg.entries
		c.totals = analytics.DailyTotals(msg.entries)
		c.settings = msg.settings
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			c.move(-1)
		case key.Matches(msg, keys.Right):
			c.move(1)
		case key.Matches(msg, keys.Up):
			c.move(-7)
		case key.Matches(msg, keys.Down):
			c.move(7)
		case key.Matches(msg, keys.Today):
			c.cursor = model.StartOfDay(c.env.now(), c.env.loc)
		case key.Matches(msg, keys.Enter):
			dayKey := c.cursorKey()
			return c, func() tea.Msg { return openDayMsg{dayKey: dayKey} }
		}
	}
	return c, nil
}

// move shifts the selection by n days, never past today.
func (c *calendarModel) move(n int) {
	next := c.cursor.AddDate(0, 0, n)
	if next.After(model.StartOfDay(c.env.now(), c.env.loc)) {
		return
	}
	c.cursor = next
}

func (c calendarModel) cursorKey() string {
	return model.DayKey(c.cursor, c.env.loc)
}

// monthStart is the first day of the month shown.
func (c calendarModel) monthStart() time.Time {
	return time.Date(c.cursor.Year(), c.cursor.Month(), 1, 0, 0, 0, 0, c.env.loc)
}

// weeks lays out the shown month Monday first. Cells outside the month are
// zero times.
func (c calendarModel) weeks() [][7]time.Time {
	first := c.monthStart()
	offset := (int(first.Weekday()) + 6) % 7

	var out [][7]time.Time
	var week [7]time.Time
	col := offset
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		week[col] = d
		col++
		if col == 7 {
			out = append(out, week)
			week = [7]time.Time{}
			col = 0
		}
	}
	if col > 0 {
		out = append(out, week)
	}
	return out
}

func (c calendarModel) view() string {
	w := c.width - 4

	title := titleStyle.Render(c.monthStart().Format("January 2006"))

	var rows []string
	rows = append(rows, title, "")

	var head []string
	for i, h := range weekdayHeaders {
		fg := colorMuted
		if i >= 5 {
			fg = colorSecondary
		}
		head = append(head, cellStyle.Foreground(fg).Render(h))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, head...))

	today := model.StartOfDay(c.env.now(), c.env.loc)
	for _, week := range c.weeks() {
		var cells []string
		for _, d := range week {
			cells = append(cells, c.renderCell(d, today))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	rows = append(rows, "", c.renderDetail(), "")
	rows = append(rows, mutedStyle.Render("  arrows: move  t: today  enter: open day"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (c calendarModel) renderCell(d, today time.Time) string {
	if d.IsZero() {
		return cellStyle.Render("")
	}

	label := fmt.Sprintf("%d", d.Day())
	fg := colorMuted
	if total, ok := c.totals[model.DayKey(d, c.env.loc)]; ok {
		fg = statusColor(c.settings.StatusFor(total))
	}
	if d.After(today) {
		fg = colorSubtle
	}
	style := cellStyle
	if d.Equal(c.cursor) {
		style = selectedCellStyle
	}
	style = style.Foreground(fg)
	return style.Render(label)
}

func (c calendarModel) renderDetail() string {
	dayKey := c.cursorKey()
	entries := analytics.EntriesForDay(c.entries, dayKey)
	header := titleStyle.Render(dayTitle(dayKey, c.env.loc))

	if len(entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, mutedStyle.Render("  No entries"))
	}

	total := c.totals[dayKey]
	st := c.settings.StatusFor(total)
	lines := []string{
		fmt.Sprintf("%s  %s %s", header, highlightStyle.Render(formatGrams(total)), statusStyle(st).Render(st.String())),
	}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("  %s  %-24s %8s",
			e.Timestamp.In(c.env.loc).Format("15:04"), e.DisplayName(), formatGrams(e.Grams)))
	}
	return strings.Join(lines, "\n")
}
