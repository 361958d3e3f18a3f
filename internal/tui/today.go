package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sugr/internal/analytics"
	"github.com/sadopc/sugr/internal/model"
)

const (
	formAdd  = "add"
	formEdit = "edit"
)

type todayModel struct {
	env    env
	width  int
	height int

	dayKey   string
	all      []model.Entry
	entries  []model.Entry // entries of dayKey, by item number
	settings model.Settings
	insight  model.Insight
	cursor   int

	formActive bool
	form       *huh.Form
	formType   string
	editingID  string

	// Form field pointers (survive value copies)
	formGrams *string
	formLabel *string
}

func newTodayModel(e env) todayModel {
	grams, label := "", ""
	return todayModel{
		env:       e,
		dayKey:    e.todayKey(),
		settings:  model.DefaultSettings(),
		insight:   model.PlaceholderInsight,
		formGrams: &grams,
		formLabel: &label,
	}
}

func (d *todayModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type todayDataMsg struct {
	entries  []model.Entry
	settings model.Settings
}

func (d todayModel) refresh() tea.Cmd {
	return func() tea.Msg {
		entries, err := d.env.store.AllEntries()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Load error: %v", err), isError: true}
		}
		settings, err := d.env.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		return todayDataMsg{entries: entries, settings: settings}
	}
}

func (d todayModel) total() float64 {
	var sum float64
	for _, e := range d.entries {
		sum += e.Grams
	}
	return sum
}

// todayTotal is the total of the current calendar day, whichever day is shown.
func (d todayModel) todayTotal() float64 {
	return analytics.DailyTotals(d.all)[d.env.todayKey()]
}

func (d todayModel) isToday() bool {
	return d.dayKey == d.env.todayKey()
}

func (d todayModel) update(msg tea.Msg) (todayModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}

	switch msg := msg.(type) {
	case todayDataMsg:
		d.all = msg.entries
		d.settings = msg.settings
		d.insight = analytics.SelectInsight(d.all, d.settings, d.env.today())
		d.selectDay(d.dayKey)
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.entries)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Left):
			d.selectDay(model.ShiftDayKey(d.dayKey, -1))
		case key.Matches(msg, keys.Right):
			if !d.isToday() {
				d.selectDay(model.ShiftDayKey(d.dayKey, 1))
			}
		case key.Matches(msg, keys.Today):
			d.selectDay(d.env.todayKey())
		case key.Matches(msg, keys.New):
			return d.showAddForm()
		case key.Matches(msg, keys.Enter):
			if len(d.entries) > 0 {
				return d.showEditForm()
			}
		case key.Matches(msg, keys.Delete):
			if len(d.entries) > 0 {
				return d.deleteSelected()
			}
		}
	}
	return d, nil
}

// selectDay shows key and clamps the cursor to its entries.
func (d *todayModel) selectDay(key string) {
	if key != d.dayKey {
		d.cursor = 0
	}
	d.dayKey = key
	d.entries = analytics.EntriesForDay(d.all, key)
	if d.cursor >= len(d.entries) {
		d.cursor = max(0, len(d.entries)-1)
	}
}

func (d todayModel) showAddForm() (todayModel, tea.Cmd) {
	*d.formGrams = ""
	*d.formLabel = ""
	d.formType = formAdd
	d.editingID = ""
	return d.openForm("Add entry")
}

func (d todayModel) showEditForm() (todayModel, tea.Cmd) {
	e := d.entries[d.cursor]
	*d.formGrams = fmt.Sprintf("%g", e.Grams)
	*d.formLabel = e.Label
	d.formType = formEdit
	d.editingID = e.ID
	return d.openForm("Edit " + e.DisplayName())
}

func (d todayModel) openForm(title string) (todayModel, tea.Cmd) {
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Sugar (g)").Value(d.formGrams).
				Validate(func(s string) error {
					_, err := parseGramsInput(s)
					return err
				}),
			huh.NewInput().Title("Label (optional)").Value(d.formLabel),
		).Title(title),
	).WithShowHelp(true).WithShowErrors(true)

	d.formActive = true
	return d, d.form.Init()
}

func (d todayModel) updateForm(msg tea.Msg) (todayModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		d.form = nil
		text, err := d.saveForm()
		if err != nil {
			return d, statusCmd(err.Error(), true)
		}
		return d, tea.Batch(statusCmd(text, false), changed)
	}

	return d, cmd
}

// saveForm writes the add or edit form to the store and returns a status line.
func (d todayModel) saveForm() (string, error) {
	grams, err := parseGramsInput(*d.formGrams)
	if err != nil {
		return "", err
	}

	if d.formType == formEdit {
		if err := d.env.store.UpdateGrams(d.editingID, grams); err != nil {
			return "", fmt.Errorf("update entry: %w", err)
		}
		if err := d.env.store.UpdateLabel(d.editingID, *d.formLabel); err != nil {
			return "", fmt.Errorf("update entry: %w", err)
		}
		d.env.logger.Info("entry updated", "id", d.editingID, "grams", grams)
		return fmt.Sprintf("Updated entry (%s)", formatGrams(grams)), nil
	}

	e, err := d.env.store.AddEntry(grams, *d.formLabel, d.entryTime(), d.env.loc)
	if err != nil {
		return "", fmt.Errorf("add entry: %w", err)
	}
	d.env.logger.Info("entry added", "id", e.ID, "grams", e.Grams, "day", e.DayKey)
	return fmt.Sprintf("Added %s (%s)", e.DisplayName(), formatGrams(e.Grams)), nil
}

// entryTime is now on today, and the current wall-clock time on a past day.
func (d todayModel) entryTime() time.Time {
	now := d.env.today()
	if d.isToday() {
		return now
	}
	day, err := model.ParseDayKey(d.dayKey, d.env.loc)
	if err != nil {
		return now
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, d.env.loc)
}

func (d todayModel) deleteSelected() (todayModel, tea.Cmd) {
	e := d.entries[d.cursor]
	if err := d.env.store.DeleteEntry(e.ID); err != nil {
		return d, statusCmd(fmt.Sprintf("Delete error: %v", err), true)
	}
	d.env.logger.Info("entry deleted", "id", e.ID, "day", e.DayKey)

	remaining := d.all[:0:0]
	for _, x := range d.all {
		if x.ID != e.ID {
			remaining = append(remaining, x)
		}
	}
	d.all = remaining
	d.selectDay(d.dayKey)

	text := fmt.Sprintf("Deleted %s (%s)", e.DisplayName(), formatGrams(e.Grams))
	return d, tea.Batch(statusCmd(text, false), changed)
}

func changed() tea.Msg { return entriesChangedMsg{} }

func (d todayModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	if d.formActive && d.form != nil {
		return activePanelStyle.Width(contentWidth).Render(d.form.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		d.renderTotalPanel(contentWidth),
		d.renderEntriesPanel(contentWidth),
		d.renderInsightPanel(contentWidth),
	)
}

func (d todayModel) renderTotalPanel(w int) string {
	total := d.total()
	st := d.settings.StatusFor(total)

	title := dayTitle(d.dayKey, d.env.loc)
	if d.isToday() {
		title = "Today · " + title
	}

	bar := progress.New(
		progress.WithSolidFill(string(statusColor(st))),
		progress.WithWidth(max(10, w-8)),
		progress.WithoutPercentage(),
	)
	pct := 0.0
	if d.settings.DailyGoal > 0 {
		pct = min(1, total/d.settings.DailyGoal)
	}

	remaining := d.settings.DailyGoal - total
	var left string
	if remaining >= 0 {
		left = mutedStyle.Render(fmt.Sprintf("%s left of %s", formatGrams(remaining), formatGrams(d.settings.DailyGoal)))
	} else {
		left = errorStyle.Render(fmt.Sprintf("%s over %s", formatGrams(-remaining), formatGrams(d.settings.DailyGoal)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(title),
		totalStyle.Width(w-6).Render(formatGrams(total)),
		statusStyle(st).Render(st.String()),
		bar.ViewAs(pct),
		left,
	)
	if d.isToday() {
		return activePanelStyle.Width(w).Render(content)
	}
	return panelStyle.Width(w).Render(content)
}

func (d todayModel) renderEntriesPanel(w int) string {
	title := titleStyle.Render(fmt.Sprintf("Entries (%d)", len(d.entries)))
	if len(d.entries) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			mutedStyle.Render("Nothing logged. Press n to add an entry."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	for i, e := range d.entries {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		row := fmt.Sprintf("%s%s  %-24s %8s",
			cursor,
			e.Timestamp.In(d.env.loc).Format("15:04"),
			e.DisplayName(),
			formatGrams(e.Grams),
		)
		rows = append(rows, style.Render(row))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (d todayModel) renderInsightPanel(w int) string {
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Insight"),
		highlightStyle.Render(d.insight.Message),
	))
}
