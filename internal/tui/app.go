package tui

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sugr/internal/export"
	"github.com/sadopc/sugr/internal/store"
)

var exportFormats = []string{"csv", "json"}

// Options configures the dashboard. Zero values fall back to the local zone,
// the wall clock, the working directory and a discarding logger.
type Options struct {
	Location  *time.Location
	Now       func() time.Time
	ExportDir string
	Logger    *slog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	env       env
	exportDir string
	width     int
	height    int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	today    todayModel
	chart    chartModel
	calendar calendarModel
	insights insightsModel
	settings settingsModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, opts Options) App {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := env{store: s, loc: opts.Location, now: opts.Now, logger: opts.Logger}

	h := help.New()
	h.ShowAll = false

	return App{
		env:        e,
		exportDir:  opts.ExportDir,
		activeView: viewToday,
		today:      newTodayModel(e),
		chart:      newChartModel(e),
		calendar:   newCalendarModel(e),
		insights:   newInsightsModel(e),
		settings:   newSettingsModel(e),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.today.refresh(),
		a.settings.refresh(),
	)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.today.setSize(a.width, contentHeight)
		a.chart.setSize(a.width, contentHeight)
		a.calendar.setSize(a.width, contentHeight)
		a.insights.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewToday)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewChart)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewCalendar)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewInsights)
		case key.Matches(msg, keys.Tab5):
			return a.switchView(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % viewState(len(viewNames)))
		}

	case todayDataMsg:
		var cmd tea.Cmd
		a.today, cmd = a.today.update(msg)
		return a, cmd

	case chartDataMsg:
		var cmd tea.Cmd
		a.chart, cmd = a.chart.update(msg)
		return a, cmd

	case calendarDataMsg:
		var cmd tea.Cmd
		a.calendar, cmd = a.calendar.update(msg)
		return a, cmd

	case insightsDataMsg:
		var cmd tea.Cmd
		a.insights, cmd = a.insights.update(msg)
		return a, cmd

	case settingsDataMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.update(msg)
		return a, cmd

	case entriesChangedMsg, settingsChangedMsg:
		return a, a.refreshAll()

	case openDayMsg:
		a.activeView = viewToday
		a.today.selectDay(msg.dayKey)
		return a, a.today.refresh()

	case statusMsg:
		a.status = msg.text
		if msg.isError {
			a.env.logger.Warn("dashboard error", "error", msg.text)
		}
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		a.env.logger.Info("export written", "path", msg.path)
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	return a, a.refreshCurrentView()
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewToday:
		a.today, cmd = a.today.update(msg)
	case viewChart:
		a.chart, cmd = a.chart.update(msg)
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewInsights:
		a.insights, cmd = a.insights.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewToday:
		return a.today.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewToday:
		return a.today.refresh()
	case viewChart:
		return a.chart.refresh()
	case viewCalendar:
		return a.calendar.refresh()
	case viewInsights:
		return a.insights.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

// refreshAll reloads every view after a write so switching tabs never shows
// stale totals.
func (a App) refreshAll() tea.Cmd {
	return tea.Batch(
		a.today.refresh(),
		a.chart.refresh(),
		a.calendar.refresh(),
		a.insights.refresh(),
		a.settings.refresh(),
	)
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewToday:
		content = a.today.view()
	case viewChart:
		content = a.chart.view()
	case viewCalendar:
		content = a.calendar.view()
	case viewInsights:
		content = a.insights.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("sugr")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Today's total is always visible.
	total := a.today.todayTotal()
	st := a.today.settings.StatusFor(total)
	todayInfo := statusStyle(st).Render(fmt.Sprintf(" ● %s / %s", formatGrams(total), formatGrams(a.today.settings.DailyGoal)))

	left := footerStyle.Render(helpView)
	right := todayInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, mutedStyle.Render("Writes to "+a.exportDir))
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(exportFormats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format string) tea.Cmd {
	return func() tea.Msg {
		entries, err := a.env.store.AllEntries()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		now := a.env.today()
		path := filepath.Join(a.exportDir, export.FileName(format, now))

		switch format {
		case "csv":
			if err := export.ToCSV(entries, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		default:
			settings, err := a.env.store.LoadSettings()
			if err != nil {
				return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
			}
			if err := export.ToJSON(entries, settings, a.env.loc, now, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
