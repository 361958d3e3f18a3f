package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sugr/internal/model"
	"github.com/sadopc/sugr/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewToday viewState = iota
	viewChart
	viewCalendar
	viewInsights
	viewSettings
)

var viewNames = []string{"Today", "Chart", "Calendar", "Insights", "Settings"}

// env is shared by every view. The zone of now() is ignored; day keys are
// always derived in loc.
type env struct {
	store  *store.Store
	loc    *time.Location
	now    func() time.Time
	logger *slog.Logger
}

func (e env) today() time.Time {
	return e.now().In(e.loc)
}

func (e env) todayKey() string {
	return model.DayKey(e.now(), e.loc)
}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// openDayMsg asks the app to show a day on the Today view.
type openDayMsg struct {
	dayKey string
}

// entriesChangedMsg is sent after an entry was added, edited or deleted so
// the other views can reload.
type entriesChangedMsg struct{}

type settingsChangedMsg struct {
	settings model.Settings
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

// --- Helpers ---

func formatGrams(g float64) string {
	return fmt.Sprintf("%.1fg", g)
}

func parseGramsInput(s string) (float64, error) {
	g, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("enter a number of grams")
	}
	if g <= 0 {
		return 0, store.ErrInvalidGrams
	}
	return g, nil
}

func statusColor(st model.Status) lipgloss.Color {
	switch st {
	case model.StatusGood:
		return colorSuccess
	case model.StatusCaution:
		return colorWarning
	default:
		return colorError
	}
}

func statusStyle(st model.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(statusColor(st))
}

// dayTitle renders a day key as "Wed, Mar 18".
func dayTitle(key string, loc *time.Location) string {
	t, err := model.ParseDayKey(key, loc)
	if err != nil {
		return key
	}
	return t.Format("Mon, Jan 02")
}
