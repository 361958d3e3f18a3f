package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/sugr/internal/model"
	"github.com/sadopc/sugr/internal/store"
)

// refNow is a Wednesday afternoon.
var refNow = time.Date(2026, 3, 18, 14, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T) (App, *store.Store) {
	t.Helper()
	s := newTestStore(t)
	app := NewApp(s, Options{
		Location:  time.UTC,
		Now:       func() time.Time { return refNow },
		ExportDir: t.TempDir(),
	})
	return app, s
}

// addAt stores an entry dayOffset days from refNow at the given hour.
func addAt(t *testing.T, s *store.Store, grams float64, label string, dayOffset, hour int) *model.Entry {
	t.Helper()
	at := time.Date(2026, 3, 18+dayOffset, hour, 0, 0, 0, time.UTC)
	e, err := s.AddEntry(grams, label, at, time.UTC)
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	return e
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// loadedToday returns the Today view after its first data load.
func loadedToday(t *testing.T, app App) todayModel {
	t.Helper()
	d := app.today
	d, _ = d.update(d.refresh()())
	return d
}

// ============================================================
// Views
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 5 {
		t.Fatalf("expected 5 view names, got %d", len(viewNames))
	}
	expected := []string{"Today", "Chart", "Calendar", "Insights", "Settings"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewToday != 0 || viewChart != 1 || viewCalendar != 2 || viewInsights != 3 || viewSettings != 4 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// Today view
// ============================================================

func TestTodayInit(t *testing.T) {
	app, _ := newTestApp(t)
	d := app.today

	if d.dayKey != "2026-03-18" {
		t.Fatalf("dayKey = %q, want 2026-03-18", d.dayKey)
	}
	if d.formActive {
		t.Fatal("form should not be active initially")
	}
	if d.insight != model.PlaceholderInsight {
		t.Fatalf("expected placeholder insight, got %q", d.insight.Message)
	}
}

func TestTodayLoadsSelectedDay(t *testing.T) {
	app, s := newTestApp(t)
	addAt(t, s, 10, "", 0, 8)
	addAt(t, s, 10, "soda", 0, 11)
	addAt(t, s, 18, "", -1, 12)

	d := loadedToday(t, app)

	if len(d.entries) != 2 {
		t.Fatalf("expected 2 entries today, got %d", len(d.entries))
	}
	if d.total() != 20 {
		t.Fatalf("total = %v, want 20", d.total())
	}
	if d.todayTotal() != 20 {
		t.Fatalf("todayTotal = %v, want 20", d.todayTotal())
	}
	want := "At this pace, you might hit ~32g by end of day"
	if d.insight.Message != want {
		t.Fatalf("insight = %q, want %q", d.insight.Message, want)
	}
}

func TestTodayDayNavigation(t *testing.T) {
	app, s := newTestApp(t)
	addAt(t, s, 10, "", 0, 8)
	addAt(t, s, 18, "", -1, 12)
	d := loadedToday(t, app)

	d, _ = d.update(tea.KeyMsg{Type: tea.KeyRight})
	if d.dayKey != "2026-03-18" {
		t.Fatalf("should not move past today, got %q", d.dayKey)
	}

	d, _ = d.update(tea.KeyMsg{Type: tea.KeyLeft})
	if d.dayKey != "2026-03-17" {
		t.Fatalf("left should show yesterday, got %q", d.dayKey)
	}
	if len(d.entries) != 1 || d.total() != 18 {
		t.Fatalf("yesterday: %d entries, total %v", len(d.entries), d.total())
	}
	if d.todayTotal() != 10 {
		t.Fatalf("todayTotal should not follow the selection, got %v", d.todayTotal())
	}

	d, _ = d.update(tea.KeyMsg{Type: tea.KeyLeft})
	d, _ = d.update(runes("t"))
	if !d.isToday() {
		t.Fatalf("t should jump to today, got %q", d.dayKey)
	}
}

func TestTodayCursorBounds(t *testing.T) {
	app, s := newTestApp(t)
	addAt(t, s, 1, "", 0, 8)
	addAt(t, s, 2, "", 0, 9)
	d := loadedToday(t, app)

	d, _ = d.update(tea.KeyMsg{Type: tea.KeyUp})
	if d.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", d.cursor)
	}
	d, _ = d.update(tea.KeyMsg{Type: tea.KeyDown})
	d, _ = d.update(tea.KeyMsg{Type: tea.KeyDown})
	if d.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", d.cursor)
	}
}

func TestTodaySaveFormAdd(t *testing.T) {
	app, s := newTestApp(t)
	d := app.today
	d.formType = formAdd
	*d.formGrams = "12.5"
	*d.formLabel = "cake"

	text, err := d.saveForm()
	if err != nil {
		t.Fatal(err)
	}
	if text != "Added cake (12.5g)" {
		t.Fatalf("status = %q", text)
	}

	entries, _ := s.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.DayKey != "2026-03-18" || e.ItemNumber != 1 || e.Grams != 12.5 {
		t.Fatalf("unexpected entry %+v", e)
	}
	if !e.Timestamp.Equal(refNow) {
		t.Fatalf("timestamp = %v, want %v", e.Timestamp, refNow)
	}
}

func TestTodaySaveFormAddOnPastDay(t *testing.T) {
	app, s := newTestApp(t)
	d := app.today
	d.selectDay("2026-03-15")
	d.formType = formAdd
	*d.formGrams = "4"

	if _, err := d.saveForm(); err != nil {
		t.Fatal(err)
	}

	entries, _ := s.ListEntries(store.EntryFilter{DayKey: "2026-03-15"})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry on the past day, got %d", len(entries))
	}
	want := time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC)
	if !entries[0].Timestamp.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", entries[0].Timestamp, want)
	}
}

func TestTodaySaveFormEdit(t *testing.T) {
	app, s := newTestApp(t)
	e := addAt(t, s, 10, "", 0, 8)
	d := loadedToday(t, app)

	d, _ = d.showEditForm()
	if !d.formActive || d.editingID != e.ID {
		t.Fatal("enter should open the edit form for the selected entry")
	}
	if *d.formGrams != "10" {
		t.Fatalf("form grams = %q, want 10", *d.formGrams)
	}

	*d.formGrams = "7.5"
	*d.formLabel = "  cookie "
	if _, err := d.saveForm(); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetEntry(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Grams != 7.5 || got.Label != "cookie" {
		t.Fatalf("unexpected entry after edit %+v", got)
	}
}

func TestTodaySaveFormRejectsBadGrams(t *testing.T) {
	app, s := newTestApp(t)
	d := app.today
	d.formType = formAdd

	for _, in := range []string{"", "abc", "0", "-3"} {
		*d.formGrams = in
		if _, err := d.saveForm(); err == nil {
			t.Fatalf("grams %q should be rejected", in)
		}
	}
	if entries, _ := s.AllEntries(); len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestTodayDeleteSelected(t *testing.T) {
	app, s := newTestApp(t)
	first := addAt(t, s, 5, "", 0, 8)
	addAt(t, s, 6, "", 0, 9)
	d := loadedToday(t, app)

	d, cmd := d.update(runes("d"))
	if cmd == nil {
		t.Fatal("delete should return a command")
	}
	if len(d.entries) != 1 {
		t.Fatalf("expected 1 entry left in view, got %d", len(d.entries))
	}
	if _, err := s.GetEntry(first.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("deleted entry should be gone, got %v", err)
	}
}

func TestTodayView(t *testing.T) {
	app, s := newTestApp(t)
	addAt(t, s, 12, "ice cream", 0, 9)
	d := loadedToday(t, app)
	d.setSize(100, 30)

	out := d.view()
	for _, want := range []string{"Today", "12.0g", "ice cream", "13.0g left of 25.0g"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	d.setSize(10, 10)
	if d.view() != "Terminal too small" {
		t.Fatal("narrow terminal should show the size warning")
	}
}

// ============================================================
// Chart view
// ============================================================

func TestChartSeries(t *testing.T) {
	app, s := newTestApp(t)
	addAt(t, s, 30, "", 0, 9)
	addAt(t, s, 10, "", -2, 9)
	addAt(t, s, 99, "", -10, 9)

	c := app.chart
	c.setSize(120, 40)
	c, _ = c.update(c.refresh()())

	if len(c.series) != 7 {
		t.Fatalf("expected 7 days, got %d", len(c.series))
	}
	if c.series[6].DayKey != "2026-03-18" || c.series[0].DayKey != "2026-03-12" {
		t.Fatalf("window = %s..%s", c.series[0].DayKey, c.series[6].DayKey)
	}
	if c.summary.DaysOverLimit != 1 || c.summary.DaysInGreen != 1 {
		t.Fatalf("unexpected summary %+v", c.summary)
	}
	if c.summary.Average != 40.0/7 {
		t.Fatalf("average = %v, want %v", c.summary.Average, 40.0/7)
	}
}

func TestChartPeriodCycles(t *testing.T) {
	app, _ := newTestApp(t)
	c := app.chart

	var cmd tea.Cmd
	for _, want := range []int{14, 21, 30, 7} {
		c, cmd = c.update(tea.KeyMsg{Type: tea.KeyRight})
		if c.days() != want {
			t.Fatalf("days = %d, want %d", c.days(), want)
		}
		if cmd == nil {
			t.Fatal("changing period should reload")
		}
	}

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyLeft})
	if c.days() != 7 {
		t.Fatalf("left at the first period should stay, got %d", c.days())
	}
}

func TestChartBarLabels(t *testing.T) {
	app, _ := newTestApp(t)
	c := app.chart
	c.setSize(120, 40)
	c, _ = c.update(c.refresh()())

	if got := c.barLabel(6, c.series[6]); got != "Wed" {
		t.Fatalf("label = %q, want Wed", got)
	}

	c.period = 3
	c, _ = c.update(c.refresh()())
	if got := c.barLabel(29, c.series[29]); got != "18" {
		t.Fatalf("label = %q, want 18", got)
	}
	if got := c.barLabel(28, c.series[28]); got != "" {
		t.Fatalf("label = %q, want empty", got)
	}
}

// ============================================================
// Calendar view
// ============================================================

func TestCalendarWeeks(t *testing.T) {
	app, _ := newTestApp(t)
	weeks := app.calendar.weeks()

	// March 2026 starts on a Sunday.
	if len(weeks) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(weeks))
	}
	if !weeks[0][0].IsZero() || weeks[0][6].Day() != 1 {
		t.Fatal("first row should end with the 1st")
	}
	if weeks[5][1].Day() != 31 || !weeks[5][2].IsZero() {
		t.Fatal("last row should end on Tuesday the 31st")
	}
}

func TestCalendarNavigation(t *testing.T) {
	app, _ := newTestApp(t)
	c := app.calendar

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyRight})
	if c.cursorKey() != "2026-03-18" {
		t.Fatalf("should not move into the future, got %s", c.cursorKey())
	}

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyUp})
	c, _ = c.update(tea.KeyMsg{Type: tea.KeyUp})
	c, _ = c.update(tea.KeyMsg{Type: tea.KeyUp})
	if c.cursorKey() != "2026-02-25" {
		t.Fatalf("cursor = %s, want 2026-02-25", c.cursorKey())
	}
	if c.monthStart().Month() != time.February {
		t.Fatalf("month should follow the cursor, got %v", c.monthStart().Month())
	}

	c, cmd := c.update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should open the day")
	}
	msg, ok := cmd().(openDayMsg)
	if !ok || msg.dayKey != "2026-02-25" {
		t.Fatalf("unexpected message %#v", msg)
	}

	c, _ = c.update(runes("t"))
	if c.cursorKey() != "2026-03-18" {
		t.Fatalf("t should return to today, got %s", c.cursorKey())
	}
}

func TestCalendarDetail(t *testing.T) {
	app, s := newTestApp(t)
	addAt(t, s, 20, "donut", 0, 10)
	c := app.calendar
	c, _ = c.update(c.refresh()())

	detail := c.renderDetail()
	for _, want := range []string{"donut", "20.0g", "Caution"} {
		if !strings.Contains(detail, want) {
			t.Fatalf("detail missing %q:\n%s", want, detail)
		}
	}
}

// ============================================================
// Insights view
// ============================================================

func TestInsightsRefresh(t *testing.T) {
	app, s := newTestApp(t)
	for day := -6; day <= 0; day++ {
		addAt(t, s, 18, "", day, 9)
	}

	m := app.insights
	m.setSize(140, 40)
	m, _ = m.update(m.refresh()())

	if m.stats.CurrentStreak != 7 || !m.stats.PerfectWeek {
		t.Fatalf("unexpected stats %+v", m.stats)
	}
	if !strings.Contains(m.view(), "Achievements 5/9") {
		t.Fatal("view should show 5 of 9 achievements")
	}
}

func TestInsightsLoading(t *testing.T) {
	app, _ := newTestApp(t)
	app.insights.setSize(80, 20)
	if !strings.Contains(app.insights.view(), "Loading") {
		t.Fatal("insights should show loading before the first refresh")
	}
}

// ============================================================
// Settings view
// ============================================================

func TestSettingsSavePreset(t *testing.T) {
	app, s := newTestApp(t)
	m := app.settings
	*m.preset = model.PresetLowSugar

	saved, err := m.saveSettings()
	if err != nil {
		t.Fatal(err)
	}
	if saved.DailyGoal != model.PresetLowSugar.DailyGoal() {
		t.Fatalf("goal = %v, want %v", saved.DailyGoal, model.PresetLowSugar.DailyGoal())
	}

	stored, _ := s.LoadSettings()
	if stored != saved {
		t.Fatalf("stored %+v, want %+v", stored, saved)
	}
}

func TestSettingsSaveCustom(t *testing.T) {
	app, s := newTestApp(t)
	m := app.settings
	*m.preset = model.PresetCustom
	*m.goal = "30"
	*m.caution = "20"

	saved, err := m.saveSettings()
	if err != nil {
		t.Fatal(err)
	}
	want := model.Settings{DailyGoal: 30, CautionThreshold: 20, Preset: model.PresetCustom}
	if saved != want {
		t.Fatalf("saved %+v, want %+v", saved, want)
	}

	*m.caution = "40"
	if _, err := m.saveSettings(); !errors.Is(err, model.ErrInvalidSettings) {
		t.Fatalf("caution above goal should be rejected, got %v", err)
	}
	if stored, _ := s.LoadSettings(); stored != want {
		t.Fatalf("rejected save changed settings to %+v", stored)
	}
}

func TestSettingsShowFormLoadsCurrentValues(t *testing.T) {
	app, _ := newTestApp(t)
	m, _ := app.settings.showForm()

	if !m.formActive {
		t.Fatal("form should be active")
	}
	if *m.preset != model.PresetWHO || *m.goal != "25" || *m.caution != "15" {
		t.Fatalf("form values %v %q %q", *m.preset, *m.goal, *m.caution)
	}

	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"25", true},
		{" 7.5 ", true},
		{"0", false},
		{"-1", false},
		{"abc", false},
	}
	for _, tt := range tests {
		if err := validatePositive(tt.in); (err == nil) != tt.ok {
			t.Errorf("validatePositive(%q) = %v", tt.in, err)
		}
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app, _ := newTestApp(t)

	if app.activeView != viewToday {
		t.Fatalf("expected today view, got %d", app.activeView)
	}
	if app.isFormActive() {
		t.Fatal("no form should be active")
	}
	if app.Init() == nil {
		t.Fatal("Init should load data")
	}
}

func TestNewAppDefaults(t *testing.T) {
	s := newTestStore(t)
	app := NewApp(s, Options{})

	if app.env.loc != time.Local || app.env.now == nil || app.env.logger == nil {
		t.Fatal("zero options should be filled in")
	}
}

func TestAppViewStates(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 120
	app.height = 40

	for v := viewToday; v <= viewSettings; v++ {
		app.activeView = v
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabSwitching(t *testing.T) {
	app, _ := newTestApp(t)

	m, cmd := app.Update(runes("3"))
	app = m.(App)
	if app.activeView != viewCalendar || cmd == nil {
		t.Fatal("3 should switch to the calendar and load it")
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = m.(App)
	if app.activeView != viewInsights {
		t.Fatalf("tab should advance to insights, got %d", app.activeView)
	}

	app.activeView = viewSettings
	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(App).activeView != viewToday {
		t.Fatal("tab should wrap to today")
	}
}

func TestAppOpenDay(t *testing.T) {
	app, _ := newTestApp(t)
	app.activeView = viewCalendar

	m, cmd := app.Update(openDayMsg{dayKey: "2026-03-10"})
	app = m.(App)
	if app.activeView != viewToday || app.today.dayKey != "2026-03-10" {
		t.Fatalf("open day should show 2026-03-10 on today, got %d %s", app.activeView, app.today.dayKey)
	}
	if cmd == nil {
		t.Fatal("open day should reload")
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header should contain %q", name)
		}
	}
}

func TestAppLoadingState(t *testing.T) {
	app, _ := newTestApp(t)
	// Width 0 means not yet sized
	output := app.View()
	if output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppStatusMessage(t *testing.T) {
	app, _ := newTestApp(t)
	app.width = 160
	app.height = 40

	m, _ := app.Update(statusMsg{text: "test status"})
	app = m.(App)

	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

func TestAppFooterShowsTodayTotal(t *testing.T) {
	app, s := newTestApp(t)
	addAt(t, s, 9, "", 0, 9)
	app.width = 160
	app.height = 40
	app.today = loadedToday(t, app)

	if !strings.Contains(app.renderFooter(), "9.0g / 25.0g") {
		t.Fatal("footer should show today's total against the goal")
	}
}

// ============================================================
// Export
// ============================================================

func TestExportPicker(t *testing.T) {
	app, _ := newTestApp(t)

	m, _ := app.Update(runes("e"))
	app = m.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = m.(App)
	if app.exportCursor != 1 {
		t.Fatalf("cursor = %d, want 1", app.exportCursor)
	}

	m, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = m.(App)
	if app.exportPicking || cmd == nil {
		t.Fatal("enter should close the picker and export")
	}
}

func TestDoExport(t *testing.T) {
	app, s := newTestApp(t)
	addAt(t, s, 12.25, "", 0, 9)

	for _, format := range exportFormats {
		msg := app.doExport(format)()
		done, ok := msg.(exportDoneMsg)
		if !ok {
			t.Fatalf("%s export failed: %#v", format, msg)
		}
		if filepath.Base(done.path) != "sugr-export-18-03-2026."+format {
			t.Fatalf("unexpected file name %s", done.path)
		}
		data, err := os.ReadFile(done.path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "12.") {
			t.Fatalf("%s export missing the total:\n%s", format, data)
		}
	}
}

// ============================================================
// Helpers
// ============================================================

func TestParseGramsInput(t *testing.T) {
	if g, err := parseGramsInput(" 4.5 "); err != nil || g != 4.5 {
		t.Fatalf("parseGramsInput = %v, %v", g, err)
	}
	if _, err := parseGramsInput("0"); !errors.Is(err, store.ErrInvalidGrams) {
		t.Fatalf("zero should be ErrInvalidGrams, got %v", err)
	}
	if _, err := parseGramsInput("lots"); err == nil {
		t.Fatal("text should be rejected")
	}
}

func TestFormatGrams(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0g"},
		{12.25, "12.2g"},
		{25, "25.0g"},
	}
	for _, tt := range tests {
		if got := formatGrams(tt.in); got != tt.want {
			t.Errorf("formatGrams(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatusColor(t *testing.T) {
	if statusColor(model.StatusGood) != colorSuccess ||
		statusColor(model.StatusCaution) != colorWarning ||
		statusColor(model.StatusOverLimit) != colorError {
		t.Fatal("status colors out of order")
	}
}

func TestDayTitle(t *testing.T) {
	if got := dayTitle("2026-03-18", time.UTC); got != "Wed, Mar 18" {
		t.Fatalf("dayTitle = %q", got)
	}
	if got := dayTitle("garbage", time.UTC); got != "garbage" {
		t.Fatalf("bad keys should pass through, got %q", got)
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	bindings := keys.ShortHelp()
	if len(bindings) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test, just verify they do not panic)
// ============================================================

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"total", func() string { return totalStyle.Render("test") }},
		{"cell", func() string { return cellStyle.Render("test") }},
		{"selectedCell", func() string { return selectedCellStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"subtitle", func() string { return subtitleStyle.Render("test") }},
		{"accent", func() string { return accentStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}

	for _, s := range styles {
		result := s.fn()
		if result == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
