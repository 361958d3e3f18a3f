package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/sugr/internal/model"
)

type settingsModel struct {
	env    env
	width  int
	height int

	settings   model.Settings
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	preset  *model.GoalPreset
	goal    *string
	caution *string
}

func newSettingsModel(e env) settingsModel {
	p := model.PresetWHO
	g, c := "", ""
	return settingsModel{
		env:      e,
		settings: model.DefaultSettings(),
		preset:   &p,
		goal:     &g,
		caution:  &c,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings model.Settings
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.env.store.LoadSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Settings error: %v", err), isError: true}
		}
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.preset = s.settings.Preset
	*s.goal = strconv.FormatFloat(s.settings.DailyGoal, 'f', -1, 64)
	*s.caution = strconv.FormatFloat(s.settings.CautionThreshold, 'f', -1, 64)

	options := make([]huh.Option[model.GoalPreset], len(model.Presets))
	for i, p := range model.Presets {
		label := string(p)
		if p != model.PresetCustom {
			label = fmt.Sprintf("%s (%gg)", p, p.DailyGoal())
		}
		options[i] = huh.NewOption(label, p)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.GoalPreset]().
				Title("Goal preset").
				Options(options...).
				Value(s.preset),
		).Title("Daily goal"),
		huh.NewGroup(
			huh.NewInput().Title("Daily goal (g)").Value(s.goal).Validate(validatePositive),
			huh.NewInput().Title("Caution threshold (g)").Value(s.caution).Validate(validatePositive),
		).Title("Custom goal").WithHideFunc(func() bool {
			return *s.preset != model.PresetCustom
		}),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func validatePositive(v string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		saved, err := s.saveSettings()
		if err != nil {
			return s, statusCmd(err.Error(), true)
		}
		s.settings = saved
		return s, tea.Batch(
			statusCmd(fmt.Sprintf("Goal set to %s (%s)", formatGrams(saved.DailyGoal), saved.Preset), false),
			func() tea.Msg { return settingsChangedMsg{settings: saved} },
		)
	}

	return s, cmd
}

// saveSettings persists the form. Presets overwrite both thresholds; custom
// values must keep the caution threshold below the goal.
func (s settingsModel) saveSettings() (model.Settings, error) {
	if *s.preset != model.PresetCustom {
		st, err := s.env.store.ApplyPreset(*s.preset)
		if err != nil {
			return model.Settings{}, err
		}
		s.env.logger.Info("goal preset applied", "preset", string(st.Preset), "daily_goal", st.DailyGoal)
		return st, nil
	}

	goal, err := strconv.ParseFloat(strings.TrimSpace(*s.goal), 64)
	if err != nil {
		return model.Settings{}, fmt.Errorf("parse daily goal: %w", err)
	}
	caution, err := strconv.ParseFloat(strings.TrimSpace(*s.caution), 64)
	if err != nil {
		return model.Settings{}, fmt.Errorf("parse caution threshold: %w", err)
	}

	st := model.Settings{DailyGoal: goal, CautionThreshold: caution, Preset: model.PresetCustom}
	if err := s.env.store.SaveSettings(st); err != nil {
		return model.Settings{}, err
	}
	s.env.logger.Info("custom goal saved", "daily_goal", goal, "caution_threshold", caution)
	return st, nil
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		formView := s.form.View()
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", formView),
		)
	}

	title := titleStyle.Render("Settings")
	hint := mutedStyle.Render("Press enter to change your goal")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, kv := range [][2]string{
		{"Preset", string(s.settings.Preset)},
		{"Daily goal", formatGrams(s.settings.DailyGoal)},
		{"Caution threshold", formatGrams(s.settings.CautionThreshold)},
	} {
		label := lipgloss.NewStyle().Width(24).Render(kv[0])
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(kv[1])))
	}

	rows = append(rows, "", subtitleStyle.Render("Presets"))
	for _, p := range model.Presets {
		if p == model.PresetCustom {
			continue
		}
		marker := "  "
		if p == s.settings.Preset {
			marker = accentStyle.Render("● ")
		}
		rows = append(rows, fmt.Sprintf("  %s%-18s %s", marker, p, mutedStyle.Render(p.Description())))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
