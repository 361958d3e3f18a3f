package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultDailyGoal        = 25.0
	DefaultCautionThreshold = 15.0
)

// ErrInvalidSettings is returned when a goal/caution pair cannot be stored.
var ErrInvalidSettings = errors.New("invalid settings")

// GoalPreset names a predefined goal/caution pair.
type GoalPreset string

const (
	PresetWHO      GoalPreset = "WHO Recommended"
	PresetAHAWomen GoalPreset = "AHA Women"
	PresetAHAMen   GoalPreset = "AHA Men"
	PresetLowSugar GoalPreset = "Low Sugar"
	PresetCustom   GoalPreset = "Custom"
)

// Presets lists every preset in display order.
var Presets = []GoalPreset{PresetWHO, PresetAHAWomen, PresetAHAMen, PresetLowSugar, PresetCustom}

type presetValues struct {
	goal, caution float64
	description   string
}

var presetTable = map[GoalPreset]presetValues{
	PresetWHO:      {25, 15, "World Health Organization recommendation for adults"},
	PresetAHAWomen: {25, 15, "American Heart Association limit for women"},
	PresetAHAMen:   {36, 24, "American Heart Association limit for men"},
	PresetLowSugar: {15, 10, "Strict low-sugar lifestyle goal"},
	PresetCustom:   {30, 20, "Set your own daily goal"},
}

func (p GoalPreset) DailyGoal() float64        { return presetTable[p].goal }
func (p GoalPreset) CautionThreshold() float64 { return presetTable[p].caution }
func (p GoalPreset) Description() string       { return presetTable[p].description }

// ParsePreset matches a preset by name, ignoring case and separators
// ("aha-men", "AHA Men" and "ahamen" are all accepted).
func ParsePreset(s string) (GoalPreset, error) {
	norm := func(v string) string {
		v = strings.ToLower(v)
		return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(v)
	}
	want := norm(s)
	for _, p := range Presets {
		if norm(string(p)) == want {
			return p, nil
		}
	}
	if want == "who" {
		return PresetWHO, nil
	}
	return "", fmt.Errorf("unknown preset %q", s)
}

// Settings holds the user's thresholds.
type Settings struct {
	DailyGoal        float64
	CautionThreshold float64
	Preset           GoalPreset
}

// DefaultSettings returns the WHO-based defaults.
func DefaultSettings() Settings {
	return Settings{
		DailyGoal:        DefaultDailyGoal,
		CautionThreshold: DefaultCautionThreshold,
		Preset:           PresetWHO,
	}
}

// Validate reports whether the thresholds satisfy 0 < caution < goal.
func (s Settings) Validate() error {
	if s.DailyGoal <= 0 {
		return fmt.Errorf("%w: daily goal must be positive", ErrInvalidSettings)
	}
	if s.CautionThreshold <= 0 {
		return fmt.Errorf("%w: caution threshold must be positive", ErrInvalidSettings)
	}
	if s.CautionThreshold >= s.DailyGoal {
		return fmt.Errorf("%w: caution threshold must be below the daily goal", ErrInvalidSettings)
	}
	return nil
}

// Normalize substitutes defaults for unusable values.
func (s Settings) Normalize() Settings {
	if s.Validate() != nil {
		return DefaultSettings()
	}
	if s.Preset == "" {
		s.Preset = PresetCustom
	}
	return s
}

// ApplyPreset switches to p. Non-custom presets overwrite the thresholds;
// custom keeps the current values.
func (s Settings) ApplyPreset(p GoalPreset) Settings {
	s.Preset = p
	if p != PresetCustom {
		s.DailyGoal = p.DailyGoal()
		s.CautionThreshold = p.CautionThreshold()
	}
	return s
}

// Status classifies a daily total against the thresholds.
type Status int

const (
	StatusGood Status = iota
	StatusCaution
	StatusOverLimit
)

func (s Status) String() string {
	switch s {
	case StatusGood:
		return "Good"
	case StatusCaution:
		return "Caution"
	default:
		return "Over Limit"
	}
}

// StatusFor returns Good up to the caution threshold, Caution up to the goal
// and Over Limit above it.
func (s Settings) StatusFor(grams float64) Status {
	switch {
	case grams <= s.CautionThreshold:
		return StatusGood
	case grams <= s.DailyGoal:
		return StatusCaution
	default:
		return StatusOverLimit
	}
}

// UnderGoal reports whether a day total counts toward streaks.
func (s Settings) UnderGoal(total float64) bool {
	return total > 0 && total <= s.DailyGoal
}
