package store

import (
	"fmt"
	"strconv"

	"github.com/sadopc/sugr/internal/model"
)

const (
	keyDailyGoal        = "daily_goal"
	keyCautionThreshold = "caution_threshold"
	keyGoalPreset       = "goal_preset"
)

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// LoadSettings reads the thresholds. Missing or unusable values fall back to
// the defaults instead of failing.
func (s *Store) LoadSettings() (model.Settings, error) {
	all, err := s.GetAllSettings()
	if err != nil {
		return model.DefaultSettings(), err
	}

	var st model.Settings
	for _, kv := range all {
		switch kv.Key {
		case keyDailyGoal:
			st.DailyGoal, _ = strconv.ParseFloat(kv.Value, 64)
		case keyCautionThreshold:
			st.CautionThreshold, _ = strconv.ParseFloat(kv.Value, 64)
		case keyGoalPreset:
			if p, err := model.ParsePreset(kv.Value); err == nil {
				st.Preset = p
			}
		}
	}
	return st.Normalize(), nil
}

// SaveSettings validates and stores the thresholds in one transaction.
func (s *Store) SaveSettings(st model.Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if st.Preset == "" {
		st.Preset = model.PresetCustom
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin settings tx: %w", err)
	}
	defer tx.Rollback()

	values := map[string]string{
		keyDailyGoal:        strconv.FormatFloat(st.DailyGoal, 'f', -1, 64),
		keyCautionThreshold: strconv.FormatFloat(st.CautionThreshold, 'f', -1, 64),
		keyGoalPreset:       string(st.Preset),
	}
	for k, v := range values {
		_, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			k, v,
		)
		if err != nil {
			return fmt.Errorf("save setting %q: %w", k, err)
		}
	}
	return tx.Commit()
}

// ApplyPreset switches the stored settings to p and returns the result.
func (s *Store) ApplyPreset(p model.GoalPreset) (model.Settings, error) {
	cur, err := s.LoadSettings()
	if err != nil {
		return cur, err
	}
	next := cur.ApplyPreset(p)
	if err := s.SaveSettings(next); err != nil {
		return cur, err
	}
	return next, nil
}
