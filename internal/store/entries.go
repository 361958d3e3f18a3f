package store

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sadopc/sugr/internal/model"
)

const entryColumns = `id, grams, item_number, timestamp, day_key, label`

// Fixed-width UTC timestamps sort lexically in time order.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// AddEntry records grams at the given instant. The day key is taken from at in
// loc and the item number continues the day's sequence.
func (s *Store) AddEntry(grams float64, label string, at time.Time, loc *time.Location) (*model.Entry, error) {
	if err := checkGrams(grams); err != nil {
		return nil, err
	}

	dayKey := model.DayKey(at, loc)
	n, err := s.nextItemNumber(dayKey)
	if err != nil {
		return nil, err
	}

	e := model.NewEntry(uuid.NewString(), grams, n, at.UTC(), loc)
	e.Label = strings.TrimSpace(label)

	_, err = s.db.Exec(
		`INSERT INTO entries (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Grams, e.ItemNumber, e.Timestamp.Format(timestampLayout), e.DayKey, e.Label,
	)
	if err != nil {
		return nil, fmt.Errorf("add entry: %w", err)
	}
	return &e, nil
}

func (s *Store) GetEntry(id string) (*model.Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get entry %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, err)
	}
	return &e, nil
}

// FindEntry resolves a full id or an unambiguous id prefix, as printed by the
// list command.
func (s *Store) FindEntry(ref string) (*model.Entry, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("find entry: %w", ErrNotFound)
	}
	rows, err := s.db.Query(`SELECT `+entryColumns+` FROM entries WHERE id LIKE ? LIMIT 2`, ref+"%")
	if err != nil {
		return nil, fmt.Errorf("find entry %s: %w", ref, err)
	}
	defer rows.Close()

	var found []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		found = append(found, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("find entry %s: %w", ref, ErrNotFound)
	case 1:
		return &found[0], nil
	default:
		return nil, fmt.Errorf("find entry %s: prefix is ambiguous", ref)
	}
}

// ListEntries returns entries ordered by timestamp, oldest first.
func (s *Store) ListEntries(f EntryFilter) ([]model.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE 1=1`
	var args []any

	if f.DayKey != "" {
		query += ` AND day_key = ?`
		args = append(args, f.DayKey)
	}
	if f.FromKey != "" {
		query += ` AND day_key >= ?`
		args = append(args, f.FromKey)
	}
	if f.ToKey != "" {
		query += ` AND day_key <= ?`
		args = append(args, f.ToKey)
	}
	query += ` ORDER BY timestamp, item_number`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AllEntries is the full entry log handed to the analytics package.
func (s *Store) AllEntries() ([]model.Entry, error) {
	return s.ListEntries(EntryFilter{})
}

func (s *Store) UpdateGrams(id string, grams float64) error {
	if err := checkGrams(grams); err != nil {
		return err
	}
	return s.exec(`UPDATE entries SET grams = ? WHERE id = ?`, "update grams", id, grams, id)
}

// UpdateLabel renames an entry. A blank label restores the "Item N" name.
func (s *Store) UpdateLabel(id, label string) error {
	return s.exec(`UPDATE entries SET label = ? WHERE id = ?`, "update label", id, strings.TrimSpace(label), id)
}

// MoveEntry changes an entry's timestamp and recomputes its day key. When the
// entry lands on another day it takes the next item number there.
func (s *Store) MoveEntry(id string, at time.Time, loc *time.Location) (*model.Entry, error) {
	e, err := s.GetEntry(id)
	if err != nil {
		return nil, err
	}

	oldKey := e.DayKey
	e.Reschedule(at.UTC(), loc)
	if e.DayKey != oldKey {
		n, err := s.nextItemNumber(e.DayKey)
		if err != nil {
			return nil, err
		}
		e.ItemNumber = n
	}

	err = s.exec(`UPDATE entries SET timestamp = ?, day_key = ?, item_number = ? WHERE id = ?`, "move entry", id,
		e.Timestamp.Format(timestampLayout), e.DayKey, e.ItemNumber, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Store) DeleteEntry(id string) error {
	return s.exec(`DELETE FROM entries WHERE id = ?`, "delete entry", id, id)
}

func (s *Store) exec(query, op, id string, args ...any) error {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", op, id, ErrNotFound)
	}
	return nil
}

func (s *Store) nextItemNumber(dayKey string) (int, error) {
	var highest sql.NullInt64
	err := s.db.QueryRow(`SELECT MAX(item_number) FROM entries WHERE day_key = ?`, dayKey).Scan(&highest)
	if err != nil {
		return 0, fmt.Errorf("next item number: %w", err)
	}
	return int(highest.Int64) + 1, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(sc scanner) (model.Entry, error) {
	var e model.Entry
	var ts string
	if err := sc.Scan(&e.ID, &e.Grams, &e.ItemNumber, &ts, &e.DayKey, &e.Label); err != nil {
		return e, err
	}
	e.Timestamp, _ = time.Parse(timestampLayout, ts)
	return e, nil
}

func checkGrams(grams float64) error {
	if grams <= 0 || math.IsNaN(grams) || math.IsInf(grams, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidGrams, grams)
	}
	return nil
}
