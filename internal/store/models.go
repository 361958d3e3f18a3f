package store

import "errors"

var (
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidGrams rejects zero, negative or non-finite quantities.
	ErrInvalidGrams = errors.New("grams must be a positive number")
)

type Setting struct {
	Key   string
	Value string
}

// EntryFilter is used to filter entries in queries. Day keys are inclusive.
type EntryFilter struct {
	DayKey  string
	FromKey string
	ToKey   string
	Limit   int
}
