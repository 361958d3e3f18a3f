package analytics

import (
	"fmt"
	"time"

	"github.com/sadopc/sugr/internal/model"
)

// refNow is a Wednesday afternoon.
var refNow = time.Date(2026, 3, 18, 14, 0, 0, 0, time.UTC)

func at(dayOffset, hour int) time.Time {
	d := refNow.AddDate(0, 0, dayOffset)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func entry(dayOffset, hour int, grams float64) model.Entry {
	id := fmt.Sprintf("e%d-%d-%g", dayOffset, hour, grams)
	return model.NewEntry(id, grams, 1, at(dayOffset, hour), time.UTC)
}

// oneEntryPerDay builds one entry per day for the given offsets.
func oneEntryPerDay(grams float64, offsets ...int) []model.Entry {
	var out []model.Entry
	for _, off := range offsets {
		out = append(out, entry(off, 12, grams))
	}
	return out
}

func key(dayOffset int) string {
	return model.DayKey(at(dayOffset, 12), time.UTC)
}
