package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sadopc/sugr/internal/analytics"
	"github.com/sadopc/sugr/internal/model"
)

const csvDateLayout = "02/01/2006"

// ToCSV writes one row per tracked day to path.
func ToCSV(entries []model.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, entries); err != nil {
		return err
	}
	return f.Close()
}

// WriteCSV writes the "Date,Total Refined Sugar (g)" table: dd/MM/yyyy dates
// in day order and totals with one decimal.
func WriteCSV(out io.Writer, entries []model.Entry) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"Date", "Total Refined Sugar (g)"}); err != nil {
		return err
	}

	for _, d := range analytics.DayTotals(entries, time.UTC) {
		if d.Date.IsZero() {
			continue
		}
		row := []string{
			d.Date.Format(csvDateLayout),
			formatGrams(d.Total),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// FileName is the default export file name for the given format.
func FileName(format string, now time.Time) string {
	return fmt.Sprintf("sugr-export-%s.%s", now.Format("02-01-2006"), format)
}

func formatGrams(g float64) string {
	return decimal.NewFromFloat(g).StringFixed(1)
}
