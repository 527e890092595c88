// Package importer bulk-loads expenses from a CSV in the export format.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendbook-dev/spendbook/internal/model"
	"github.com/spendbook-dev/spendbook/internal/store"
)

const (
	numFields    = 6
	colDate      = 0
	colDesc      = 1
	colCategory  = 2
	colAmount    = 3
	colNote      = 4
	colRecurring = 5
)

// dateFormats are accepted in order: the export's human form, then ISO.
var dateFormats = []string{"Jan 2, 2006", "2006-01-02"}

// Parse reads an expense CSV (header row required) and returns create
// parameters in file order.
func Parse(r io.Reader) ([]store.Params, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expense CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var params []store.Params
	for i, rec := range records[1:] {
		p, err := parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		params = append(params, p)
	}
	return params, nil
}

func parseRow(rec []string) (store.Params, error) {
	date, err := parseDate(rec[colDate])
	if err != nil {
		return store.Params{}, err
	}

	amount, err := decimal.NewFromString(rec[colAmount])
	if err != nil {
		return store.Params{}, fmt.Errorf("parsing amount %q: %w", rec[colAmount], err)
	}

	return store.Params{
		Description: rec[colDesc],
		Amount:      amount,
		Category:    rec[colCategory],
		Date:        date,
		Note:        rec[colNote],
		Recurring:   parseRecurrence(rec[colRecurring]),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if date, err := time.Parse(layout, s); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", s)
}

// parseRecurrence reverses Recurrence.Label: an empty cell means "none",
// anything else is the lowercased tag.
func parseRecurrence(s string) model.Recurrence {
	if s == "" {
		return model.RecurrenceNone
	}
	return model.Recurrence(strings.ToLower(s))
}
