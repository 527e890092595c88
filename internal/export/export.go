// Package export renders the full expense collection as delimited text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/spendbook-dev/spendbook/internal/model"
)

// Header is the column header row of an export.
const Header = "Date,Description,Category,Amount,Note,Recurring"

// dateFormat is the human-readable date form used in exports.
const dateFormat = "Jan 2, 2006"

const (
	numFields    = 6
	colDate      = 0
	colDesc      = 1
	colCategory  = 2
	colAmount    = 3
	colNote      = 4
	colRecurring = 5
)

// WriteCSV writes expenses to w, header first. Fields containing the
// delimiter or quotes are quoted with internal quotes doubled, per the
// usual delimited-text rules.
func WriteCSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, exp := range expenses {
		if err := cw.Write(MarshalExpense(exp)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalExpense converts an expense to an export row.
func MarshalExpense(exp model.Expense) []string {
	row := make([]string, numFields)
	row[colDate] = exp.Date.Format(dateFormat)
	row[colDesc] = exp.Description
	row[colCategory] = exp.Category
	row[colAmount] = exp.Amount.StringFixed(2)
	row[colNote] = exp.Note
	row[colRecurring] = exp.Recurring.Label()
	return row
}
