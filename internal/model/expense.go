package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Recurrence tags an expense with how often it repeats. The tag is stored
// and displayed but never expanded into generated entries.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

// Label returns the display form: empty for "none", else capitalized
// ("weekly" -> "Weekly").
func (r Recurrence) Label() string {
	if r == "" || r == RecurrenceNone {
		return ""
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// MaxAmount is the upper bound for a single expense amount.
var MaxAmount = decimal.RequireFromString("999999.99")

// Day truncates t to its calendar date in UTC. Expense dates carry no time
// component so that range filtering and display stay unambiguous.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Expense is one stored expense entry.
type Expense struct {
	ID          string          // assigned at creation, immutable, never reused
	Description string          //nolint:revive // plain field name is clearest
	Amount      decimal.Decimal // positive, at most MaxAmount
	Category    string          // opaque label, used only for grouping
	Date        time.Time       // calendar date, no time component
	Note        string
	Recurring   Recurrence
	CreatedAt   time.Time // set once at creation, preserved across updates
}
