package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/spendbook-dev/spendbook/internal/model"
	"github.com/spendbook-dev/spendbook/internal/store"
)

// flagDateFormat is the date form accepted on the command line.
const flagDateFormat = "2006-01-02"

// expenseFlags are the field flags shared by add and edit. The CLI is the
// validation collaborator: field errors are caught here, before the store.
type expenseFlags struct {
	description string
	amount      string
	category    string
	date        string
	note        string
	recurring   string
}

func (f *expenseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "what the money went to (min 3 characters)")
	cmd.Flags().StringVarP(&f.amount, "amount", "a", "", "amount, e.g. 4.50")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "category label")
	cmd.Flags().StringVar(&f.date, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&f.note, "note", "", "optional note")
	cmd.Flags().StringVar(&f.recurring, "recurring", "none", "recurrence tag: none, daily, weekly, monthly, yearly")
}

// params validates the flag values and converts them to store parameters.
func (f *expenseFlags) params() (store.Params, error) {
	if len(f.description) < 3 {
		return store.Params{}, fmt.Errorf("description must be at least 3 characters")
	}

	amount, err := decimal.NewFromString(f.amount)
	if err != nil {
		return store.Params{}, fmt.Errorf("parsing amount %q: %w", f.amount, err)
	}
	if !amount.IsPositive() {
		return store.Params{}, fmt.Errorf("amount must be greater than zero")
	}
	if amount.GreaterThan(model.MaxAmount) {
		return store.Params{}, fmt.Errorf("amount cannot exceed %s", model.MaxAmount.StringFixed(2))
	}

	if f.category == "" {
		return store.Params{}, fmt.Errorf("category is required")
	}

	date := time.Now()
	if f.date != "" {
		date, err = time.Parse(flagDateFormat, f.date)
		if err != nil {
			return store.Params{}, fmt.Errorf("parsing date %q: %w", f.date, err)
		}
	}

	recurring, err := parseRecurrenceFlag(f.recurring)
	if err != nil {
		return store.Params{}, err
	}

	return store.Params{
		Description: f.description,
		Amount:      amount,
		Category:    f.category,
		Date:        date,
		Note:        f.note,
		Recurring:   recurring,
	}, nil
}

func parseRecurrenceFlag(s string) (model.Recurrence, error) {
	switch r := model.Recurrence(s); r {
	case "", model.RecurrenceNone:
		return model.RecurrenceNone, nil
	case model.RecurrenceDaily, model.RecurrenceWeekly, model.RecurrenceMonthly, model.RecurrenceYearly:
		return r, nil
	default:
		return "", fmt.Errorf("unknown recurrence %q", s)
	}
}

// money formats an amount for display.
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
