// Package jsonfile persists the expense collection as a single JSON
// document on disk. It is the default backend: load-all, save-all, no
// partial writes.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendbook-dev/spendbook/internal/model"
	"github.com/spendbook-dev/spendbook/internal/store"
)

var _ store.Persister = (*Store)(nil)

const dateFormat = "2006-01-02"

// Store reads and writes one JSON file.
type Store struct {
	path string
}

// New creates a Store backed by the file at path. The file need not exist
// yet.
func New(path string) *Store {
	return &Store{path: path}
}

// record is the on-disk shape of one expense.
type record struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Note        string          `json:"note,omitempty"`
	Recurring   string          `json:"recurring"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Load returns the saved collection. A missing file is an empty collection;
// unparsable contents are an error the caller downgrades to a warning.
func (s *Store) Load() ([]model.Expense, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	expenses := make([]model.Expense, 0, len(records))
	for i, rec := range records {
		exp, err := unmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d in %s: %w", i, s.path, err)
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

// Save writes the full collection, replacing any prior saved state.
func (s *Store) Save(expenses []model.Expense) error {
	records := make([]record, len(expenses))
	for i, exp := range expenses {
		records[i] = marshalRecord(exp)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

func marshalRecord(exp model.Expense) record {
	return record{
		ID:          exp.ID,
		Description: exp.Description,
		Amount:      exp.Amount,
		Category:    exp.Category,
		Date:        exp.Date.Format(dateFormat),
		Note:        exp.Note,
		Recurring:   string(exp.Recurring),
		CreatedAt:   exp.CreatedAt,
	}
}

func unmarshalRecord(rec record) (model.Expense, error) {
	date, err := time.Parse(dateFormat, rec.Date)
	if err != nil {
		return model.Expense{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	recurring := model.Recurrence(rec.Recurring)
	if recurring == "" {
		recurring = model.RecurrenceNone
	}

	return model.Expense{
		ID:          rec.ID,
		Description: rec.Description,
		Amount:      rec.Amount,
		Category:    rec.Category,
		Date:        date,
		Note:        rec.Note,
		Recurring:   recurring,
		CreatedAt:   rec.CreatedAt,
	}, nil
}
