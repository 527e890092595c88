// Package sqlite persists the expense collection in a SQLite database using
// the pure Go driver. It honors the same load-all/save-all contract as the
// JSON backend; the position column preserves collection order.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure Go SQLite driver (no CGO)

	"github.com/spendbook-dev/spendbook/internal/model"
	"github.com/spendbook-dev/spendbook/internal/store"
)

var _ store.Persister = (*Store)(nil)

const (
	dateFormat    = "2006-01-02"
	createdFormat = time.RFC3339Nano
)

const schema = `
CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    description TEXT NOT NULL,
    amount TEXT NOT NULL,
    category TEXT NOT NULL,
    date TEXT NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    recurring TEXT NOT NULL DEFAULT 'none',
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_position ON expenses(position);
`

// Store reads and writes one SQLite database.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and ensures the schema
// exists.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the saved collection in stored order.
func (s *Store) Load() ([]model.Expense, error) {
	rows, err := s.db.Query(
		"SELECT id, description, amount, category, date, note, recurring, created_at FROM expenses ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		var (
			exp                              model.Expense
			amount, date, recurring, created string
		)
		if err := rows.Scan(&exp.ID, &exp.Description, &amount, &exp.Category, &date, &exp.Note, &recurring, &created); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		exp.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q: %w", amount, err)
		}
		exp.Date, err = time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", date, err)
		}
		exp.CreatedAt, err = time.Parse(createdFormat, created)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", created, err)
		}
		exp.Recurring = model.Recurrence(recurring)

		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}
	return expenses, nil
}

// Save replaces the stored collection with expenses, in order.
func (s *Store) Save(expenses []model.Expense) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM expenses"); err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}

	for i, exp := range expenses {
		_, err := tx.Exec(
			"INSERT INTO expenses (id, position, description, amount, category, date, note, recurring, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			exp.ID, i, exp.Description, exp.Amount.StringFixed(2), exp.Category,
			exp.Date.Format(dateFormat), exp.Note, string(exp.Recurring),
			exp.CreatedAt.Format(createdFormat),
		)
		if err != nil {
			return fmt.Errorf("inserting expense %s: %w", exp.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
