// Package store owns the in-memory expense collection and mediates all
// mutation. Persistence is delegated to a Persister; a save failure is
// surfaced as a warning and never rolls back the in-memory state, which is
// the source of truth for the running session.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendbook-dev/spendbook/internal/id"
	"github.com/spendbook-dev/spendbook/internal/model"
)

// Persister loads and saves the full expense collection.
type Persister interface {
	// Load returns the previously saved collection. Missing state is an
	// empty collection, not an error.
	Load() ([]model.Expense, error)
	// Save persists the full collection, replacing any prior saved state.
	Save(expenses []model.Expense) error
}

// Notifier receives user-visible warnings (persistence trouble, corrupt
// saved data). The store keeps operating after warning.
type Notifier interface {
	Warnf(format string, args ...any)
}

type noopNotifier struct{}

func (noopNotifier) Warnf(string, ...any) {}

// DefaultSubmitDelay matches the original submission latency of the tracker:
// a create or update completes half a second after it is initiated.
const DefaultSubmitDelay = 500 * time.Millisecond

// Params holds the caller-validated field values for a create or update.
type Params struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Note        string
	Recurring   model.Recurrence
}

// Store maintains the ordered expense collection. New expenses go to the
// front; updates keep their position; deletes preserve the order of the
// rest.
type Store struct {
	mu        sync.Mutex
	expenses  []model.Expense
	persister Persister
	notifier  Notifier

	submitDelay time.Duration
	now         func() time.Time
	newID       func() string
}

// Option configures a Store.
type Option func(*Store)

// WithNotifier routes warnings to n instead of discarding them.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithSubmitDelay overrides the deferred-submission delay.
func WithSubmitDelay(d time.Duration) Option {
	return func(s *Store) { s.submitDelay = d }
}

// WithClock overrides the CreatedAt clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store and loads the saved collection from p. Corrupt or
// unreadable saved state is warned about and treated as empty.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister:   p,
		notifier:    noopNotifier{},
		submitDelay: DefaultSubmitDelay,
		now:         time.Now,
		newID:       id.New,
	}
	for _, opt := range opts {
		opt(s)
	}

	expenses, err := p.Load()
	if err != nil {
		s.notifier.Warnf("failed to load saved expenses, starting empty: %v", err)
		expenses = nil
	}
	s.expenses = expenses
	return s
}

// Create inserts a new expense at the front of the collection and persists.
// The assigned ID and CreatedAt are returned on the record.
func (s *Store) Create(params Params) (model.Expense, error) {
	if err := checkParams(params); err != nil {
		return model.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exp := model.Expense{
		ID:          s.newID(),
		Description: params.Description,
		Amount:      params.Amount,
		Category:    params.Category,
		Date:        model.Day(params.Date),
		Note:        params.Note,
		Recurring:   normalizeRecurrence(params.Recurring),
		CreatedAt:   s.now(),
	}

	s.expenses = append([]model.Expense{exp}, s.expenses...)
	s.save()
	return exp, nil
}

// Update replaces every field except ID and CreatedAt on the expense with
// the given id, in place at its current position, and persists. Returns
// ErrNotFound if no expense matches.
func (s *Store) Update(expenseID string, params Params) (model.Expense, error) {
	if err := checkParams(params); err != nil {
		return model.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(expenseID)
	if i < 0 {
		return model.Expense{}, ErrNotFound
	}

	exp := model.Expense{
		ID:          s.expenses[i].ID,
		Description: params.Description,
		Amount:      params.Amount,
		Category:    params.Category,
		Date:        model.Day(params.Date),
		Note:        params.Note,
		Recurring:   normalizeRecurrence(params.Recurring),
		CreatedAt:   s.expenses[i].CreatedAt,
	}

	s.expenses[i] = exp
	s.save()
	return exp, nil
}

// Delete removes the expense with the given id, preserving the relative
// order of the rest. Returns ErrNotFound if no expense matches.
func (s *Store) Delete(expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(expenseID)
	if i < 0 {
		return ErrNotFound
	}

	s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
	s.save()
	return nil
}

// Get returns the expense with the given id.
func (s *Store) Get(expenseID string) (model.Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(expenseID)
	if i < 0 {
		return model.Expense{}, false
	}
	return s.expenses[i], true
}

// List returns a copy of the collection in its current order, newest-first
// by insertion. Mutating the returned slice does not affect the store.
func (s *Store) List() []model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Len returns the number of stored expenses.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expenses)
}

// indexOf returns the position of expenseID, or -1. Caller holds s.mu.
func (s *Store) indexOf(expenseID string) int {
	for i, exp := range s.expenses {
		if exp.ID == expenseID {
			return i
		}
	}
	return -1
}

// save persists the current collection. A failure is warned about, not
// returned: the in-memory mutation already happened and stands.
// Caller holds s.mu.
func (s *Store) save() {
	snapshot := make([]model.Expense, len(s.expenses))
	copy(snapshot, s.expenses)
	if err := s.persister.Save(snapshot); err != nil {
		s.notifier.Warnf("failed to save expenses, data may be lost on exit: %v", err)
	}
}

func normalizeRecurrence(r model.Recurrence) model.Recurrence {
	if r == "" {
		return model.RecurrenceNone
	}
	return r
}

func checkParams(params Params) error {
	if strings.TrimSpace(params.Description) == "" {
		return InvariantError{Field: "description", Reason: "must not be empty"}
	}
	if !params.Amount.IsPositive() {
		return InvariantError{Field: "amount", Reason: "must be greater than zero"}
	}
	if params.Amount.GreaterThan(model.MaxAmount) {
		return InvariantError{Field: "amount", Reason: fmt.Sprintf("must not exceed %s", model.MaxAmount.StringFixed(2))}
	}
	return nil
}
