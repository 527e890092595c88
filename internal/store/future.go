package store

import (
	"time"

	"github.com/spendbook-dev/spendbook/internal/model"
)

// Future is the handle for a deferred submission. The submission always
// completes; there is no cancellation path.
type Future struct {
	ch chan outcome
}

type outcome struct {
	expense model.Expense
	err     error
}

// Wait blocks until the submission completes and returns its result.
func (f *Future) Wait() (model.Expense, error) {
	o := <-f.ch
	return o.expense, o.err
}

// CreateDeferred schedules a Create that completes after the store's submit
// delay. The mutation is not visible to List until the Future resolves.
func (s *Store) CreateDeferred(params Params) *Future {
	return s.deferred(func() (model.Expense, error) {
		return s.Create(params)
	})
}

// UpdateDeferred schedules an Update that completes after the store's
// submit delay.
func (s *Store) UpdateDeferred(expenseID string, params Params) *Future {
	return s.deferred(func() (model.Expense, error) {
		return s.Update(expenseID, params)
	})
}

func (s *Store) deferred(op func() (model.Expense, error)) *Future {
	f := &Future{ch: make(chan outcome, 1)}
	time.AfterFunc(s.submitDelay, func() {
		exp, err := op()
		f.ch <- outcome{expense: exp, err: err}
	})
	return f
}
