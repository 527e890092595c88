// Package view derives display-ready data from an expense collection: the
// filtered subset, summary statistics, and per-category totals. Every
// function is a pure function of its inputs and holds no state.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendbook-dev/spendbook/internal/model"
)

// Uncategorized is the bucket for expenses with no category label.
const Uncategorized = "Uncategorized"

// Filter is the combination of predicates applied to the collection. Zero
// values impose no restriction; present predicates combine with AND.
type Filter struct {
	Search   string    // case-insensitive substring match on description
	Category string    // exact match
	From     time.Time // inclusive lower bound on date
	To       time.Time // inclusive upper bound on date
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Category == "" && f.From.IsZero() && f.To.IsZero()
}

// Matches reports whether exp satisfies every present predicate.
func (f Filter) Matches(exp model.Expense) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(exp.Description), strings.ToLower(f.Search)) {
		return false
	}
	if f.Category != "" && exp.Category != f.Category {
		return false
	}
	if !f.From.IsZero() && exp.Date.Before(model.Day(f.From)) {
		return false
	}
	if !f.To.IsZero() && exp.Date.After(model.Day(f.To)) {
		return false
	}
	return true
}

// ApplyFilter returns the expenses matching f, in their input order.
// Filtering never resorts.
func ApplyFilter(expenses []model.Expense, f Filter) []model.Expense {
	kept := make([]model.Expense, 0, len(expenses))
	for _, exp := range expenses {
		if f.Matches(exp) {
			kept = append(kept, exp)
		}
	}
	return kept
}

// Summary holds the headline statistics for a set of expenses.
type Summary struct {
	Total      decimal.Decimal
	Count      int
	Categories int // number of distinct category labels present
}

// Summarize computes the Summary for expenses.
func Summarize(expenses []model.Expense) Summary {
	total := decimal.Zero
	seen := make(map[string]bool)
	for _, exp := range expenses {
		total = total.Add(exp.Amount)
		seen[categoryOf(exp)] = true
	}
	return Summary{Total: total, Count: len(expenses), Categories: len(seen)}
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// CategoryTotals groups expenses by category and sums amounts per group.
// Entries appear in first-encountered order, so callers can reconstruct a
// deterministic display ordering. Only categories present in the input
// appear; an empty input yields an empty slice.
func CategoryTotals(expenses []model.Expense) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, exp := range expenses {
		cat := categoryOf(exp)
		i, ok := index[cat]
		if !ok {
			i = len(totals)
			index[cat] = i
			totals = append(totals, CategoryTotal{Category: cat, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(exp.Amount)
	}
	return totals
}

// SortByTotal returns a copy of totals ordered by amount descending. The
// sort is stable: ties keep their first-encountered order.
func SortByTotal(totals []CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, len(totals))
	copy(out, totals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

func categoryOf(exp model.Expense) string {
	if exp.Category == "" {
		return Uncategorized
	}
	return exp.Category
}
