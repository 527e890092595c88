package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendbook-dev/spendbook/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sample() []model.Expense {
	return []model.Expense{
		{
			ID:          "b",
			Description: "Dinner out",
			Amount:      dec("20.00"),
			Category:    "Food",
			Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Note:        "birthday",
			Recurring:   model.RecurrenceNone,
			CreatedAt:   time.Date(2024, 2, 1, 19, 30, 0, 0, time.UTC),
		},
		{
			ID:          "a",
			Description: "Groceries",
			Amount:      dec("10.00"),
			Category:    "Food",
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Recurring:   model.RecurrenceWeekly,
			CreatedAt:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "data", "expenses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRoundTrip(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(sample()))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)

	want := sample()
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID, "position column preserves order")
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, want[i].Category, got[i].Category)
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.Equal(t, want[i].Note, got[i].Note)
		assert.Equal(t, want[i].Recurring, got[i].Recurring)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestLoad_EmptyDatabase(t *testing.T) {
	s := newStore(t)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_Overwrites(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(sample()))
	require.NoError(t, s.Save(sample()[:1]))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1, "save replaces prior state entirely")
	assert.Equal(t, "b", got[0].ID)
}

func TestNew_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.db")

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(sample()))
	require.NoError(t, s.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load()
	require.NoError(t, err)
	assert.Len(t, got, 2, "data survives reopening")
}
