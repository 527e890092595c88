package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecurrenceLabel(t *testing.T) {
	tests := []struct {
		r    Recurrence
		want string
	}{
		{RecurrenceNone, ""},
		{Recurrence(""), ""},
		{RecurrenceDaily, "Daily"},
		{RecurrenceWeekly, "Weekly"},
		{RecurrenceMonthly, "Monthly"},
		{RecurrenceYearly, "Yearly"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.r.Label(), "recurrence: %q", tt.r)
	}
}

func TestDay(t *testing.T) {
	in := time.Date(2024, 3, 1, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Day(in))
}

func TestMaxAmount(t *testing.T) {
	assert.Equal(t, "999999.99", MaxAmount.StringFixed(2))
}
