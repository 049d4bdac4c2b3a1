package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name     string
		moment   time.Time
		expected string
	}{
		{
			name:     "date 2024-12-12",
			moment:   time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC),
			expected: "2024-12-12",
		},
		{
			name:     "just before midnight",
			moment:   time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC),
			expected: "2024-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateKey(tt.moment))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected int
	}{
		{
			name:     "same day",
			from:     "2024-06-15",
			to:       "2024-06-15",
			expected: 0,
		},
		{
			name:     "consecutive days",
			from:     "2024-06-15",
			to:       "2024-06-16",
			expected: 1,
		},
		{
			name:     "across month boundary",
			from:     "2024-06-30",
			to:       "2024-07-02",
			expected: 2,
		},
		{
			name:     "across year boundary",
			from:     "2023-12-31",
			to:       "2024-01-01",
			expected: 1,
		},
		{
			name:     "long gap",
			from:     "2024-01-01",
			to:       "2024-01-31",
			expected: 30,
		},
		{
			name:     "malformed from date",
			from:     "not-a-date",
			to:       "2024-06-15",
			expected: WeeklyDays,
		},
		{
			name:     "malformed to date",
			from:     "2024-06-15",
			to:       "",
			expected: WeeklyDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestShiftWeekly(t *testing.T) {
	tests := []struct {
		name     string
		week     [WeeklyDays]bool
		diffDays int
		expected [WeeklyDays]bool
	}{
		{
			name:     "zero days leaves window unchanged",
			week:     [WeeklyDays]bool{true, false, true, false, false, false, false},
			diffDays: 0,
			expected: [WeeklyDays]bool{true, false, true, false, false, false, false},
		},
		{
			name:     "shift by two days",
			week:     [WeeklyDays]bool{true, true, false, false, false, false, false},
			diffDays: 2,
			expected: [WeeklyDays]bool{false, false, true, true, false, false, false},
		},
		{
			name:     "entries shifted past the end are dropped",
			week:     [WeeklyDays]bool{false, false, false, false, false, true, true},
			diffDays: 2,
			expected: [WeeklyDays]bool{false, false, false, false, false, false, false},
		},
		{
			name:     "shift by six keeps only the newest slot",
			week:     [WeeklyDays]bool{true, true, true, true, true, true, true},
			diffDays: 6,
			expected: [WeeklyDays]bool{false, false, false, false, false, false, true},
		},
		{
			name:     "seven days clears the window",
			week:     [WeeklyDays]bool{true, true, true, true, true, true, true},
			diffDays: 7,
			expected: [WeeklyDays]bool{},
		},
		{
			name:     "large gap clears the window",
			week:     [WeeklyDays]bool{true, false, true, false, true, false, true},
			diffDays: 30,
			expected: [WeeklyDays]bool{},
		},
		{
			name:     "negative diff leaves window unchanged",
			week:     [WeeklyDays]bool{true, false, false, false, false, false, false},
			diffDays: -1,
			expected: [WeeklyDays]bool{true, false, false, false, false, false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShiftWeekly(tt.week, tt.diffDays))
		})
	}
}
