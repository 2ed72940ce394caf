package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMonthsAndDays tests the calendar month/day decomposition used for period proration
func TestMonthsAndDays(t *testing.T) {
	tests := []struct {
		name           string
		from           time.Time
		to             time.Time
		expectedMonths int
		expectedDays   int
		description    string
	}{
		{
			name:           "Mid month to month end",
			from:           Date(2025, 3, 15),
			to:             Date(2025, 4, 30),
			expectedMonths: 1,
			expectedDays:   15,
			description:    "Mar 15 to Apr 30",
		},
		{
			name:           "Same day",
			from:           Date(2025, 4, 30),
			to:             Date(2025, 4, 30),
			expectedMonths: 0,
			expectedDays:   0,
			description:    "Hire date equal to the end date",
		},
		{
			name:           "Reversed span",
			from:           Date(2025, 5, 10),
			to:             Date(2025, 4, 30),
			expectedMonths: 0,
			expectedDays:   0,
			description:    "Negative spans clamp to zero",
		},
		{
			name:           "Full month of 31 days",
			from:           Date(2025, 3, 1),
			to:             Date(2025, 3, 31),
			expectedMonths: 0,
			expectedDays:   30,
			description:    "Mar 1 to Mar 31 is 30 days, not a month",
		},
		{
			name:           "Period start to period end",
			from:           Date(2024, 11, 1),
			to:             Date(2025, 4, 30),
			expectedMonths: 5,
			expectedDays:   29,
			description:    "Nov 1 to Apr 30 crosses the year",
		},
		{
			name:           "Month end clamping",
			from:           Date(2025, 1, 31),
			to:             Date(2025, 2, 28),
			expectedMonths: 1,
			expectedDays:   0,
			description:    "Jan 31 plus one month lands on Feb 28",
		},
		{
			name:           "Month end clamping with remainder",
			from:           Date(2025, 1, 31),
			to:             Date(2025, 3, 30),
			expectedMonths: 1,
			expectedDays:   30,
			description:    "Mar 31 would overshoot, so one month and 30 days",
		},
		{
			name:           "Leap February",
			from:           Date(2024, 2, 10),
			to:             Date(2024, 6, 30),
			expectedMonths: 4,
			expectedDays:   20,
			description:    "Feb 10 to Jun 30 in a leap year",
		},
		{
			name:           "Clock time is ignored",
			from:           time.Date(2025, 3, 15, 18, 30, 0, 0, time.FixedZone("PET", -5*3600)),
			to:             Date(2025, 4, 30),
			expectedMonths: 1,
			expectedDays:   15,
			description:    "Only the calendar date matters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			months, days := MonthsAndDays(tt.from, tt.to)
			assert.Equal(t, tt.expectedMonths, months, "%s: months", tt.description)
			assert.Equal(t, tt.expectedDays, days, "%s: days", tt.description)
		})
	}
}

func TestAddMonthsClamped(t *testing.T) {
	assert.Equal(t, Date(2025, 2, 28), AddMonthsClamped(Date(2025, 1, 31), 1))
	assert.Equal(t, Date(2024, 2, 29), AddMonthsClamped(Date(2024, 1, 31), 1))
	assert.Equal(t, Date(2026, 1, 15), AddMonthsClamped(Date(2025, 11, 15), 2))
	assert.Equal(t, Date(2024, 11, 30), AddMonthsClamped(Date(2025, 1, 30), -2))
	assert.Equal(t, Date(2025, 4, 30), AddMonthsClamped(Date(2025, 4, 30), 0))
}

func TestDaysBetweenAndDaysInMonth(t *testing.T) {
	assert.Equal(t, 15, DaysBetween(Date(2025, 4, 15), Date(2025, 4, 30)))
	assert.Equal(t, -15, DaysBetween(Date(2025, 4, 30), Date(2025, 4, 15)))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(1900))
	assert.False(t, IsLeapYear(2025))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-11-01")
	require.NoError(t, err)
	assert.Equal(t, Date(2024, 11, 1), d)

	_, err = ParseDate("01/11/2024")
	assert.Error(t, err)
}
