package dateutil

import (
	"time"
)

// DateLayout is the calendar-date format accepted on every input surface.
const DateLayout = "2006-01-02"

// DateOnly strips the clock and zone from t, keeping its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonthsClamped adds months to a date, clamping the day to the last day of the
// target month (Jan 31 + 1 month = Feb 28/29) instead of overflowing the way
// time.AddDate does.
func AddMonthsClamped(date time.Time, months int) time.Time {
	d := DateOnly(date)
	total := int(d.Month()) - 1 + months
	year := d.Year() + total/12
	m := total % 12
	if m < 0 {
		m += 12
		year--
	}
	month := time.Month(m + 1)
	day := d.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return Date(year, month, day)
}

// DaysBetween returns the number of calendar days from one date to another.
// The result is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// MonthsAndDays decomposes the span from one date to another into whole calendar
// months plus the remaining days, e.g. Mar 15 to Apr 30 is 1 month and 15 days.
// Spans where to does not follow from yield (0, 0).
func MonthsAndDays(from, to time.Time) (months, days int) {
	from, to = DateOnly(from), DateOnly(to)
	if !to.After(from) {
		return 0, 0
	}
	months = (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if AddMonthsClamped(from, months).After(to) {
		months--
	}
	days = DaysBetween(AddMonthsClamped(from, months), to)
	return months, days
}
