package dateutil

import (
	"fmt"
	"time"
)

// ISODate is the canonical date layout used at storage and CLI boundaries.
const ISODate = "2006-01-02"

// MidnightUTC normalizes a date to midnight UTC, the engine's canonical
// representation for calendar days.
func MidnightUTC(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) in the date's location
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// DaysInMonth returns the number of days in the given month, leap years included
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatISO formats a date as YYYY-MM-DD
func FormatISO(date time.Time) string {
	return date.Format(ISODate)
}

// ParseDate parses a calendar date in the accepted input formats
// (ISO YYYY-MM-DD, or DD/MM/YYYY as typed in the planning forms).
// The result is normalized to midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		ISODate,
		"02/01/2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return MidnightUTC(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q (expected YYYY-MM-DD or DD/MM/YYYY)", dateStr)
}

// Today returns today's date (midnight UTC)
func Today() time.Time {
	return MidnightUTC(time.Now())
}
