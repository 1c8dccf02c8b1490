package planning

import (
	"fmt"
	"time"

	"github.com/username/planning-board/pkg/dateutil"
)

// MonthAxis returns every date of the given month, day 1 through the
// last day inclusive, as consecutive midnight-UTC dates. Out-of-range
// arguments are rejected, never clamped.
func MonthAxis(year int, month time.Month) ([]time.Time, error) {
	if year <= 0 {
		return nil, fmt.Errorf("invalid year: %d", year)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month: %d (must be 1-12)", int(month))
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return WindowAxis(start, dateutil.DaysInMonth(year, month))
}

// WindowAxis returns dayCount consecutive dates starting at start,
// normalized to midnight UTC.
func WindowAxis(start time.Time, dayCount int) ([]time.Time, error) {
	if start.IsZero() {
		return nil, fmt.Errorf("invalid start date: zero value")
	}
	if dayCount < 1 {
		return nil, fmt.Errorf("invalid day count: %d (must be at least 1)", dayCount)
	}

	first := dateutil.MidnightUTC(start)
	axis := make([]time.Time, dayCount)
	for i := range axis {
		axis[i] = first.AddDate(0, 0, i)
	}
	return axis, nil
}
