package calendar

import (
	"time"

	"github.com/username/planning-board/pkg/dateutil"
)

// HolidaySource provides the public holidays for a year, keyed by
// ISO date (YYYY-MM-DD), value is the holiday name. Implementations
// derive the table per year; there is no hardcoded year.
type HolidaySource interface {
	Holidays(year int) (map[string]string, error)
}

// DayClass describes the non-working character of one calendar day.
// Weekend and holiday are independent: both can be set at once, and
// one never masks the other.
type DayClass struct {
	IsWeekend   bool
	HolidayName string
}

// IsHoliday reports whether the day carries a named holiday.
func (dc DayClass) IsHoliday() bool {
	return dc.HolidayName != ""
}

// Classifier classifies calendar days against a holiday source.
type Classifier struct {
	source HolidaySource
}

// NewClassifier creates a new Classifier
func NewClassifier(source HolidaySource) *Classifier {
	return &Classifier{source: source}
}

// Classify returns the day class for the given date.
func (c *Classifier) Classify(date time.Time) (DayClass, error) {
	class := DayClass{
		IsWeekend: dateutil.IsWeekend(date),
	}

	holidays, err := c.source.Holidays(date.Year())
	if err != nil {
		return DayClass{}, err
	}

	class.HolidayName = holidays[dateutil.FormatISO(date)]
	return class, nil
}
