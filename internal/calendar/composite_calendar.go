package calendar

import (
	"go.uber.org/zap"
)

// CompositeCalendar merges several holiday sources into one table.
// Earlier sources win when two sources name the same date. A failing
// source is skipped with a warning so one bad calendar file does not
// take the whole classification down.
type CompositeCalendar struct {
	sources []HolidaySource
	logger  *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(logger *zap.Logger, sources ...HolidaySource) *CompositeCalendar {
	return &CompositeCalendar{
		sources: sources,
		logger:  logger,
	}
}

// Holidays returns the merged holiday table for the given year.
func (cc *CompositeCalendar) Holidays(year int) (map[string]string, error) {
	merged := make(map[string]string)

	for _, source := range cc.sources {
		holidays, err := source.Holidays(year)
		if err != nil {
			cc.logger.Warn("Holiday source failed, skipping",
				zap.Int("year", year),
				zap.Error(err))
			continue
		}

		for date, name := range holidays {
			if _, exists := merged[date]; !exists {
				merged[date] = name
			}
		}
	}

	return merged, nil
}
