package planning

import (
	"sort"
	"time"

	"github.com/username/planning-board/internal/calendar"
	"github.com/username/planning-board/pkg/dateutil"
	"go.uber.org/zap"
)

// CellDescriptor is the engine's output for one (application, date)
// cell. Day-type flags and event matches are independent facts: a
// weekend stays flagged even when events cover it, and the renderer
// decides visual precedence.
type CellDescriptor struct {
	Application string
	Date        time.Time
	IsWeekend   bool
	HolidayName string
	IsToday     bool
	Matches     []ScheduledItem
}

// Row is one application's line of cells, aligned with the axis.
type Row struct {
	Application string
	Cells       []CellDescriptor
}

// Resolver combines the day classifier, the interval matcher and the
// project scope filter into per-cell descriptors. It holds no snapshot
// state; every call receives the item collection as an argument.
type Resolver struct {
	classifier *calendar.Classifier
	logger     *zap.Logger
}

// NewResolver creates a new Resolver
func NewResolver(classifier *calendar.Classifier, logger *zap.Logger) *Resolver {
	return &Resolver{
		classifier: classifier,
		logger:     logger,
	}
}

// Resolve computes the descriptor for one cell. The today argument is
// the date treated as the evaluation date, so callers control it and
// results stay reproducible.
func (r *Resolver) Resolve(items []ScheduledItem, app string, date time.Time, env Environment, scope ProjectScope, today time.Time) (CellDescriptor, error) {
	class, err := r.classifier.Classify(date)
	if err != nil {
		return CellDescriptor{}, err
	}

	matches := FilterScope(MatchItems(items, app, env, date), env, scope)

	return CellDescriptor{
		Application: app,
		Date:        dateutil.MidnightUTC(date),
		IsWeekend:   class.IsWeekend,
		HolidayName: class.HolidayName,
		IsToday:     dateutil.IsSameDay(date, today),
		Matches:     matches,
	}, nil
}

// Lookup returns the matched items for one cell, for detail display
// outside the grid. It is exactly the matcher composed with the scope
// filter, so its result always equals the Matches field Resolve would
// compute for the same inputs.
func (r *Resolver) Lookup(items []ScheduledItem, app string, date time.Time, env Environment, scope ProjectScope) []ScheduledItem {
	return FilterScope(MatchItems(items, app, env, date), env, scope)
}

// Grid resolves every (application, axis date) cell for one
// environment. Rows are sorted by application name. Empty application
// or item lists yield empty rows, never an error.
func (r *Resolver) Grid(items []ScheduledItem, apps []string, axis []time.Time, env Environment, scope ProjectScope, today time.Time) ([]Row, error) {
	sorted := make([]string, len(apps))
	copy(sorted, apps)
	sort.Strings(sorted)

	ix := NewIndex(items)

	rows := make([]Row, 0, len(sorted))
	matched := 0
	for _, app := range sorted {
		row := Row{
			Application: app,
			Cells:       make([]CellDescriptor, 0, len(axis)),
		}
		for _, date := range axis {
			class, err := r.classifier.Classify(date)
			if err != nil {
				return nil, err
			}

			matches := FilterScope(ix.Match(app, env, date), env, scope)
			matched += len(matches)

			row.Cells = append(row.Cells, CellDescriptor{
				Application: app,
				Date:        date,
				IsWeekend:   class.IsWeekend,
				HolidayName: class.HolidayName,
				IsToday:     dateutil.IsSameDay(date, today),
				Matches:     matches,
			})
		}
		rows = append(rows, row)
	}

	r.logger.Debug("Grid resolved",
		zap.String("environment", string(env)),
		zap.Int("applications", len(rows)),
		zap.Int("days", len(axis)),
		zap.Int("matched_items", matched))

	return rows, nil
}
