package planning

import (
	"time"
)

// MatchItems returns every item whose application and environment equal
// the requested ones and whose date range covers the given day, in the
// collection's insertion order. All matches are collected; overlapping
// items on the same day all appear.
func MatchItems(items []ScheduledItem, app string, env Environment, date time.Time) []ScheduledItem {
	var matches []ScheduledItem
	for _, item := range items {
		if item.Application == app && item.Environment == env && item.Covers(date) {
			matches = append(matches, item)
		}
	}
	return matches
}

type indexKey struct {
	app string
	env Environment
}

// Index groups a snapshot's items by (application, environment) so a
// grid render does not rescan the whole collection once per cell.
// It preserves insertion order within each group and never mutates
// the snapshot it was built from.
type Index struct {
	byKey map[indexKey][]ScheduledItem
}

// NewIndex builds an index over the given snapshot.
func NewIndex(items []ScheduledItem) *Index {
	ix := &Index{byKey: make(map[indexKey][]ScheduledItem)}
	for _, item := range items {
		key := indexKey{app: item.Application, env: item.Environment}
		ix.byKey[key] = append(ix.byKey[key], item)
	}
	return ix
}

// Match returns the same result as MatchItems over the indexed snapshot.
func (ix *Index) Match(app string, env Environment, date time.Time) []ScheduledItem {
	var matches []ScheduledItem
	for _, item := range ix.byKey[indexKey{app: app, env: env}] {
		if item.Covers(date) {
			matches = append(matches, item)
		}
	}
	return matches
}
