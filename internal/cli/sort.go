package cli

import (
	"sort"
	"strings"

	"github.com/chrimar3/agent-athens/internal/event"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	// SortNone preserves document order, the order boundary closes were
	// seen in the source markup.
	SortNone    SortOrder = "none"
	SortByDate  SortOrder = "date"
	SortByTitle SortOrder = "title"
	SortByVenue SortOrder = "venue"
)

// sortRecords sorts records in place based on the specified sort order.
// Record dates are YYYY-MM-DD strings, so lexicographic order is
// chronological order.
func sortRecords(records []*event.Record, order SortOrder) {
	switch order {
	case SortByDate:
		sort.SliceStable(records, func(i, j int) bool {
			return compareByDate(records[i], records[j])
		})
	case SortByTitle:
		sort.SliceStable(records, func(i, j int) bool {
			a := strings.ToLower(records[i].Title)
			b := strings.ToLower(records[j].Title)
			if a != b {
				return a < b
			}
			return compareByDate(records[i], records[j])
		})
	case SortByVenue:
		sort.SliceStable(records, func(i, j int) bool {
			a := strings.ToLower(records[i].Venue)
			b := strings.ToLower(records[j].Venue)
			if a != b {
				return a < b
			}
			return compareByDate(records[i], records[j])
		})
	}
}

// compareByDate compares two records by date, then time, then title.
func compareByDate(a, b *event.Record) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	return strings.ToLower(a.Title) < strings.ToLower(b.Title)
}
