// Package filter provides post-extraction filtering of event records.
//
// Filters narrow a parsed record list before output:
//   - Date ranges (from/to, inclusive)
//   - Venue names (substring matching, case-insensitive)
//   - Event types (exact match against the type enum)
//   - Genres (exact match)
//   - Weekends only (Saturday/Sunday)
//
// An empty filter matches everything. Filtering is presentation-side: the
// extraction pipelines always emit every record that validates.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrimar3/agent-athens/internal/event"
)

// Filter holds record filtering criteria.
type Filter struct {
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Venue substring matches, case-insensitive.
	Venues []string `json:"venues,omitempty"`

	// Exact event types (concert, theater, ...).
	Types []event.Type `json:"types,omitempty"`

	// Exact genres (rock, indie, ...).
	Genres []string `json:"genres,omitempty"`

	// Keep only Saturday/Sunday events.
	WeekendsOnly bool `json:"weekends_only,omitempty"`
}

// New creates an empty filter that matches all records.
func New() *Filter {
	return &Filter{}
}

// IsEmpty reports whether the filter has any active criteria.
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Venues) == 0 &&
		len(f.Types) == 0 &&
		len(f.Genres) == 0 &&
		!f.WeekendsOnly
}

// Matches reports whether a record passes all active criteria. Records
// whose date fails to parse pass the date criteria rather than being
// filtered on bad data.
func (f *Filter) Matches(rec *event.Record) bool {
	if f.IsEmpty() {
		return true
	}

	date, dateOK := parseRecordDate(rec.Date)

	if f.DateFrom != nil && dateOK && date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && dateOK && date.After(*f.DateTo) {
		return false
	}
	if f.WeekendsOnly && dateOK {
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			return false
		}
	}

	if len(f.Venues) > 0 {
		venue := strings.ToLower(rec.Venue)
		matched := false
		for _, v := range f.Venues {
			if strings.Contains(venue, strings.ToLower(v)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Types) > 0 {
		matched := false
		for _, t := range f.Types {
			if rec.Type == t {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Genres) > 0 {
		matched := false
		for _, g := range f.Genres {
			if strings.EqualFold(rec.Genre, g) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

// Apply returns the records matching all criteria. An empty filter returns
// the input unchanged.
func (f *Filter) Apply(records []*event.Record) []*event.Record {
	if f.IsEmpty() {
		return records
	}
	filtered := make([]*event.Record, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// String returns a human-readable description of the active criteria.
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("2006-01-02")))
	}
	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("2006-01-02")))
	}
	if len(f.Venues) > 0 {
		parts = append(parts, fmt.Sprintf("Venues: %s", strings.Join(f.Venues, ", ")))
	}
	if len(f.Types) > 0 {
		names := make([]string, len(f.Types))
		for i, t := range f.Types {
			names[i] = string(t)
		}
		parts = append(parts, fmt.Sprintf("Types: %s", strings.Join(names, ", ")))
	}
	if len(f.Genres) > 0 {
		parts = append(parts, fmt.Sprintf("Genres: %s", strings.Join(f.Genres, ", ")))
	}
	if f.WeekendsOnly {
		parts = append(parts, "Weekends only")
	}

	return strings.Join(parts, " | ")
}

// parseRecordDate parses the record's YYYY-MM-DD date field.
func parseRecordDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
