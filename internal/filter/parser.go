package filter

import (
	"fmt"
	"strings"
	"time"
)

// ParseDateRange parses a date range expression into from/to times.
//
// Supported forms:
//   - "2026-06-01..2026-06-30" - explicit range, inclusive
//   - "2026-06-01.."           - open-ended from
//   - "..2026-06-30"           - open-ended to
//   - "2026-06"                - entire month
//   - "2026-06-21"             - single day
//
// Returned times are in UTC; the end of a range is the last instant of its
// day so inclusive comparison works.
func ParseDateRange(input string) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	if from, to, ok := parseMonthRange(input); ok {
		return from, to, nil
	}

	start, end, found := strings.Cut(input, "..")
	if !found {
		day, err := parseDay(input)
		if err != nil {
			return nil, nil, err
		}
		from := day
		to := endOfDay(day)
		return &from, &to, nil
	}

	var from, to *time.Time
	if start != "" {
		d, err := parseDay(start)
		if err != nil {
			return nil, nil, err
		}
		from = &d
	}
	if end != "" {
		d, err := parseDay(end)
		if err != nil {
			return nil, nil, err
		}
		last := endOfDay(d)
		to = &last
	}
	if from == nil && to == nil {
		return nil, nil, fmt.Errorf("date range needs at least one bound")
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("start date must be before end date")
	}

	return from, to, nil
}

// parseMonthRange handles the "2026-06" whole-month form.
func parseMonthRange(input string) (*time.Time, *time.Time, bool) {
	t, err := time.Parse("2006-01", input)
	if err != nil {
		return nil, nil, false
	}
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(t.Year(), t.Month()+1, 0, 23, 59, 59, 0, time.UTC)
	return &from, &to, true
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", strings.TrimSpace(s))
	}
	return t, nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
}
