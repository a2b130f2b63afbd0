package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/chrimar3/agent-athens/internal/event"
	"github.com/samber/lo"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	ParsedAt    time.Time       `json:"parsed_at"`
	Source      string          `json:"source"`
	RecordCount int             `json:"record_count"`
	Records     []*event.Record `json:"records"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON emits the bare record array. This is the shape downstream
// consumers of previously-parsed files expect; the envelope lives only in
// the storage layer.
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result.Records)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.RecordCount == 0 {
		fmt.Fprintln(w, "No events found.")
		return nil
	}

	for _, rec := range result.Records {
		line := rec.Title
		if rec.Date != "" {
			line = fmt.Sprintf("%s  %s", rec.Date, rec.Title)
		}
		if rec.Venue != "" {
			line += " @ " + rec.Venue
		}
		fmt.Fprintln(w, line)

		if verbose {
			fmt.Fprintf(w, "    Type: %s\n", rec.Type)
			if rec.Time != "" {
				fmt.Fprintf(w, "    Time: %s\n", rec.Time)
			}
			if rec.Genre != "" {
				fmt.Fprintf(w, "    Genre: %s\n", rec.Genre)
			}
			if rec.URL != "" {
				fmt.Fprintf(w, "    URL: %s\n", rec.URL)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d events (%s)\n", result.RecordCount, typeSummary(result.Records))
	return nil
}

// typeSummary renders per-type counts, e.g. "concert: 3, theater: 1".
func typeSummary(records []*event.Record) string {
	byType := lo.CountValuesBy(records, func(r *event.Record) event.Type {
		return r.Type
	})

	types := lo.Keys(byType)
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, fmt.Sprintf("%s: %d", t, byType[t]))
	}
	return strings.Join(parts, ", ")
}
