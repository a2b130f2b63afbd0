package cli

import (
	"testing"

	"github.com/chrimar3/agent-athens/internal/event"
)

func sortableRecords() []*event.Record {
	mk := func(title, date, clock, venue string) *event.Record {
		rec := event.NewRecord()
		rec.Title = title
		rec.Date = date
		rec.Time = clock
		rec.Venue = venue
		return rec
	}
	return []*event.Record{
		mk("Zeta Night", "2026-06-21", "21:00", "Gagarin 205"),
		mk("Alpha Show", "2026-06-21", "18:00", "TerraVibe Park"),
		mk("Beta Gig", "2025-11-03", "20:00", "Half Note"),
	}
}

func titles(records []*event.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Title
	}
	return out
}

func assertOrder(t *testing.T, records []*event.Record, want []string) {
	t.Helper()
	got := titles(records)
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestSortNonePreservesDocumentOrder(t *testing.T) {
	records := sortableRecords()
	sortRecords(records, SortNone)
	assertOrder(t, records, []string{"Zeta Night", "Alpha Show", "Beta Gig"})
}

func TestSortByDate(t *testing.T) {
	records := sortableRecords()
	sortRecords(records, SortByDate)
	// Same-day records order by time.
	assertOrder(t, records, []string{"Beta Gig", "Alpha Show", "Zeta Night"})
}

func TestSortByTitle(t *testing.T) {
	records := sortableRecords()
	sortRecords(records, SortByTitle)
	assertOrder(t, records, []string{"Alpha Show", "Beta Gig", "Zeta Night"})
}

func TestSortByVenue(t *testing.T) {
	records := sortableRecords()
	sortRecords(records, SortByVenue)
	assertOrder(t, records, []string{"Zeta Night", "Beta Gig", "Alpha Show"})
}
