package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chrimar3/agent-athens/internal/event"
)

func sampleRecords() []*event.Record {
	rec := event.NewRecord()
	rec.Title = "Rockwave Festival"
	rec.Date = "2026-06-21"
	rec.Time = "18:00"
	rec.Venue = "TerraVibe Park"
	rec.Genre = "rock"
	return []*event.Record{rec}
}

func TestSaveAndLoadResult(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := store.SaveResult("viva", sampleRecords()); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	result, err := store.LoadResult("viva")
	if err != nil {
		t.Fatalf("LoadResult failed: %v", err)
	}

	if result.Source != "viva" {
		t.Errorf("expected source 'viva', got %q", result.Source)
	}
	if result.Count != 1 || len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got count=%d len=%d", result.Count, len(result.Events))
	}
	if result.ParsedAt == "" {
		t.Error("expected parsed_at to be set")
	}

	got := result.Events[0]
	if got.Title != "Rockwave Festival" || got.Date != "2026-06-21" {
		t.Errorf("round trip mangled record: %+v", got)
	}
	if got.Price != event.DefaultPrice {
		t.Errorf("expected price preserved, got %q", got.Price)
	}
}

func TestLoadResultMissingFile(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	result, err := store.LoadResult("never-saved")
	if err != nil {
		t.Fatalf("expected empty result for missing file, got error: %v", err)
	}
	if len(result.Events) != 0 {
		t.Errorf("expected no events, got %d", len(result.Events))
	}
}

func TestResultFieldOrder(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := store.SaveResult("viva", sampleRecords()); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "parsed_viva.json"))
	if err != nil {
		t.Fatalf("reading result file: %v", err)
	}

	// The nine record fields are a contract with downstream consumers and
	// must serialize in this order.
	fields := []string{
		`"title"`, `"date"`, `"time"`, `"venue"`, `"type"`,
		`"genre"`, `"price"`, `"url"`, `"short_description"`,
	}
	text := string(data)
	last := -1
	for _, f := range fields {
		idx := strings.Index(text, f)
		if idx < 0 {
			t.Fatalf("field %s missing from output", f)
		}
		if idx < last {
			t.Errorf("field %s out of order", f)
		}
		last = idx
	}

	// And the envelope must stay valid JSON.
	var result ParseResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("result file is not valid JSON: %v", err)
	}
}

func TestResultPathNormalization(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := store.resultPath("VIVA"); filepath.Base(got) != "parsed_viva.json" {
		t.Errorf("expected lower-cased file name, got %q", got)
	}
	if got := store.resultPath(""); filepath.Base(got) != "parsed_events.json" {
		t.Errorf("expected default file name, got %q", got)
	}
}
