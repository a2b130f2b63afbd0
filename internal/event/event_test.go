package event

import "testing"

func TestNewRecordDefaults(t *testing.T) {
	rec := NewRecord()

	if rec.Type != TypeConcert {
		t.Errorf("expected default type concert, got %q", rec.Type)
	}
	if rec.Price != DefaultPrice {
		t.Errorf("expected default price %q, got %q", DefaultPrice, rec.Price)
	}
	if rec.Title != "" || rec.Date != "" || rec.Time != "" || rec.Venue != "" {
		t.Error("expected string fields to default to empty")
	}
	if rec.Genre != "" || rec.URL != "" || rec.ShortDescription != "" {
		t.Error("expected optional fields to default to empty")
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		title string
		date  string
		want  bool
	}{
		{"title and date", "Concert at Gazarte", "2026-06-21", true},
		{"missing date", "Concert at Gazarte", "", false},
		{"missing title", "", "2026-06-21", false},
		{"missing both", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord()
			rec.Title = tt.title
			rec.Date = tt.date
			if got := rec.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  A   great   show   ", "A great show"},
		{"already clean", "already clean"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := CollapseWhitespace(tt.input); got != tt.expected {
				t.Errorf("CollapseWhitespace(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
