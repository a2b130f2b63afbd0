package event

import "strings"

// Type classifies what kind of event a record describes.
type Type string

const (
	TypeConcert    Type = "concert"
	TypeTheater    Type = "theater"
	TypeExhibition Type = "exhibition"
	TypeCinema     Type = "cinema"
	TypeWorkshop   Type = "workshop"
)

// DefaultPrice is the price tag applied to every record. The listing pages
// this pipeline reads are ticketing sites, so everything is ticketed.
const DefaultPrice = "with-ticket"

// Record is one extracted event. Field names and order are a contract with
// downstream consumers of previously-parsed files and must not change.
type Record struct {
	Title            string `json:"title"`
	Date             string `json:"date"` // YYYY-MM-DD
	Time             string `json:"time"` // HH:MM, may be empty
	Venue            string `json:"venue"`
	Type             Type   `json:"type"`
	Genre            string `json:"genre"`
	Price            string `json:"price"`
	URL              string `json:"url"`
	ShortDescription string `json:"short_description"`
}

// NewRecord returns a record with all optional fields at their defaults.
func NewRecord() *Record {
	return &Record{
		Type:  TypeConcert,
		Price: DefaultPrice,
	}
}

// Valid reports whether the record carries the required fields. Records
// failing this check are silently dropped, never emitted.
func (r *Record) Valid() bool {
	return r.Title != "" && r.Date != ""
}

// CollapseWhitespace trims the string and collapses internal whitespace
// runs to single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
