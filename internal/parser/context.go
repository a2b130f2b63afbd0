package parser

import (
	"strings"

	"github.com/chrimar3/agent-athens/internal/event"
)

// target identifies which field extractor, if any, is currently armed.
type target int

const (
	targetNone target = iota
	targetTitle
	targetVenue
	targetDate
)

// context holds the single in-progress record between a container open and
// its matching close. A fresh context is created per boundary; no buffer is
// shared across two records.
type context struct {
	record *event.Record

	armed    target
	closeTag string   // element name whose close disarms the extractor
	buf      []string // text fragments accumulated while armed

	// Display date text from the time element. Kept off the record: the
	// emitted date comes from the attribute paths, and the free-text shape
	// is only handled by event.ParseDisplayDate when a caller asks.
	dateText string
}

func newContext() *context {
	return &context{record: event.NewRecord()}
}

// arm activates a field extractor, resetting the accumulator. Arming while
// already armed abandons the previous accumulation.
func (c *context) arm(t target, closeTag string) {
	c.armed = t
	c.closeTag = closeTag
	c.buf = c.buf[:0]
}

func (c *context) appendText(s string) {
	if c.armed != targetNone {
		c.buf = append(c.buf, s)
	}
}

// disarm joins and trims the accumulated text and writes it to the armed
// field. A later marker of the same kind overwrites: last write wins.
func (c *context) disarm() {
	text := strings.TrimSpace(strings.Join(c.buf, ""))
	switch c.armed {
	case targetTitle:
		c.record.Title = text
	case targetVenue:
		c.record.Venue = text
	case targetDate:
		c.dateText = text
	}
	c.armed = targetNone
	c.closeTag = ""
	c.buf = c.buf[:0]
}
