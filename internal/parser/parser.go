package parser

import (
	"io"
	"strings"
	"time"

	"github.com/chrimar3/agent-athens/internal/event"
)

const (
	containerTag  = "article"
	eventItemType = "http://schema.org/Event"

	// siteOrigin prefixes the relative URLs carried by itemprop=url meta tags.
	siteOrigin = "https://www.viva.gr"

	// maxDescription caps short_description at 200 source characters.
	maxDescription = 200
)

// Parse runs the extraction pipeline over one document and returns the
// records that validated, in document order. It is total: malformed input
// yields fewer records, never an error. Each call uses fresh state, so
// separate documents may be parsed concurrently.
func Parse(r io.Reader) []*event.Record {
	p := &parser{tz: NewTokenizer(r)}
	return p.run()
}

type parser struct {
	tz      *Tokenizer
	ctx     *context
	records []*event.Record
}

func (p *parser) run() []*event.Record {
	p.records = make([]*event.Record, 0)
	for {
		tok, ok := p.tz.Next()
		if !ok {
			// An unterminated record never reaches its close; drop it.
			return p.records
		}
		switch tok.Kind {
		case TagOpen:
			p.handleOpen(tok)
		case TagClose:
			p.handleClose(tok)
		case Text:
			if p.ctx != nil {
				p.ctx.appendText(tok.Data)
			}
		}
	}
}

func (p *parser) handleOpen(tok Token) {
	if tok.Name == containerTag && tok.Attrs["itemtype"] == eventItemType {
		if p.ctx != nil {
			// Overlapping containers are not valid listing markup. Keep the
			// live record rather than corrupting it with a second context.
			return
		}
		p.ctx = newContext()
		p.extractTimestamp(tok)
		p.ctx.record.Genre = event.GenreFromClassTokens(tok.Classes)
		return
	}

	if p.ctx == nil {
		return
	}

	switch {
	case tok.Name == "meta":
		p.extractMeta(tok)
	case tok.Name == "h3" && tok.Attrs["class"] == "playinfo__title":
		p.ctx.arm(targetTitle, "h3")
	case tok.Name == "span" && tok.Attrs["id"] == "PlayVenue":
		p.ctx.arm(targetVenue, "span")
	case tok.Name == "time" && tok.HasClass("playinfo__date"):
		p.ctx.arm(targetDate, "time")
	}
}

func (p *parser) handleClose(tok Token) {
	if p.ctx == nil {
		return
	}
	if tok.Name == containerTag {
		p.commit()
		return
	}
	if p.ctx.armed != targetNone && tok.Name == p.ctx.closeTag {
		p.ctx.disarm()
	}
}

// commit validates and emits the live record, then drops the context
// regardless of the outcome.
func (p *parser) commit() {
	ctx := p.ctx
	p.ctx = nil

	if !ctx.record.Valid() {
		return
	}

	// Copy before appending so a later context can never touch an
	// already-emitted record.
	rec := *ctx.record
	rec.Type = event.ClassifyType(rec.Title, rec.ShortDescription, rec.Genre)
	rec.ShortDescription = event.CollapseWhitespace(rec.ShortDescription)
	p.records = append(p.records, &rec)
}

// extractTimestamp reads the machine-readable data-date-time attribute,
// format "2026/06/21 18:00:00". A malformed value leaves date and time
// unset so the startDate fallback can fill them.
func (p *parser) extractTimestamp(tok Token) {
	parts := strings.Fields(tok.Attrs["data-date-time"])
	if len(parts) < 2 {
		return
	}
	clock := parts[1]
	if len(clock) > 5 {
		clock = clock[:5]
	}
	p.ctx.record.Date = strings.ReplaceAll(parts[0], "/", "-")
	p.ctx.record.Time = clock
}

// extractMeta consumes itemprop metadata nested inside the record.
func (p *parser) extractMeta(tok Token) {
	content := tok.Attrs["content"]
	switch tok.Attrs["itemprop"] {
	case "url":
		if strings.HasPrefix(content, "/") {
			p.ctx.record.URL = siteOrigin + content
		}
	case "description":
		if runes := []rune(content); len(runes) > maxDescription {
			content = string(runes[:maxDescription])
		}
		p.ctx.record.ShortDescription = content
	case "startDate":
		// Fallback only: the data-date-time attribute takes priority.
		if p.ctx.record.Date != "" {
			return
		}
		if date, clock, ok := parseISO(content); ok {
			p.ctx.record.Date = date
			p.ctx.record.Time = clock
		}
	}
}

// isoLayouts covers the startDate shapes seen in listing markup, after the
// T separator is normalized to a space.
var isoLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

func parseISO(value string) (date, clock string, ok bool) {
	value = strings.TrimSpace(strings.Replace(value, "T", " ", 1))
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return t.Format("2006-01-02"), t.Format("15:04"), true
	}
	return "", "", false
}
