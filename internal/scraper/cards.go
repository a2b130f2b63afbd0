package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chrimar3/agent-athens/internal/event"
)

// CardOptions controls the card-list parser.
type CardOptions struct {
	// Origin prefixes relative card URLs. Defaults to the viva.gr origin;
	// more.com pages use the same layout with a different origin.
	Origin string
	// Cutoff drops cards dated before it. Zero disables the filter.
	Cutoff time.Time
}

const defaultOrigin = "https://www.viva.gr"

// classDatePattern matches the date codes list pages embed in class tokens,
// such as musicd20251113 or newShowd20251113.
var classDatePattern = regexp.MustCompile(`d(\d{8})`)

// ParseCards extracts event records from a play-template card listing page,
// the list layout shared by viva.gr and more.com. Cards without a decodable
// date or a usable title are skipped.
func ParseCards(r io.Reader, opts CardOptions) ([]*event.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	if opts.Origin == "" {
		opts.Origin = defaultOrigin
	}

	records := make([]*event.Record, 0)
	doc.Find("article").Each(func(i int, card *goquery.Selection) {
		class, _ := card.Attr("class")
		if !strings.Contains(strings.ToLower(class), "play-template") {
			return
		}
		if rec := parseCard(card, class, opts); rec != nil && rec.Valid() {
			records = append(records, rec)
		}
	})

	return records, nil
}

func parseCard(card *goquery.Selection, class string, opts CardOptions) *event.Record {
	rec := event.NewRecord()

	title := event.CollapseWhitespace(card.Find("h2, h3, h4").First().Text())
	if len([]rune(title)) < 3 {
		return nil
	}
	rec.Title = title

	if href, ok := card.Find("a[href]").First().Attr("href"); ok && href != "" {
		if strings.HasPrefix(href, "http") {
			rec.URL = href
		} else {
			rec.URL = opts.Origin + href
		}
	}

	if m := classDatePattern.FindStringSubmatch(class); m != nil {
		if date, ok := decodeClassDate(m[1], opts.Cutoff); ok {
			rec.Date = date
		}
	}

	rec.Venue = event.CollapseWhitespace(card.Find("[class*=venue], [class*=location]").First().Text())

	text := event.CollapseWhitespace(card.Text())
	if runes := []rune(text); len(runes) > 200 {
		text = string(runes[:200])
	}
	rec.ShortDescription = text

	rec.Genre = event.GenreFromClassTokens(strings.Fields(class))
	rec.Type = event.ClassifyType(rec.Title, rec.ShortDescription, rec.Genre)

	return rec
}

// decodeClassDate turns a YYYYMMDD class code into a calendar date.
func decodeClassDate(code string, cutoff time.Time) (string, bool) {
	t, err := time.Parse("20060102", code)
	if err != nil {
		return "", false
	}
	if !cutoff.IsZero() && t.Before(cutoff) {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
