package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chrimar3/agent-athens/internal/event"
	"github.com/chrimar3/agent-athens/internal/logger"
	"github.com/chrimar3/agent-athens/internal/parser"
)

const (
	MusicListingURL = "https://www.viva.gr/tickets/music/"
	UserAgent       = "agent-athens/1.0 (github.com/chrimar3/agent-athens)"
	Timeout         = 30 * time.Second
)

// Mode selects which extraction path runs over a fetched page.
type Mode string

const (
	ModeArticle Mode = "article" // schema.org/Event article pipeline
	ModeCards   Mode = "cards"   // play-template card layout
)

// Scraper fetches listing pages and runs an extraction path over them.
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper pointed at the default music listing page.
func New() *Scraper {
	return NewForURL(MusicListingURL)
}

// NewForURL creates a Scraper for a specific listing page.
func NewForURL(url string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the listing page this scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// FetchEvents downloads the listing page and extracts event records using
// the given mode.
func (s *Scraper) FetchEvents(mode Mode) ([]*event.Record, error) {
	req, err := http.NewRequest("GET", s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	logger.RecordTiming("scraper.fetch", time.Since(start))

	var records []*event.Record
	switch mode {
	case ModeCards:
		records, err = ParseCards(resp.Body, CardOptions{})
		if err != nil {
			return nil, fmt.Errorf("parsing cards: %w", err)
		}
	default:
		records = parser.Parse(resp.Body)
	}

	logger.Info("extracted records", logger.Fields{
		"url":   s.url,
		"mode":  string(mode),
		"count": len(records),
	})
	return records, nil
}
