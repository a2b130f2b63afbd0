package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chrimar3/agent-athens/internal/event"
)

// ParseResult is the persisted envelope for one parsed source.
type ParseResult struct {
	Source   string          `json:"source"`
	ParsedAt string          `json:"parsed_at"` // RFC3339
	Count    int             `json:"count"`
	Events   []*event.Record `json:"events"`
}

// Storage handles persistence of parse results.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating the directory if
// needed. A leading ~/ is expanded to the home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// resultPath returns the result file path for a source.
func (s *Storage) resultPath(source string) string {
	if source == "" {
		source = "events"
	}
	return filepath.Join(s.dataDir, fmt.Sprintf("parsed_%s.json", strings.ToLower(source)))
}

// SaveResult writes the records for a source, overwriting any previous
// result for that source.
func (s *Storage) SaveResult(source string, records []*event.Record) error {
	result := &ParseResult{
		Source:   source,
		ParsedAt: time.Now().UTC().Format(time.RFC3339),
		Count:    len(records),
		Events:   records,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if err := os.WriteFile(s.resultPath(source), data, 0644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	return nil
}

// LoadResult loads the previously saved result for a source. A missing
// file yields an empty result, not an error.
func (s *Storage) LoadResult(source string) (*ParseResult, error) {
	data, err := os.ReadFile(s.resultPath(source))
	if err != nil {
		if os.IsNotExist(err) {
			return &ParseResult{Source: source, Events: make([]*event.Record, 0)}, nil
		}
		return nil, fmt.Errorf("reading result: %w", err)
	}

	var result ParseResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing result: %w", err)
	}

	if result.Events == nil {
		result.Events = make([]*event.Record, 0)
	}

	return &result, nil
}
