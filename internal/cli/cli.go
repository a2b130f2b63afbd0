package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chrimar3/agent-athens/internal/event"
	"github.com/chrimar3/agent-athens/internal/filter"
	"github.com/chrimar3/agent-athens/internal/logger"
	"github.com/chrimar3/agent-athens/internal/parser"
	"github.com/chrimar3/agent-athens/internal/scraper"
	"github.com/chrimar3/agent-athens/internal/storage"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagInput    string
	flagURL      string
	flagMode     string
	flagFormat   string
	flagSort     string
	flagSource   string
	flagDataDir  string
	flagDates    string
	flagVenues   []string
	flagTypes    []string
	flagGenres   []string
	flagWeekends bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent-athens",
		Short: "Extract Athens event listings into structured records",
		Long: `A CLI tool to extract event records from Athens ticketing sites.
Parses saved listing pages or fetches them live, normalizes dates and
genres, classifies event types, and emits structured JSON records.`,
	}

	cmd.AddCommand(newParseCmd(), newFetchCmd())

	return cmd
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a saved listing page into event records",
		RunE:  runParse,
	}

	cmd.Flags().StringVar(&flagInput, "input", "", "Path to a saved HTML listing page (required)")
	addCommonFlags(cmd)
	cmd.MarkFlagRequired("input")

	return cmd
}

func newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a listing page and extract event records",
		RunE:  runFetch,
	}

	cmd.Flags().StringVar(&flagURL, "url", scraper.MusicListingURL, "Listing page URL")
	addCommonFlags(cmd)

	return cmd
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagMode, "mode", "article", "Extraction mode: article or cards")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", "none", "Sort order: none, date, title, or venue")
	cmd.Flags().StringVar(&flagSource, "source", "viva", "Source label for persisted results")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "", "Persist results to this directory (disabled when empty)")
	cmd.Flags().StringVar(&flagDates, "dates", "", "Date range filter, e.g. 2026-06 or 2026-06-01..2026-06-30")
	cmd.Flags().StringSliceVar(&flagVenues, "venue", nil, "Keep records whose venue contains this text (repeatable)")
	cmd.Flags().StringSliceVar(&flagTypes, "type", nil, "Keep records of this event type (repeatable)")
	cmd.Flags().StringSliceVar(&flagGenres, "genre", nil, "Keep records of this genre (repeatable)")
	cmd.Flags().BoolVar(&flagWeekends, "weekends", false, "Keep only Saturday/Sunday records")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
}

// runParse extracts records from a saved HTML file.
func runParse(cmd *cobra.Command, args []string) error {
	mode, format, order, err := validateCommonFlags()
	if err != nil {
		return err
	}

	f, err := os.Open(flagInput)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	var records []*event.Record
	switch mode {
	case scraper.ModeCards:
		records, err = scraper.ParseCards(f, scraper.CardOptions{})
		if err != nil {
			return fmt.Errorf("parsing cards: %w", err)
		}
	default:
		records = parser.Parse(f)
	}

	logger.Debug("parsed input file", logger.Fields{
		"input": flagInput,
		"mode":  string(mode),
		"count": len(records),
	})

	return finish(records, format, order)
}

// runFetch downloads a listing page and extracts records.
func runFetch(cmd *cobra.Command, args []string) error {
	mode, format, order, err := validateCommonFlags()
	if err != nil {
		return err
	}

	records, err := scraper.NewForURL(flagURL).FetchEvents(mode)
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}

	return finish(records, format, order)
}

// finish applies filtering, sorting, persistence, and output to extracted
// records. Shared by parse and fetch.
func finish(records []*event.Record, format OutputFormat, order SortOrder) error {
	recFilter, err := buildFilter()
	if err != nil {
		return err
	}
	if !recFilter.IsEmpty() {
		before := len(records)
		records = recFilter.Apply(records)
		logger.Debug("applied filter", logger.Fields{
			"filter":  recFilter.String(),
			"before":  before,
			"matched": len(records),
		})
	}

	sortRecords(records, order)

	if flagDataDir != "" {
		store, err := storage.New(flagDataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
		if err := store.SaveResult(flagSource, records); err != nil {
			return fmt.Errorf("saving result: %w", err)
		}
		logger.Debug("saved result", logger.Fields{"source": flagSource, "dir": flagDataDir})
	}

	result := &OutputResult{
		ParsedAt:    time.Now().UTC(),
		Source:      flagSource,
		RecordCount: len(records),
		Records:     records,
	}

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func validateCommonFlags() (scraper.Mode, OutputFormat, SortOrder, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	mode := scraper.Mode(strings.ToLower(flagMode))
	if mode != scraper.ModeArticle && mode != scraper.ModeCards {
		return "", "", "", fmt.Errorf("invalid mode: %s (must be 'article' or 'cards')", flagMode)
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", "", "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	order := SortOrder(strings.ToLower(flagSort))
	switch order {
	case SortNone, SortByDate, SortByTitle, SortByVenue:
	default:
		return "", "", "", fmt.Errorf("invalid sort order: %s (must be 'none', 'date', 'title', or 'venue')", flagSort)
	}

	return mode, format, order, nil
}

// buildFilter assembles a record filter from the filter flags.
func buildFilter() (*filter.Filter, error) {
	f := filter.New()

	if flagDates != "" {
		from, to, err := filter.ParseDateRange(flagDates)
		if err != nil {
			return nil, fmt.Errorf("invalid --dates: %w", err)
		}
		f.DateFrom = from
		f.DateTo = to
	}

	f.Venues = flagVenues
	f.Genres = flagGenres
	f.WeekendsOnly = flagWeekends

	for _, t := range flagTypes {
		typ := event.Type(strings.ToLower(t))
		switch typ {
		case event.TypeConcert, event.TypeTheater, event.TypeExhibition, event.TypeCinema, event.TypeWorkshop:
			f.Types = append(f.Types, typ)
		default:
			return nil, fmt.Errorf("invalid --type: %s", t)
		}
	}

	return f, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
