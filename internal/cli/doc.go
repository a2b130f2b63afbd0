// Package cli implements the command-line interface for agent-athens.
//
// The cli package provides the Cobra-based CLI with commands for parsing
// saved listing pages (parse) and for fetching them live (fetch), output
// formatting (text/JSON), sorting, record filtering, and persistence of
// parse results. It coordinates the parser, scraper, filter, and storage
// packages.
package cli
