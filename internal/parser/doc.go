// Package parser implements the single-pass extraction pipeline for
// schema.org/Event article markup from viva.gr listing pages.
//
// A pull-based tokenizer feeds an explicit state machine. The boundary
// tracker recognizes article containers carrying the Event item type and
// holds exactly one in-progress record at a time. While inside a record,
// field extractors accumulate title, venue, and display-date text from
// nested markers, and attribute extractors read the machine-readable
// data-date-time timestamp, genre class tokens, and itemprop metadata.
// At the container close the record is validated (title and date required),
// classified, and emitted; invalid records are silently dropped.
//
// The pipeline is total: malformed or truncated markup produces fewer
// records, never an error.
package parser
