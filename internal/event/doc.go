// Package event provides the record model for Athens event listings.
//
// The event package defines the nine-field Record emitted by the extraction
// pipelines, the validity rule that gates emission (title and date must be
// present), event-type classification from title and genre signals, and a
// normalizer for Greek display dates such as "Σάβ 21 Ιούν".
package event
