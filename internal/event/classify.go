package event

import "strings"

// genreClasses maps class-attribute markers to genres. Order matters: the
// markup's tag classes are not mutually exclusive and the first match wins,
// so a festival tagged musicrock still reads as rock.
var genreClasses = []struct {
	marker string
	genre  string
}{
	{"musicrock", "rock"},
	{"musicindie", "indie"},
	{"musicartmusic", "art music"},
	{"musicother", "other"},
	{"tagfest", "festival"},
}

// GenreFromClassTokens scans class tokens against the genre marker table.
// A marker matches when any token contains it as a substring, since listing
// pages decorate genre tokens with date codes (musicrockd20251113).
// Returns "" when no marker matches.
func GenreFromClassTokens(tokens []string) string {
	for _, g := range genreClasses {
		for _, tok := range tokens {
			if strings.Contains(tok, g.marker) {
				return g.genre
			}
		}
	}
	return ""
}

// ClassifyType infers the event type from title, description, and genre.
// Rules are checked in priority order and the first match wins; festival
// signals beat everything, so "Athens Film Festival" is a concert, not
// cinema. Matching is case-insensitive substring matching.
func ClassifyType(title, description, genre string) Type {
	t := strings.ToLower(title)

	switch {
	case strings.Contains(genre, "festival") || strings.Contains(t, "fest"):
		return TypeConcert
	case strings.Contains(t, "theater") || strings.Contains(t, "theatre"):
		return TypeTheater
	case strings.Contains(t, "exhibition") || strings.Contains(t, "έκθεση"):
		return TypeExhibition
	case strings.Contains(t, "cinema") || strings.Contains(t, "film"):
		return TypeCinema
	case strings.Contains(t, "workshop") || strings.Contains(t, "εργαστήριο"):
		return TypeWorkshop
	default:
		// Music listings without a stronger signal are concerts.
		return TypeConcert
	}
}
