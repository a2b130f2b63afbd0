package event

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// YearWindow maps Greek display dates, which omit the year, onto the
// two-year crawl window they belong to. Months from October onward fall in
// Late, earlier months in Early. This is a crawl-window heuristic, not a
// calendar rule: callers processing a different season must supply their
// own window.
type YearWindow struct {
	Late  int
	Early int
}

// DefaultYearWindow covers the 2025/2026 season the listing crawl spans.
var DefaultYearWindow = YearWindow{Late: 2025, Early: 2026}

// greekMonths holds month abbreviations as they appear in display dates,
// lower-cased with accents stripped. Checked in calendar order.
var greekMonths = []struct {
	abbr  string
	month int
}{
	{"ιαν", 1}, {"φεβ", 2}, {"μαρ", 3}, {"απρ", 4},
	{"μαι", 5}, {"ιουν", 6}, {"ιουλ", 7}, {"αυγ", 8},
	{"σεπ", 9}, {"οκτ", 10}, {"νοε", 11}, {"δεκ", 12},
}

var dayDigits = regexp.MustCompile(`\d+`)

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldGreek lower-cases text and strips combining marks so accented display
// forms ("Ιούν", "Μαΐου") match the unaccented month table.
func foldGreek(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// ParseDisplayDate extracts a YYYY-MM-DD date from Greek display text such
// as "Σάβ 21 Ιούν". The first recognized month abbreviation decides the
// month, the first run of digits the day, and the window the year.
// Returns false when no month abbreviation is recognized or no day digits
// are present.
func ParseDisplayDate(text string, w YearWindow) (string, bool) {
	folded := foldGreek(text)
	for _, m := range greekMonths {
		if !strings.Contains(folded, m.abbr) {
			continue
		}
		day := dayDigits.FindString(text)
		if day == "" {
			return "", false
		}
		if len(day) == 1 {
			day = "0" + day
		}
		year := w.Early
		if m.month >= 10 {
			year = w.Late
		}
		return fmt.Sprintf("%d-%02d-%s", year, m.month, day), true
	}
	return "", false
}
