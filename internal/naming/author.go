package naming

import (
	"regexp"
	"strings"
)

var (
	// andSeparator splits "First Last and Second Author" author lists.
	andSeparator = regexp.MustCompile(`(?i)\band\b`)

	// trailingMarkers matches affiliation symbols and superscript-style
	// digit sequences at the end of a name.
	trailingMarkers = regexp.MustCompile(`[\d*\x{2020}\x{2021}\x{00a7}\x{00b6}]+$`)

	// leadingMarkers matches the same symbols at the start of a name.
	leadingMarkers = regexp.MustCompile(`^[*\x{2020}\x{2021}\x{00a7}\x{00b6}]+`)
)

// FirstAuthorLast extracts the first author's surname from a raw author
// string. It handles "Last, First" and "First Middle Last" orderings,
// multi-author lists separated by ";", "and", or "&", and affiliation
// markers. Compound surnames joined by a hyphen stay intact. A single
// bare name (corporate author) is returned unchanged. Returns "" when
// nothing parseable remains.
func FirstAuthorLast(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	// First author only.
	if i := strings.Index(s, ";"); i >= 0 {
		s = s[:i]
	} else if i := strings.Index(s, "&"); i >= 0 {
		s = s[:i]
	} else if loc := andSeparator.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}

	s = strings.TrimSpace(s)
	s = leadingMarkers.ReplaceAllString(s, "")
	s = strings.TrimSpace(trailingMarkers.ReplaceAllString(s, ""))

	// "Last, First" ordering: the surname is left of the comma.
	// Otherwise the surname is the final whitespace-separated token.
	if i := strings.Index(s, ","); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}

	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
