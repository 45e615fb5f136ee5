package textmeta

import (
	"regexp"
	"strings"
)

// authorScanLines is how deep into the page the author search goes.
const authorScanLines = 35

var (
	// authorMarkers matches affiliation digits and symbols mixed into
	// an author line.
	authorMarkers = regexp.MustCompile(`[\d*,\x{2020}\x{2021}\x{00a7}\x{00b6}]+`)

	// authorLine matches a leading "First [M.] Last" name. Best effort:
	// the lead author is occasionally misidentified on unusual layouts.
	authorLine = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z]\.?)?\s+[A-Z][a-zA-Z'-]+)`)
)

// ExtractAuthor heuristically locates the first author's surname in
// first-page text. When the title is known, the search starts after it;
// otherwise the first few lines are assumed to be headers and skipped.
func ExtractAuthor(text, title string) string {
	lines := nonEmptyLines(text)
	limit := len(lines)
	if limit > authorScanLines {
		limit = authorScanLines
	}

	titlePrefix := runePrefix(title, 20)
	titleSeen := false
	for i := 0; i < limit; i++ {
		line := lines[i]
		if titlePrefix != "" && strings.HasPrefix(line, titlePrefix) {
			titleSeen = true
			continue
		}
		if !titleSeen && i <= 5 {
			continue
		}
		cleaned := strings.TrimSpace(authorMarkers.ReplaceAllString(line, " "))
		m := authorLine.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		parts := strings.Fields(m[1])
		if len(parts) >= 2 {
			return parts[len(parts)-1]
		}
	}
	return ""
}

// runePrefix returns the first n runes of s without splitting a
// multi-byte rune.
func runePrefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
