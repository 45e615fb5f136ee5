// Package textmeta extracts bibliographic fields from raw document text
// using ordered pattern rules with first-match-wins semantics. Every
// extractor returns an empty string rather than an error when nothing
// qualifies.
package textmeta

import (
	"regexp"
	"strconv"
	"time"
)

// MinYear is the earliest plausible publication year. Anything earlier
// is treated as noise (equipment model numbers, ISO standard years).
const MinYear = 1980

// yearScanLimit bounds the search to the front matter.
const yearScanLimit = 5000

// yearRule is one (matcher, validator) entry in the priority table.
// Rules are evaluated in order; within a rule, matches are taken in
// document order and the first one passing validation wins.
type yearRule struct {
	name string
	re   *regexp.Regexp
}

var yearRules = []yearRule{
	{"copyright", regexp.MustCompile(`(?i)(?:\x{00a9}|\(c\)|copyright)\s*(\d{4})`)},
	{"keyword", regexp.MustCompile(`(?i)(?:published|received|accepted|submitted)[:\s]+[^\n]*?(\d{4})`)},
	{"bare", regexp.MustCompile(`\b(19[89]\d|20\d\d)\b`)},
}

// ExtractYear finds a plausible publication year in text. Priority:
// a year next to a copyright mark, then one near publication keywords,
// then any bare 4-digit token in [MinYear, current year + 1].
func ExtractYear(text string) string {
	if len(text) > yearScanLimit {
		text = text[:yearScanLimit]
	}
	maxYear := time.Now().Year() + 1
	for _, rule := range yearRules {
		for _, m := range rule.re.FindAllStringSubmatch(text, -1) {
			y, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if y >= MinYear && y <= maxYear {
				return m[1]
			}
		}
	}
	return ""
}
