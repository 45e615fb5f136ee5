package textmeta

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// titleScanLines is how deep into the page the title search goes.
const titleScanLines = 25

// titleSkipPatterns match lines that are journal furniture rather than
// a title: running heads, DOIs, page numbers, article-type banners.
var titleSkipPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(nucleic acids|bioinformatics|journal|volume|vol\.|no\.|pages?|doi|http|www|received|accepted|published|copyright|\x{00a9}|downloaded|open access|research article|original paper|article|review|short communication|letter)`),
	regexp.MustCompile(`^\d+[\s.]`),    // page numbers
	regexp.MustCompile(`^\w+\s+\d{4}`), // "Journal 2020" headers
}

// ExtractTitle heuristically locates the paper title in first-page
// text: the first substantial line that is not journal furniture,
// merged with a likely continuation line. Returns "" when no line
// qualifies.
func ExtractTitle(text string) string {
	lines := nonEmptyLines(text)
	limit := len(lines)
	if limit > titleScanLines {
		limit = titleScanLines
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if len(line) < 12 || skippableLine(line) {
			continue
		}
		title := line
		if i+1 < len(lines) && !strings.HasSuffix(line, ".") {
			next := lines[i+1]
			if len(next) > 10 && !skippableLine(next) && looksLikeContinuation(next) {
				title = line + " " + next
			}
		}
		return title
	}
	return ""
}

// looksLikeContinuation reports whether a line reads as the second half
// of a wrapped title.
func looksLikeContinuation(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	if unicode.IsLower(r) {
		return true
	}
	return !strings.HasSuffix(line, ".") && len(line) > 15
}

func skippableLine(line string) bool {
	for _, p := range titleSkipPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
