package textmeta

import (
	"regexp"
	"strings"
)

// doiScanLimit bounds the search to the front matter, where the DOI of
// the paper itself appears before any reference-list DOIs.
const doiScanLimit = 6000

// doiRule is one ordered pattern attempt. build reconstructs the
// canonical DOI from the submatches; when nil, the first capture group
// is used as-is.
type doiRule struct {
	name  string
	re    *regexp.Regexp
	build func(m []string) string
}

var doiRules = []doiRule{
	{name: "prefix", re: regexp.MustCompile(`(?i)\bdoi[:\s]\s*(10\.\d{4,9}/[^\s,;]+)`)},
	{name: "doi-url", re: regexp.MustCompile(`https?://doi\.org/(10\.\d{4,9}/[^\s,;]+)`)},
	{name: "dx-doi-url", re: regexp.MustCompile(`https?://dx\.doi\.org/(10\.\d{4,9}/[^\s,;]+)`)},
	// Filename encoding where '/' was replaced by '_',
	// e.g. "10.1515_bmc.2011.016.pdf".
	{
		name: "filename",
		re:   regexp.MustCompile(`(10\.\d{4,9})_([^\s,;/_]+)`),
		build: func(m []string) string {
			suffix := strings.TrimSuffix(strings.TrimSuffix(m[2], ".pdf"), ".PDF")
			return m[1] + "/" + suffix
		},
	},
	{name: "bare", re: regexp.MustCompile(`(10\.\d{4,9}/[^\s,;]+)`)},
}

// ExtractDOI finds a normalized DOI in text (which may also be a bare
// filename). Patterns are attempted in order; the first pattern that
// yields a valid DOI wins and later patterns are not consulted.
func ExtractDOI(text string) string {
	if len(text) > doiScanLimit {
		text = text[:doiScanLimit]
	}
	for _, rule := range doiRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := m[1]
		if rule.build != nil {
			raw = rule.build(m)
		}
		if doi := cleanDOI(raw); doi != "" {
			return doi
		}
	}
	return ""
}

// cleanDOI strips trailing punctuation a DOI picks up from running
// text and rejects fragments too short to be real.
func cleanDOI(s string) string {
	s = strings.TrimRight(s, ".,;:)]}>")
	if len(s) <= 10 {
		return ""
	}
	return s
}
