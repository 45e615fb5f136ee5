package naming

import (
	"regexp"
	"strings"
)

// DefaultWords is the default content-word budget for canonical titles.
const DefaultWords = 6

// titlePunct matches punctuation that separates title words. Hyphens
// are excluded; they get their own merge/split treatment below.
var titlePunct = regexp.MustCompile("[–—:,;.!?()“”‘’'\"\\\\/\\[\\]{}]")

// TitleToCamel converts the first n content words of title into a
// CamelCase identifier. Stop words are skipped unless the title
// consists of nothing else. Terms in the PreserveCase table keep their
// canonical casing; everything else is capitalized. An empty title
// yields an empty string.
//
// Hyphenated segments are split into separate words ("Particle-Based"
// -> "Particle", "Based") except that a single-letter segment is merged
// with its successor ("G-quadruplex" -> "GQuadruplex") so a lone letter
// never consumes a word slot by itself.
func (t Tables) TitleToCamel(title string, n int) string {
	if n <= 0 {
		n = DefaultWords
	}
	words := splitTitleWords(title)
	if len(words) == 0 {
		return ""
	}

	content := make([]string, 0, len(words))
	for _, w := range words {
		if !t.StopWords[strings.ToLower(w)] {
			content = append(content, w)
		}
	}
	// A title made entirely of stop words still yields a name.
	if len(content) == 0 {
		content = words
	}
	if len(content) > n {
		content = content[:n]
	}

	var b strings.Builder
	for _, w := range content {
		if canon, ok := t.PreserveCase[strings.ToLower(w)]; ok {
			b.WriteString(canon)
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// splitTitleWords tokenizes a title on whitespace and hyphens, strips
// punctuation, and applies the single-letter hyphen-merge rule.
func splitTitleWords(title string) []string {
	cleaned := titlePunct.ReplaceAllString(title, " ")

	var words []string
	for _, raw := range strings.Fields(cleaned) {
		parts := strings.Split(raw, "-")
		for i := 0; i < len(parts); i++ {
			p := Sanitize(parts[i])
			if p == "" {
				continue
			}
			if len(p) == 1 && i+1 < len(parts) {
				if next := Sanitize(parts[i+1]); next != "" {
					words = append(words, p+next)
					i++
					continue
				}
			}
			words = append(words, p)
		}
	}
	return words
}

// capitalize uppercases the first letter and lowercases the rest.
// Input is already ASCII alphanumeric.
func capitalize(w string) string {
	if w == "" {
		return ""
	}
	if len(w) == 1 {
		return strings.ToUpper(w)
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

// asciiFold maps common accented Latin letters to their base letter.
// Best effort only; anything still outside [A-Za-z0-9] is dropped.
var asciiFold = map[rune]rune{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'ç': 'c', 'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ñ': 'n', 'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y', 'ß': 's',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A',
	'Ç': 'C', 'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I',
	'Ñ': 'N', 'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', 'Ø': 'O',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U', 'Ý': 'Y',
}

// Sanitize reduces s to ASCII letters and digits, folding common
// accented letters first. Used for both title tokens and surnames so
// the final identifier is filesystem-legal everywhere.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if folded, ok := asciiFold[r]; ok {
			r = folded
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lowerTrim(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
