package crossref

import (
	"strconv"
	"strings"

	"github.com/mooerslab/relabel/internal/bib"
)

// ParseWork reduces a work record to its bibliographic triple,
// degrading field by field. Date resolution order: print date, online
// date, generic issued date, record-creation date. Author resolution:
// first list entry, preferring the structured family name, then the
// last word of a free-text name, treating a single-word name as a
// corporate author.
func ParseWork(w Work) bib.Metadata {
	md := bib.Metadata{
		DOI:    w.DOI,
		Source: bib.SourceCrossRef,
	}

	if len(w.Title) > 0 {
		md.Title = strings.TrimSpace(w.Title[0])
	}

	for _, d := range []PartialDate{w.PublishedPrint, w.PublishedOnline, w.Issued, w.Created} {
		if y := d.Year(); y > 0 {
			md.Year = strconv.Itoa(y)
			break
		}
	}

	if len(w.Author) > 0 {
		a := w.Author[0]
		if a.Family != "" {
			md.Author = a.Family
		} else if fields := strings.Fields(a.Name); len(fields) > 0 {
			md.Author = fields[len(fields)-1]
		}
	}

	return md
}
