package pdf

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mooerslab/relabel/internal/bib"
)

// Reader reads a document's embedded Info dictionary.
type Reader struct{}

// DocInfo returns the descriptive fields from the PDF's Info
// dictionary. Any subset may be empty; a document without an Info
// dictionary yields zero-value fields and no error.
func (Reader) DocInfo(path string) (info bib.DocInfo, err error) {
	defer func() {
		if r := recover(); r != nil {
			info, err = bib.DocInfo{}, fmt.Errorf("reading pdf info: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return bib.DocInfo{}, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	dict := r.Trailer().Key("Info")
	if dict.IsNull() {
		return bib.DocInfo{}, nil
	}

	info.Title = stringValue(dict.Key("Title"))
	info.Author = stringValue(dict.Key("Author"))
	info.CreationDate = stringValue(dict.Key("CreationDate"))
	info.Subject = stringValue(dict.Key("Subject"))
	info.Keywords = stringValue(dict.Key("Keywords"))

	// Some publishers stash the DOI under a custom key.
	info.DOI = stringValue(dict.Key("doi"))
	if info.DOI == "" {
		info.DOI = stringValue(dict.Key("DOI"))
	}

	return info, nil
}

// stringValue extracts a trimmed text value, tolerating non-string
// entries in sloppy Info dictionaries.
func stringValue(v pdf.Value) string {
	if v.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(v.Text())
}
