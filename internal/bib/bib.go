// Package bib defines the core domain types for resolved bibliographic metadata.
package bib

// Source records which resolution tier supplied a Metadata value.
type Source string

const (
	// SourceCrossRef means the triple came from a CrossRef works lookup.
	SourceCrossRef Source = "crossref"
	// SourceEmbedded means the triple came from the PDF's own Info dictionary.
	SourceEmbedded Source = "embedded"
	// SourceText means the fields were parsed heuristically from page text.
	SourceText Source = "text"
	// SourceNone means no tier produced usable data; the document needs
	// manual review.
	SourceNone Source = "none"
)

// Metadata is the resolved bibliographic triple for one document.
// It is produced once by the resolver and never mutated afterwards.
// A Metadata with empty fields and SourceNone is a normal terminal
// state, not an error.
type Metadata struct {
	Author string `json:"author,omitempty"` // First author's surname
	Year   string `json:"year,omitempty"`   // 4-digit publication year
	Title  string `json:"title,omitempty"`
	DOI    string `json:"doi,omitempty"` // Diagnostic only; not part of the triple
	Source Source `json:"source"`
}

// Complete reports whether all three filename fields are present.
func (m Metadata) Complete() bool {
	return m.Author != "" && m.Year != "" && m.Title != ""
}

// Missing lists the absent triple fields, in a fixed order.
func (m Metadata) Missing() []string {
	var missing []string
	if m.Author == "" {
		missing = append(missing, "author")
	}
	if m.Year == "" {
		missing = append(missing, "year")
	}
	if m.Title == "" {
		missing = append(missing, "title")
	}
	return missing
}

// DocInfo holds a document's embedded descriptive fields as read from
// its Info dictionary. Any subset may be empty.
type DocInfo struct {
	Title        string
	Author       string
	CreationDate string // Raw PDF date string, e.g. "D:20220115093000Z"
	Subject      string
	Keywords     string
	DOI          string // Raw value of a /doi or /DOI entry, if present
}
