// Package crossref implements the CrossRef works API client and the
// parser that reduces a work record to a bibliographic triple.
package crossref

// Work is a loosely structured CrossRef work record. No field is
// guaranteed to be present; consumers must degrade field by field.
type Work struct {
	DOI             string        `json:"DOI"`
	Title           []string      `json:"title"`
	Author          []Contributor `json:"author"`
	PublishedPrint  PartialDate   `json:"published-print"`
	PublishedOnline PartialDate   `json:"published-online"`
	Issued          PartialDate   `json:"issued"`
	Created         PartialDate   `json:"created"`
}

// Contributor is one entry in a work's author list. Personal authors
// carry Family/Given; corporate authors carry only a free-text Name.
type Contributor struct {
	Family string `json:"family"`
	Given  string `json:"given"`
	Name   string `json:"name"`
}

// PartialDate is CrossRef's date-parts encoding: [[year, month, day]]
// with any suffix absent.
type PartialDate struct {
	DateParts [][]int `json:"date-parts"`
}

// Year returns the year component, or 0 when absent.
func (d PartialDate) Year() int {
	if len(d.DateParts) == 0 || len(d.DateParts[0]) == 0 {
		return 0
	}
	return d.DateParts[0][0]
}

// worksEnvelope is the REST response wrapper around a work record.
type worksEnvelope struct {
	Status  string `json:"status"`
	Message Work   `json:"message"`
}
