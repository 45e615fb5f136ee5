// Package resolver derives a document's bibliographic triple through a
// three-tier fallback: remote CrossRef lookup, embedded PDF metadata,
// then heuristic parsing of first-page text. Tiers are atomic: a tier
// that fails or produces an incomplete triple is discarded whole, never
// merged with the next tier's result.
package resolver

import (
	"context"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mooerslab/relabel/internal/bib"
	"github.com/mooerslab/relabel/internal/crossref"
	"github.com/mooerslab/relabel/internal/naming"
	"github.com/mooerslab/relabel/internal/textmeta"
)

// MaxPages is how many leading pages are consulted for text clues.
const MaxPages = 2

// Lookup is the remote bibliographic lookup collaborator.
// *crossref.Client satisfies it.
type Lookup interface {
	Work(ctx context.Context, doi string) (*crossref.Work, error)
}

// MetadataReader reads a document's embedded descriptive fields.
// pdf.Reader satisfies it.
type MetadataReader interface {
	DocInfo(path string) (bib.DocInfo, error)
}

// TextExtractor supplies plain text from a document's leading pages.
// *pdf.Extractor satisfies it.
type TextExtractor interface {
	Text(path string, maxPages int) (string, error)
}

// tier identifies one state of the resolution state machine.
type tier int

const (
	tierCrossRef tier = iota
	tierEmbedded
	tierText
	tierNone
)

// Resolver runs the tier state machine over injected collaborators.
type Resolver struct {
	lookup   Lookup
	meta     MetadataReader
	text     TextExtractor
	maxPages int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxPages overrides how many leading pages are consulted for text
// clues. Values <= 0 keep the default.
func WithMaxPages(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxPages = n
		}
	}
}

// New creates a Resolver. Any collaborator may be nil, in which case
// its tier is skipped.
func New(lookup Lookup, meta MetadataReader, text TextExtractor, opts ...Option) *Resolver {
	r := &Resolver{lookup: lookup, meta: meta, text: text, maxPages: MaxPages}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve derives the bibliographic triple for the document at path.
// It never fails for business reasons: collaborator errors demote to
// the next tier, and an all-empty Metadata with SourceNone is the
// normal terminal state when nothing usable was found.
func (r *Resolver) Resolve(ctx context.Context, path string) bib.Metadata {
	info := r.docInfo(path)
	text := r.pageText(path)
	doi := findDOI(path, info, text)

	for t := tierCrossRef; t < tierNone; t++ {
		switch t {
		case tierCrossRef:
			if doi == "" {
				continue
			}
			if md, ok := r.lookupTier(ctx, doi); ok {
				return md
			}
		case tierEmbedded:
			if md, ok := embeddedTier(info, doi); ok {
				return md
			}
		case tierText:
			if strings.TrimSpace(text) == "" {
				continue
			}
			// Last tier: partial results are accepted.
			return textTier(text, doi)
		}
	}

	return bib.Metadata{DOI: doi, Source: bib.SourceNone}
}

func (r *Resolver) docInfo(path string) bib.DocInfo {
	if r.meta == nil {
		return bib.DocInfo{}
	}
	info, err := r.meta.DocInfo(path)
	if err != nil {
		return bib.DocInfo{}
	}
	return info
}

func (r *Resolver) pageText(path string) string {
	if r.text == nil {
		return ""
	}
	text, err := r.text.Text(path, r.maxPages)
	if err != nil {
		return ""
	}
	return text
}

// findDOI locates a DOI for the lookup tier: embedded metadata fields
// first, then the filename encoding, then page text.
func findDOI(path string, info bib.DocInfo, text string) string {
	for _, field := range []string{info.DOI, info.Subject, info.Keywords, info.Title} {
		if field == "" {
			continue
		}
		if doi := textmeta.ExtractDOI(field); doi != "" {
			return doi
		}
	}
	if doi := textmeta.ExtractDOI(filepath.Base(path)); doi != "" {
		return doi
	}
	return textmeta.ExtractDOI(text)
}

// lookupTier performs the remote lookup. Lookup failures and incomplete
// remote records both fail the tier.
func (r *Resolver) lookupTier(ctx context.Context, doi string) (bib.Metadata, bool) {
	if r.lookup == nil {
		return bib.Metadata{}, false
	}
	work, err := r.lookup.Work(ctx, doi)
	if err != nil || work == nil {
		return bib.Metadata{}, false
	}

	md := crossref.ParseWork(*work)
	if md.DOI == "" {
		md.DOI = doi
	}
	if !md.Complete() {
		return bib.Metadata{}, false
	}
	md.Source = bib.SourceCrossRef
	return md, true
}

// placeholderTitles are generator artifacts, not real titles.
var placeholderTitles = map[string]bool{
	"untitled":       true,
	"microsoft word": true,
}

// embeddedTier builds the triple from the Info dictionary. All three
// fields must resolve for the tier to succeed.
func embeddedTier(info bib.DocInfo, doi string) (bib.Metadata, bool) {
	md := bib.Metadata{
		Author: naming.FirstAuthorLast(info.Author),
		Year:   creationYear(info.CreationDate),
		Title:  embeddedTitle(info.Title),
		DOI:    doi,
		Source: bib.SourceEmbedded,
	}
	if !md.Complete() {
		return bib.Metadata{}, false
	}
	return md, true
}

func embeddedTitle(title string) string {
	title = strings.TrimSpace(title)
	if len(title) <= 3 || placeholderTitles[strings.ToLower(title)] {
		return ""
	}
	return title
}

// creationYearPattern matches a year inside a raw PDF date string such
// as "D:20220115093000Z" (no word boundaries available there).
var creationYearPattern = regexp.MustCompile(`19[89]\d|20\d\d`)

func creationYear(date string) string {
	m := creationYearPattern.FindString(date)
	if m == "" {
		return ""
	}
	y, err := strconv.Atoi(m)
	if err != nil || y < textmeta.MinYear || y > time.Now().Year()+1 {
		return ""
	}
	return m
}

// textTier runs the heuristic extractors over page text.
func textTier(text, doi string) bib.Metadata {
	title := textmeta.ExtractTitle(text)
	return bib.Metadata{
		Author: textmeta.ExtractAuthor(text, title),
		Year:   textmeta.ExtractYear(text),
		Title:  title,
		DOI:    doi,
		Source: bib.SourceText,
	}
}
