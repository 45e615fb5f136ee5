// Package pdf supplies document text and embedded metadata to the
// resolver. Text extraction prefers the pdftotext CLI (poppler), which
// handles multi-column academic layouts far better than in-process
// extraction, and falls back to the ledongthuc/pdf reader.
package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxPages bounds extraction to the front matter, where the
// bibliographic clues live.
const DefaultMaxPages = 2

// pdftotextTimeout bounds a single CLI invocation.
const pdftotextTimeout = 30 * time.Second

// Extractor extracts plain text from the first pages of a PDF.
type Extractor struct {
	pdftotext string // path to the pdftotext binary, empty if unavailable
}

// NewExtractor creates an Extractor, probing PATH for pdftotext once.
func NewExtractor() *Extractor {
	path, _ := exec.LookPath("pdftotext")
	return &Extractor{pdftotext: path}
}

// Text returns text from the first maxPages pages. An empty string with
// a nil error means the document has no extractable text.
func (e *Extractor) Text(path string, maxPages int) (string, error) {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	if e.pdftotext != "" {
		if text, err := e.runPdftotext(path, maxPages); err == nil && strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	return extractNative(path, maxPages)
}

// runPdftotext shells out to poppler's pdftotext.
func (e *Extractor) runPdftotext(path string, maxPages int) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), pdftotextTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, e.pdftotext,
		"-layout", "-l", strconv.Itoa(maxPages), path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

// extractNative extracts text in-process. The rsc.io/pdf-derived reader
// panics on some malformed files, so the panic is converted to an error.
func extractNative(path string, maxPages int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("reading pdf text: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	if maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var builder strings.Builder
	for i := 1; i <= maxPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
