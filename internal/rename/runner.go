// Package rename plans and applies standardized filenames for
// directories of academic PDFs.
package rename

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mooerslab/relabel/internal/bib"
	"github.com/mooerslab/relabel/internal/naming"
)

// Entry records the planned outcome for a single PDF.
type Entry struct {
	Original string     `json:"original"`
	Author   string     `json:"author,omitempty"`
	Year     string     `json:"year,omitempty"`
	Title    string     `json:"title,omitempty"`
	DOI      string     `json:"doi,omitempty"`
	Source   bib.Source `json:"source"`
	NewName  string     `json:"new_name,omitempty"`
	Missing  []string   `json:"missing,omitempty"`
}

// Status values for applied entries.
const (
	StatusRenamed     = "renamed"
	StatusNeedsReview = "needs_review"
	StatusSkipExists  = "skipped_target_exists"
	StatusError       = "error"
)

// Result is an Entry plus the outcome of applying it.
type Result struct {
	Entry
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Summary aggregates a run.
type Summary struct {
	Total       int `json:"total"`
	Ready       int `json:"ready"`
	NeedsReview int `json:"needs_review"`
	Renamed     int `json:"renamed"`
	Errors      int `json:"errors"`
}

// Resolver resolves one document's bibliographic triple.
// *resolver.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, path string) bib.Metadata
}

// Runner plans new names for every PDF in a directory.
type Runner struct {
	resolver Resolver
	tables   naming.Tables
	words    int
}

// NewRunner creates a Runner. words <= 0 selects the default
// content-word budget.
func NewRunner(res Resolver, tables naming.Tables, words int) *Runner {
	if words <= 0 {
		words = naming.DefaultWords
	}
	return &Runner{resolver: res, tables: tables, words: words}
}

// Plan resolves every PDF in dir and proposes new names, deduplicating
// collisions with a numeric suffix. It does not touch the filesystem.
func (r *Runner) Plan(ctx context.Context, dir string) ([]Entry, error) {
	names, err := listPDFs(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	seen := make(map[string]int)
	for _, name := range names {
		md := r.resolver.Resolve(ctx, filepath.Join(dir, name))
		entry := Entry{
			Original: name,
			Author:   md.Author,
			Year:     md.Year,
			Title:    md.Title,
			DOI:      md.DOI,
			Source:   md.Source,
		}
		if md.Complete() {
			entry.NewName = uniqueName(r.newName(md), seen)
		} else {
			entry.Missing = md.Missing()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// newName builds {Surname}{Year}{CamelTitle}.pdf.
func (r *Runner) newName(md bib.Metadata) string {
	return naming.Sanitize(md.Author) + md.Year + r.tables.TitleToCamel(md.Title, r.words) + ".pdf"
}

// uniqueName appends a numeric suffix to names already proposed in this
// run: the second "X.pdf" becomes "X2.pdf", the third "X3.pdf".
func uniqueName(name string, seen map[string]int) string {
	seen[name]++
	if seen[name] == 1 {
		return name
	}
	return fmt.Sprintf("%s%d.pdf", strings.TrimSuffix(name, ".pdf"), seen[name])
}

// Apply performs the planned renames in dir. Entries without a proposed
// name are reported as needing review; existing targets are skipped
// rather than overwritten.
func Apply(dir string, entries []Entry) ([]Result, Summary) {
	results := make([]Result, 0, len(entries))
	var sum Summary
	sum.Total = len(entries)

	for _, entry := range entries {
		res := Result{Entry: entry}
		switch {
		case entry.NewName == "":
			res.Status = StatusNeedsReview
			sum.NeedsReview++
		case entry.NewName == entry.Original:
			res.Status = StatusRenamed
			sum.Ready++
			sum.Renamed++
		default:
			sum.Ready++
			oldPath := filepath.Join(dir, entry.Original)
			newPath := filepath.Join(dir, entry.NewName)
			if _, err := os.Stat(newPath); err == nil {
				res.Status = StatusSkipExists
				sum.Errors++
			} else if err := os.Rename(oldPath, newPath); err != nil {
				res.Status = StatusError
				res.Error = err.Error()
				sum.Errors++
			} else {
				res.Status = StatusRenamed
				sum.Renamed++
			}
		}
		results = append(results, res)
	}
	return results, sum
}

// listPDFs returns the names of all *.pdf files in dir, sorted.
func listPDFs(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(de.Name()), ".pdf") {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
