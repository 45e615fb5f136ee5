package rename

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mooerslab/relabel/internal/bib"
	"github.com/mooerslab/relabel/internal/naming"
)

// mapResolver resolves by base filename from a fixed table.
type mapResolver struct {
	byName map[string]bib.Metadata
}

func (m *mapResolver) Resolve(_ context.Context, path string) bib.Metadata {
	md, ok := m.byName[filepath.Base(path)]
	if !ok {
		return bib.Metadata{Source: bib.SourceNone}
	}
	return md
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.pdf")
	touch(t, dir, "b.pdf")
	touch(t, dir, "notes.txt")

	res := &mapResolver{byName: map[string]bib.Metadata{
		"a.pdf": {
			Author: "Thompson",
			Year:   "2022",
			Title:  "LAMMPS: a flexible simulation tool, particle-based",
			Source: bib.SourceCrossRef,
		},
		"b.pdf": {
			Author: "Garcia",
			Title:  "Missing a year",
			Source: bib.SourceText,
		},
	}}

	runner := NewRunner(res, naming.DefaultTables(), 0)
	entries, err := runner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (non-PDFs must be ignored)", len(entries))
	}

	if entries[0].NewName != "Thompson2022LAMMPSFlexibleSimulationToolParticleBased.pdf" {
		t.Errorf("entries[0].NewName = %q", entries[0].NewName)
	}
	if len(entries[0].Missing) != 0 {
		t.Errorf("entries[0].Missing = %v", entries[0].Missing)
	}

	if entries[1].NewName != "" {
		t.Errorf("entries[1].NewName = %q, want empty for incomplete triple", entries[1].NewName)
	}
	if len(entries[1].Missing) != 1 || entries[1].Missing[0] != "year" {
		t.Errorf("entries[1].Missing = %v, want [year]", entries[1].Missing)
	}
}

func TestPlanDeduplicatesCollisions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "x.pdf")
	touch(t, dir, "y.pdf")
	touch(t, dir, "z.pdf")

	same := bib.Metadata{Author: "Chen", Year: "2020", Title: "Repeated title", Source: bib.SourceEmbedded}
	res := &mapResolver{byName: map[string]bib.Metadata{
		"x.pdf": same, "y.pdf": same, "z.pdf": same,
	}}

	runner := NewRunner(res, naming.DefaultTables(), 6)
	entries, err := runner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"Chen2020RepeatedTitle.pdf",
		"Chen2020RepeatedTitle2.pdf",
		"Chen2020RepeatedTitle3.pdf",
	}
	for i, w := range want {
		if entries[i].NewName != w {
			t.Errorf("entries[%d].NewName = %q, want %q", i, entries[i].NewName, w)
		}
	}
}

func TestPlanSanitizesSurname(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "p.pdf")

	res := &mapResolver{byName: map[string]bib.Metadata{
		"p.pdf": {Author: "Garcia-López", Year: "2019", Title: "Short title", Source: bib.SourceCrossRef},
	}}

	runner := NewRunner(res, naming.DefaultTables(), 6)
	entries, err := runner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].NewName != "GarciaLopez2019ShortTitle.pdf" {
		t.Errorf("NewName = %q", entries[0].NewName)
	}
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "old.pdf")
	touch(t, dir, "review.pdf")
	touch(t, dir, "collide.pdf")
	touch(t, dir, "Taken2020Name.pdf") // rename target that already exists

	entries := []Entry{
		{Original: "old.pdf", NewName: "Fresh2021Name.pdf"},
		{Original: "review.pdf", Missing: []string{"author"}},
		{Original: "collide.pdf", NewName: "Taken2020Name.pdf"},
	}

	results, sum := Apply(dir, entries)

	if results[0].Status != StatusRenamed {
		t.Errorf("results[0].Status = %q", results[0].Status)
	}
	if _, err := os.Stat(filepath.Join(dir, "Fresh2021Name.pdf")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "old.pdf")); !os.IsNotExist(err) {
		t.Error("old.pdf still present after rename")
	}

	if results[1].Status != StatusNeedsReview {
		t.Errorf("results[1].Status = %q", results[1].Status)
	}
	if results[2].Status != StatusSkipExists {
		t.Errorf("results[2].Status = %q", results[2].Status)
	}
	if _, err := os.Stat(filepath.Join(dir, "collide.pdf")); err != nil {
		t.Error("collide.pdf must be left alone when target exists")
	}

	if sum.Renamed != 1 || sum.NeedsReview != 1 || sum.Errors != 1 || sum.Total != 3 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestPlanEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	runner := NewRunner(&mapResolver{}, naming.DefaultTables(), 6)
	entries, err := runner.Plan(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestPlanMissingDirectory(t *testing.T) {
	runner := NewRunner(&mapResolver{}, naming.DefaultTables(), 6)
	if _, err := runner.Plan(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
