package naming

import (
	"regexp"
	"strings"
	"testing"
)

func TestTitleToCamel(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name  string
		title string
		n     int
		want  string
	}{
		{
			name:  "empty title",
			title: "",
			n:     6,
			want:  "",
		},
		{
			name:  "whitespace only",
			title: "   ",
			n:     6,
			want:  "",
		},
		{
			name:  "simple title",
			title: "Flexible simulation tool",
			n:     6,
			want:  "FlexibleSimulationTool",
		},
		{
			name:  "stop words skipped",
			title: "A Study of the Effects of X on Y",
			n:     6,
			want:  "StudyEffectsXY",
		},
		{
			name:  "six word budget",
			title: "The structure of large ribosomal subunits reveals ancient catalytic machinery inside",
			n:     6,
			want:  "StructureLargeRibosomalSubunitsRevealsAncient",
		},
		{
			name:  "single letter hyphen prefix merges",
			title: "G-quadruplex structures",
			n:     6,
			want:  "GQuadruplexStructures",
		},
		{
			name:  "multi letter hyphen parts split",
			title: "Particle-Based simulation",
			n:     6,
			want:  "ParticleBasedSimulation",
		},
		{
			name:  "acronym canonical casing",
			title: "rna folding with nmr restraints",
			n:     6,
			want:  "RNAFoldingNMRRestraints",
		},
		{
			name:  "acronym casing independent of input casing",
			title: "Rna and DNA hybrids",
			n:     6,
			want:  "RNADNAHybrids",
		},
		{
			name:  "digit word matches table entry",
			title: "3d reconstruction of viruses",
			n:     6,
			want:  "3DReconstructionViruses",
		},
		{
			name:  "punctuation stripped",
			title: "LAMMPS: a flexible simulation tool (particle-based)",
			n:     6,
			want:  "LAMMPSFlexibleSimulationToolParticleBased",
		},
		{
			name:  "em dash and quotes",
			title: "“Folding” — a new view",
			n:     6,
			want:  "FoldingNewView",
		},
		{
			name:  "title entirely stop words falls back",
			title: "Of the and",
			n:     6,
			want:  "OfTheAnd",
		},
		{
			name:  "shorter than budget returns all",
			title: "Protein folding",
			n:     6,
			want:  "ProteinFolding",
		},
		{
			name:  "budget of two",
			title: "Flexible simulation tool for particles",
			n:     2,
			want:  "FlexibleSimulation",
		},
		{
			name:  "accented letters folded",
			title: "Résolution of protéines",
			n:     6,
			want:  "ResolutionProteines",
		},
		{
			name:  "consecutive punctuation",
			title: "Folding:: — , (at last)",
			n:     6,
			want:  "FoldingLast",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.TitleToCamel(tt.title, tt.n)
			if got != tt.want {
				t.Errorf("TitleToCamel(%q, %d) = %q, want %q", tt.title, tt.n, got, tt.want)
			}
		})
	}
}

func TestTitleToCamelFragmentBudget(t *testing.T) {
	tables := DefaultTables()

	// With at least six content words available, exactly six fragments
	// survive and every fragment starts with an uppercase letter or digit.
	got := tables.TitleToCamel("A Study of the Effects of Xrays on Yeast Growth in Space Today", 6)
	fragments := regexp.MustCompile(`[A-Z0-9][a-z0-9]*`).FindAllString(got, -1)
	if len(fragments) != 6 {
		t.Errorf("got %d fragments (%q), want 6", len(fragments), got)
	}
	for _, stop := range []string{"A", "Of", "The", "On", "In"} {
		for _, f := range fragments {
			if f == stop {
				t.Errorf("stop word %q survived as a fragment in %q", stop, got)
			}
		}
	}
}

func TestTitleToCamelOutputIsASCIIAlnum(t *testing.T) {
	tables := DefaultTables()
	titles := []string{
		"G-quadruplex structures in human télomères",
		"Складна назва with mixed scripts",
		"1,000 ways: to—fail (or not)?",
	}
	for _, title := range titles {
		got := tables.TitleToCamel(title, 6)
		for _, r := range got {
			isAlnum := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			if !isAlnum {
				t.Errorf("TitleToCamel(%q) = %q contains non-alphanumeric %q", title, got, r)
			}
		}
	}
}

func TestTitleToCamelIdempotentInput(t *testing.T) {
	tables := DefaultTables()
	// Re-running on its own output must not crash; no fixed-point claim.
	first := tables.TitleToCamel("G-quadruplex structures in RNA", 6)
	second := tables.TitleToCamel(first, 6)
	if second == "" {
		t.Errorf("second pass on %q produced empty output", first)
	}
}

func TestTablesCustomization(t *testing.T) {
	tables := DefaultTables().
		WithStopWords("toward").
		WithAcronyms(map[string]string{"alphafold": "AlphaFold"})

	got := tables.TitleToCamel("Toward alphafold accuracy", 6)
	if got != "AlphaFoldAccuracy" {
		t.Errorf("got %q, want AlphaFoldAccuracy", got)
	}

	// The defaults must be unaffected by customization.
	if strings.Contains(DefaultTables().TitleToCamel("Toward alphafold accuracy", 6), "AlphaFold") {
		t.Error("customization leaked into DefaultTables")
	}
}
