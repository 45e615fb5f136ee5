package crossref

import (
	"testing"

	"github.com/mooerslab/relabel/internal/bib"
)

func date(parts ...int) PartialDate {
	return PartialDate{DateParts: [][]int{parts}}
}

func TestParseWork(t *testing.T) {
	tests := []struct {
		name string
		work Work
		want bib.Metadata
	}{
		{
			name: "complete record",
			work: Work{
				DOI:            "10.1093/nar/gkaa1087",
				Title:          []string{"G-quadruplex folding topologies"},
				Author:         []Contributor{{Family: "Thompson", Given: "Jane"}},
				PublishedPrint: date(2021, 2, 12),
			},
			want: bib.Metadata{
				Author: "Thompson",
				Year:   "2021",
				Title:  "G-quadruplex folding topologies",
				DOI:    "10.1093/nar/gkaa1087",
				Source: bib.SourceCrossRef,
			},
		},
		{
			name: "print date preferred over online and issued",
			work: Work{
				PublishedPrint:  date(2020),
				PublishedOnline: date(2019),
				Issued:          date(2018),
			},
			want: bib.Metadata{Year: "2020", Source: bib.SourceCrossRef},
		},
		{
			name: "online date when print absent",
			work: Work{
				PublishedOnline: date(2019, 6),
				Issued:          date(2018),
			},
			want: bib.Metadata{Year: "2019", Source: bib.SourceCrossRef},
		},
		{
			name: "issued date when print and online absent",
			work: Work{Issued: date(2018)},
			want: bib.Metadata{Year: "2018", Source: bib.SourceCrossRef},
		},
		{
			name: "created date as last resort",
			work: Work{Created: date(2017)},
			want: bib.Metadata{Year: "2017", Source: bib.SourceCrossRef},
		},
		{
			name: "empty date-parts skipped",
			work: Work{
				PublishedPrint: PartialDate{DateParts: [][]int{{}}},
				Issued:         date(2016),
			},
			want: bib.Metadata{Year: "2016", Source: bib.SourceCrossRef},
		},
		{
			name: "free-text author name splits to last word",
			work: Work{Author: []Contributor{{Name: "Jane Q. Thompson"}}},
			want: bib.Metadata{Author: "Thompson", Source: bib.SourceCrossRef},
		},
		{
			name: "single-word corporate author kept whole",
			work: Work{Author: []Contributor{{Name: "UNESCO"}}},
			want: bib.Metadata{Author: "UNESCO", Source: bib.SourceCrossRef},
		},
		{
			name: "family preferred over name",
			work: Work{Author: []Contributor{{Family: "Garcia-Lopez", Name: "Something Else"}}},
			want: bib.Metadata{Author: "Garcia-Lopez", Source: bib.SourceCrossRef},
		},
		{
			name: "first author only",
			work: Work{Author: []Contributor{{Family: "First"}, {Family: "Second"}}},
			want: bib.Metadata{Author: "First", Source: bib.SourceCrossRef},
		},
		{
			name: "first title entry only",
			work: Work{Title: []string{"Primary Title", "Subtitle"}},
			want: bib.Metadata{Title: "Primary Title", Source: bib.SourceCrossRef},
		},
		{
			name: "empty record degrades to empty fields",
			work: Work{},
			want: bib.Metadata{Source: bib.SourceCrossRef},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseWork(tt.work)
			if got != tt.want {
				t.Errorf("ParseWork() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
