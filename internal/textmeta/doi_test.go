package textmeta

import "testing"

func TestExtractDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty",
			text: "",
			want: "",
		},
		{
			name: "no doi",
			text: "just some text 10.5 percent",
			want: "",
		},
		{
			name: "doi prefix",
			text: "doi:10.1093/nar/gkaa1087 published by OUP",
			want: "10.1093/nar/gkaa1087",
		},
		{
			name: "doi prefix with space",
			text: "DOI: 10.1093/nar/gkaa1087",
			want: "10.1093/nar/gkaa1087",
		},
		{
			name: "doi org url",
			text: "available at https://doi.org/10.1038/s41586-020-2649-2 online",
			want: "10.1038/s41586-020-2649-2",
		},
		{
			name: "dx doi org url",
			text: "see http://dx.doi.org/10.1021/acs.jctc.9b00999",
			want: "10.1021/acs.jctc.9b00999",
		},
		{
			name: "filename encoding",
			text: "10.1515_bmc.2011.016.pdf",
			want: "10.1515/bmc.2011.016",
		},
		{
			name: "bare doi in body text",
			text: "This article (10.1261/rna.078915.121) shows",
			want: "10.1261/rna.078915.121",
		},
		{
			name: "trailing period stripped",
			text: "doi:10.1093/nar/gkaa1087.",
			want: "10.1093/nar/gkaa1087",
		},
		{
			name: "trailing bracket stripped",
			text: "[doi: 10.1093/nar/gkaa1087]",
			want: "10.1093/nar/gkaa1087",
		},
		{
			name: "too short rejected",
			text: "doi: 10.1093/x",
			want: "",
		},
		{
			name: "prefix outranks earlier bare doi",
			text: "cites 10.1000/ref.entry.1 ... doi:10.1093/nar/gkaa1087",
			want: "10.1093/nar/gkaa1087",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDOI(tt.text)
			if got != tt.want {
				t.Errorf("ExtractDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
