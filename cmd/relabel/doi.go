package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mooerslab/relabel/internal/pdf"
	"github.com/mooerslab/relabel/internal/resolver"
	"github.com/mooerslab/relabel/internal/textmeta"
)

var doiCmd = &cobra.Command{
	Use:   "doi <pdf|text>",
	Short: "Extract a DOI from a PDF, a filename, or raw text",
	Long: `Extract a normalized DOI. If the argument is an existing PDF, its
embedded metadata, filename, and first pages are searched in that
order; otherwise the argument itself is scanned as text.`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

func init() {
	rootCmd.AddCommand(doiCmd)
}

func runDOI(cmd *cobra.Command, args []string) error {
	input := args[0]

	var doi string
	if info, err := os.Stat(input); err == nil && !info.IsDir() {
		doi = doiFromFile(input)
	} else {
		doi = textmeta.ExtractDOI(input)
	}

	if humanOutput {
		if doi == "" {
			outputHuman("no DOI found\n")
		} else {
			outputHuman("%s\n", doi)
		}
		return nil
	}
	return outputJSON(DOIResponse{Input: input, DOI: doi})
}

// doiFromFile searches a PDF the same way the resolver does, minus the
// remote lookup: embedded metadata fields, filename, then page text.
func doiFromFile(path string) string {
	reader := pdf.Reader{}
	info, _ := reader.DocInfo(path)

	for _, field := range []string{info.DOI, info.Subject, info.Keywords, info.Title} {
		if doi := textmeta.ExtractDOI(field); doi != "" {
			return doi
		}
	}
	if doi := textmeta.ExtractDOI(filepath.Base(path)); doi != "" {
		return doi
	}

	text, err := pdf.NewExtractor().Text(path, resolver.MaxPages)
	if err != nil {
		return ""
	}
	return textmeta.ExtractDOI(text)
}
