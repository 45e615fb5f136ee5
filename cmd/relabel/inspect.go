package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mooerslab/relabel/internal/bib"
	"github.com/mooerslab/relabel/internal/crossref"
	"github.com/mooerslab/relabel/internal/naming"
	"github.com/mooerslab/relabel/internal/pdf"
	"github.com/mooerslab/relabel/internal/resolver"
)

var (
	inspectEmail string
	inspectWords int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Show resolved metadata and the proposed name for a single PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectEmail, "email", "", "Contact email for the CrossRef polite pool")
	inspectCmd.Flags().IntVar(&inspectWords, "words", 0, "Title content-word budget (default 6)")
	rootCmd.AddCommand(inspectCmd)
}

// InspectResponse is the JSON output of the inspect command.
type InspectResponse struct {
	Path     string       `json:"path"`
	Metadata bib.Metadata `json:"metadata"`
	NewName  string       `json:"new_name,omitempty"`
	Missing  []string     `json:"missing,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		exitWithError(ExitDataError, "cannot read %s: %v", path, err)
	}

	cfg := loadConfig()
	email := cfg.Email
	if inspectEmail != "" {
		email = inspectEmail
	}
	words := cfg.Words
	if inspectWords > 0 {
		words = inspectWords
	}
	if words <= 0 {
		words = naming.DefaultWords
	}

	client := crossref.NewClient(crossref.WithEmail(email))
	res := resolver.New(client, pdf.Reader{}, pdf.NewExtractor(),
		resolver.WithMaxPages(cfg.MaxPages))
	md := res.Resolve(cmd.Context(), path)

	resp := InspectResponse{Path: path, Metadata: md}
	if md.Complete() {
		tables := cfg.Tables()
		resp.NewName = naming.Sanitize(md.Author) + md.Year + tables.TitleToCamel(md.Title, words) + ".pdf"
	} else {
		resp.Missing = md.Missing()
	}

	if humanOutput {
		outputHuman("source:  %s\n", md.Source)
		outputHuman("author:  %s\n", md.Author)
		outputHuman("year:    %s\n", md.Year)
		outputHuman("title:   %s\n", md.Title)
		if md.DOI != "" {
			outputHuman("doi:     %s\n", md.DOI)
		}
		if resp.NewName != "" {
			outputHuman("-> %s\n", resp.NewName)
		} else {
			outputHuman("*** NEEDS REVIEW (missing: %s)\n", strings.Join(resp.Missing, ", "))
		}
		return nil
	}
	return outputJSON(resp)
}
