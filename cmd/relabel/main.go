// Package main provides the relabel CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relabel",
	Short: "Rename academic PDFs from their bibliographic metadata",
	Long: `relabel renames academic PDF files to {Surname}{Year}{TitleWords}.pdf,
e.g. Thompson2022LAMMPSFlexibleSimulationToolParticleBased.pdf.

Metadata is resolved through a three-tier fallback: CrossRef lookup via
a DOI found in the document, the PDF's own embedded metadata, then
heuristic parsing of the first two pages. Files whose metadata cannot
be resolved are flagged for manual review instead of being renamed.

All commands output JSON by default for easy scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
