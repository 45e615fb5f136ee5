package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mooerslab/relabel/internal/config"
	"github.com/mooerslab/relabel/internal/rename"
	"github.com/mooerslab/relabel/internal/storage"
)

var (
	renameDryRun   bool
	renameEmail    string
	renameWords    int
	renameNoLedger bool
)

var renameCmd = &cobra.Command{
	Use:   "rename [directory]",
	Short: "Rename every PDF in a directory",
	Long: `Rename every PDF in a directory (default: current directory) to
{Surname}{Year}{TitleWords}.pdf. Name collisions within a run get a
numeric suffix. Files whose metadata cannot be resolved are left
untouched and reported with the missing fields.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().BoolVarP(&renameDryRun, "dry-run", "n", false, "Preview renames without touching files")
	renameCmd.Flags().StringVar(&renameEmail, "email", "", "Contact email for the CrossRef polite pool")
	renameCmd.Flags().IntVar(&renameWords, "words", 0, "Title content-word budget (default 6)")
	renameCmd.Flags().BoolVar(&renameNoLedger, "no-ledger", false, "Do not record renames in the ledger")
	rootCmd.AddCommand(renameCmd)
}

// RenameResponse is the JSON output of the rename command.
type RenameResponse struct {
	Dir     string          `json:"dir"`
	DryRun  bool            `json:"dry_run,omitempty"`
	Plan    []rename.Entry  `json:"plan,omitempty"`
	Results []rename.Result `json:"results,omitempty"`
	Summary rename.Summary  `json:"summary"`
}

func runRename(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err == nil {
		dir = abs
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		exitWithError(ExitDataError, "not a directory: %s", dir)
	}

	cfg := loadConfig()
	runner := buildRunner(cfg, renameEmail, renameWords)

	entries, err := runner.Plan(cmd.Context(), dir)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if renameDryRun {
		resp := RenameResponse{Dir: dir, DryRun: true, Plan: entries, Summary: planSummary(entries)}
		if humanOutput {
			printPlanHuman(entries, resp.Summary)
			return nil
		}
		return outputJSON(resp)
	}

	results, summary := rename.Apply(dir, entries)
	recordRun(dir, results)

	if humanOutput {
		printResultsHuman(results, summary)
		return nil
	}
	return outputJSON(RenameResponse{Dir: dir, Results: results, Summary: summary})
}

func planSummary(entries []rename.Entry) rename.Summary {
	sum := rename.Summary{Total: len(entries)}
	for _, e := range entries {
		if e.NewName != "" {
			sum.Ready++
		} else {
			sum.NeedsReview++
		}
	}
	return sum
}

// recordRun appends the applied renames to the ledger. Ledger trouble
// never fails the run; the renames already happened.
func recordRun(dir string, results []rename.Result) {
	if renameNoLedger {
		return
	}

	runID := time.Now().UTC().Format(time.RFC3339Nano)
	now := time.Now().UTC()
	var records []storage.Record
	for _, r := range results {
		if r.Status != rename.StatusRenamed || r.NewName == r.Original {
			continue
		}
		records = append(records, storage.Record{
			RunID:     runID,
			Dir:       dir,
			Original:  r.Original,
			NewName:   r.NewName,
			DOI:       r.DOI,
			Source:    string(r.Source),
			RenamedAt: now,
		})
	}
	if len(records) == 0 {
		return
	}

	ledger, err := storage.Open(config.LedgerPath())
	if err != nil {
		warn("ledger unavailable: %v", err)
		return
	}
	defer ledger.Close()

	if err := ledger.Append(records); err != nil {
		warn("recording renames: %v", err)
	}
}

func printPlanHuman(entries []rename.Entry, sum rename.Summary) {
	for _, e := range entries {
		if e.NewName != "" {
			outputHuman("%s\n  -> %s\n", e.Original, e.NewName)
		} else {
			outputHuman("%s\n  *** NEEDS REVIEW (missing: %s)\n", e.Original, strings.Join(e.Missing, ", "))
		}
	}
	outputHuman("\nReady to rename: %d   |   Need manual review: %d\n", sum.Ready, sum.NeedsReview)
	outputHuman("(dry-run mode: no files were renamed)\n")
}

func printResultsHuman(results []rename.Result, sum rename.Summary) {
	for _, r := range results {
		switch r.Status {
		case rename.StatusRenamed:
			outputHuman("%s\n  -> %s\n", r.Original, r.NewName)
		case rename.StatusSkipExists:
			outputHuman("%s\n  SKIP (target exists): %s\n", r.Original, r.NewName)
		case rename.StatusError:
			outputHuman("%s\n  ERROR: %s\n", r.Original, r.Error)
		default:
			outputHuman("%s\n  *** NEEDS REVIEW (missing: %s)\n", r.Original, strings.Join(r.Missing, ", "))
		}
	}
	outputHuman("\nRenamed %d file(s). Needs review: %d. Errors: %d\n", sum.Renamed, sum.NeedsReview, sum.Errors)
}
