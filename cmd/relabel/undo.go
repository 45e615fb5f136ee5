package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mooerslab/relabel/internal/config"
	"github.com/mooerslab/relabel/internal/storage"
)

var undoDryRun bool

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the most recent rename run",
	Long: `Revert the most recent rename run recorded in the ledger, restoring
the original filenames. Files that were moved or whose original name is
now taken are reported and left alone.`,
	RunE: runUndo,
}

func init() {
	undoCmd.Flags().BoolVarP(&undoDryRun, "dry-run", "n", false, "Preview without touching files")
	rootCmd.AddCommand(undoCmd)
}

// UndoEntry reports the outcome for one reverted rename.
type UndoEntry struct {
	Dir      string `json:"dir"`
	From     string `json:"from"`
	To       string `json:"to"`
	Status   string `json:"status"` // reverted, missing, target_exists, error
	ErrorMsg string `json:"error,omitempty"`
}

// UndoResponse is the JSON output of the undo command.
type UndoResponse struct {
	RunID    string      `json:"run_id,omitempty"`
	DryRun   bool        `json:"dry_run,omitempty"`
	Entries  []UndoEntry `json:"entries"`
	Reverted int         `json:"reverted"`
}

func runUndo(cmd *cobra.Command, args []string) error {
	ledger, err := storage.Open(config.LedgerPath())
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	defer ledger.Close()

	runID, records, err := ledger.LastRun()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	if runID == "" {
		if humanOutput {
			outputHuman("nothing to undo\n")
			return nil
		}
		return outputJSON(UndoResponse{})
	}

	resp := UndoResponse{RunID: runID, DryRun: undoDryRun}
	allReverted := true
	for _, r := range records {
		entry := UndoEntry{Dir: r.Dir, From: r.NewName, To: r.Original}
		newPath := filepath.Join(r.Dir, r.NewName)
		oldPath := filepath.Join(r.Dir, r.Original)

		switch {
		case undoDryRun:
			entry.Status = "reverted"
			resp.Reverted++
		case !fileExists(newPath):
			entry.Status = "missing"
			allReverted = false
		case fileExists(oldPath):
			entry.Status = "target_exists"
			allReverted = false
		default:
			if err := os.Rename(newPath, oldPath); err != nil {
				entry.Status = "error"
				entry.ErrorMsg = err.Error()
				allReverted = false
			} else {
				entry.Status = "reverted"
				resp.Reverted++
			}
		}
		resp.Entries = append(resp.Entries, entry)
	}

	// Only a fully reverted run leaves the ledger; partial failures
	// keep their records so a later undo can retry.
	if !undoDryRun && allReverted {
		if err := ledger.DeleteRun(runID); err != nil {
			warn("clearing undone run: %v", err)
		}
	}

	if humanOutput {
		for _, e := range resp.Entries {
			outputHuman("%s: %s -> %s\n", e.Status, e.From, e.To)
		}
		outputHuman("Reverted %d rename(s)\n", resp.Reverted)
		return nil
	}
	return outputJSON(resp)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
