package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mooerslab/relabel/internal/config"
	"github.com/mooerslab/relabel/internal/storage"
)

var logLimit int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the rename history",
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVar(&logLimit, "limit", 50, "Maximum records to show (0 for all)")
	rootCmd.AddCommand(logCmd)
}

// LogResponse is the JSON output of the log command.
type LogResponse struct {
	Records []storage.Record `json:"records"`
}

func runLog(cmd *cobra.Command, args []string) error {
	ledger, err := storage.Open(config.LedgerPath())
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	defer ledger.Close()

	records, err := ledger.History(logLimit)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		for _, r := range records {
			outputHuman("%s  %s -> %s  (%s, %s)\n",
				r.RenamedAt.Format(time.DateOnly), r.Original, r.NewName, r.Source, r.Dir)
		}
		outputHuman("%d record(s)\n", len(records))
		return nil
	}
	return outputJSON(LogResponse{Records: records})
}
