package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mooerslab/relabel/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get or set configuration values",
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current configuration",
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (email, words, max_pages)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if humanOutput {
		outputHuman("email:     %s\n", cfg.Email)
		outputHuman("words:     %d\n", cfg.Words)
		outputHuman("max_pages: %d\n", cfg.MaxPages)
		outputHuman("path:      %s\n", config.Path())
		return nil
	}
	return outputJSON(cfg)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg := loadConfig()
	switch key {
	case "email":
		cfg.Email = value
	case "words":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			exitWithError(ExitDataError, "words must be a positive integer")
		}
		cfg.Words = n
	case "max_pages":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			exitWithError(ExitDataError, "max_pages must be a positive integer")
		}
		cfg.MaxPages = n
	default:
		exitWithError(ExitDataError, "unknown config key: %s", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	if humanOutput {
		outputHuman("%s = %s\n", key, value)
		return nil
	}
	return outputJSON(StatusResponse{Status: "updated", Key: key, Value: value})
}
