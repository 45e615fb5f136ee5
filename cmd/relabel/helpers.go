package main

import (
	"github.com/mooerslab/relabel/internal/config"
	"github.com/mooerslab/relabel/internal/crossref"
	"github.com/mooerslab/relabel/internal/pdf"
	"github.com/mooerslab/relabel/internal/rename"
	"github.com/mooerslab/relabel/internal/resolver"
)

// buildRunner wires the resolver and its collaborators from config and
// command-line overrides. flagEmail and flagWords override the config
// file when non-zero.
func buildRunner(cfg *config.Config, flagEmail string, flagWords int) *rename.Runner {
	email := cfg.Email
	if flagEmail != "" {
		email = flagEmail
	}
	words := cfg.Words
	if flagWords > 0 {
		words = flagWords
	}

	client := crossref.NewClient(crossref.WithEmail(email))
	res := resolver.New(client, pdf.Reader{}, pdf.NewExtractor(),
		resolver.WithMaxPages(cfg.MaxPages))
	return rename.NewRunner(res, cfg.Tables(), words)
}

// loadConfig loads the config file or exits on a malformed one.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}
