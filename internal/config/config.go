// Package config handles operator-level configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mooerslab/relabel/internal/naming"
)

// Config represents configuration stored in ~/.config/relabel/config.yml.
// Every field is optional; zero values fall back to built-in defaults.
type Config struct {
	Email     string            `yaml:"email,omitempty"`      // CrossRef polite-pool contact
	Words     int               `yaml:"words,omitempty"`      // Title content-word budget
	MaxPages  int               `yaml:"max_pages,omitempty"`  // Pages consulted for text clues
	StopWords []string          `yaml:"stop_words,omitempty"` // Extra stop words
	Acronyms  map[string]string `yaml:"acronyms,omitempty"`   // Extra canonical casings
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "relabel"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// LedgerFile is the rename-ledger database name.
	LedgerFile = "ledger.db"
)

// configCache caches the loaded config for the process lifetime.
var configCache *Config

// configHome returns the base config directory, respecting
// XDG_CONFIG_HOME and defaulting to ~/.config.
func configHome() string {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

// Path returns the path to the config file.
func Path() string {
	home := configHome()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

// LedgerPath returns the path to the rename-ledger database.
func LedgerPath() string {
	home := configHome()
	if home == "" {
		return ""
	}
	return filepath.Join(home, ConfigDir, LedgerFile)
}

// Load reads the configuration file. A missing file yields an empty
// config, not an error. The result is cached for the process lifetime.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	configCache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// Save writes the configuration file, creating the directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Tables returns the reference tables extended with the operator's
// extra stop words and acronym casings.
func (c *Config) Tables() naming.Tables {
	tables := naming.DefaultTables()
	if len(c.StopWords) > 0 {
		tables = tables.WithStopWords(c.StopWords...)
	}
	if len(c.Acronyms) > 0 {
		tables = tables.WithAcronyms(c.Acronyms)
	}
	return tables
}
