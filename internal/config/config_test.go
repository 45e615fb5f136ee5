package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setConfigHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	ResetCache()
	t.Cleanup(ResetCache)
	return home
}

func TestLoadMissingFile(t *testing.T) {
	setConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Email != "" || cfg.Words != 0 || cfg.MaxPages != 0 {
		t.Errorf("missing file should yield empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	home := setConfigHome(t)

	cfg := &Config{
		Email:     "archivist@example.edu",
		Words:     8,
		MaxPages:  3,
		StopWords: []string{"via"},
		Acronyms:  map[string]string{"mri": "MRI"},
	}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}

	wantPath := filepath.Join(home, ConfigDir, ConfigFile)
	if Path() != wantPath {
		t.Errorf("Path() = %q, want %q", Path(), wantPath)
	}
	if _, err := os.Stat(wantPath); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	ResetCache()
	loaded, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Email != cfg.Email || loaded.Words != cfg.Words || loaded.MaxPages != cfg.MaxPages {
		t.Errorf("loaded = %+v, want %+v", loaded, cfg)
	}
	if len(loaded.StopWords) != 1 || loaded.StopWords[0] != "via" {
		t.Errorf("StopWords = %v", loaded.StopWords)
	}
	if loaded.Acronyms["mri"] != "MRI" {
		t.Errorf("Acronyms = %v", loaded.Acronyms)
	}
}

func TestLoadCaches(t *testing.T) {
	home := setConfigHome(t)

	cfg := &Config{Email: "first@example.edu"}
	if err := cfg.Save(); err != nil {
		t.Fatal(err)
	}
	first, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	// Changing the file on disk must not affect the cached result.
	if err := os.WriteFile(filepath.Join(home, ConfigDir, ConfigFile),
		[]byte("email: second@example.edu\n"), 0644); err != nil {
		t.Fatal(err)
	}
	again, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if again.Email != first.Email {
		t.Errorf("cache bypassed: %q != %q", again.Email, first.Email)
	}

	ResetCache()
	fresh, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Email != "second@example.edu" {
		t.Errorf("after ResetCache, Email = %q", fresh.Email)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	home := setConfigHome(t)
	dir := filepath.Join(home, ConfigDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("email: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLedgerPath(t *testing.T) {
	home := setConfigHome(t)
	want := filepath.Join(home, ConfigDir, LedgerFile)
	if LedgerPath() != want {
		t.Errorf("LedgerPath() = %q, want %q", LedgerPath(), want)
	}
}

func TestTablesMergesExtras(t *testing.T) {
	cfg := &Config{
		StopWords: []string{"via"},
		Acronyms:  map[string]string{"nmr": "NMR"},
	}
	tables := cfg.Tables()

	got := tables.TitleToCamel("Structure determination via NMR spectroscopy", 6)
	if got != "StructureDeterminationNMRSpectroscopy" {
		t.Errorf("TitleToCamel = %q", got)
	}
}
