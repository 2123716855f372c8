package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.Currency != "₹" {
		t.Errorf("currency = %q", cfg.General.Currency)
	}
	if cfg.General.DefaultMonth != "all" {
		t.Errorf("default month = %q", cfg.General.DefaultMonth)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("theme = %q", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists should be false before Save")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.Currency = "$"
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Error("Exists should be true after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.Currency != "$" || got.Appearance.Theme != "tokyo-night" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "kharch") {
		t.Errorf("DataDir = %q", got)
	}

	cfg.General.DataDir = "/custom"
	if got := DataDir(cfg); got != "/custom" {
		t.Errorf("DataDir override = %q", got)
	}
	if got := DBPath(cfg); got != filepath.Join("/custom", "kharch.db") {
		t.Errorf("DBPath = %q", got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, "kharch"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "kharch", "config.toml"), []byte("not = [toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load should report a parse error")
	}
}
