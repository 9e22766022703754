package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pfrederiksen/calendario/internal/event"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FirstYear != 2023 || cfg.LastYear != 2030 {
		t.Errorf("years = %d..%d, want 2023..2030", cfg.FirstYear, cfg.LastYear)
	}
	if cfg.ScrollToYear != 2030 {
		t.Errorf("ScrollToYear = %d, want 2030", cfg.ScrollToYear)
	}
	if cfg.Locale != "it_IT" {
		t.Errorf("Locale = %q, want it_IT", cfg.Locale)
	}
	if len(cfg.SeedEvents) != 3 {
		t.Errorf("SeedEvents = %v, want 3 entries", cfg.SeedEvents)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(t *testing.T, c *Config)
	}{
		{
			name: "zero config gets defaults",
			in:   Config{},
			check: func(t *testing.T, c *Config) {
				if c.Listen != DefaultListen || c.MaxScreens != DefaultMaxScreens || c.LogLevel != "info" {
					t.Errorf("unexpected defaults: %+v", c)
				}
				if len(c.SeedEvents) != 3 {
					t.Errorf("SeedEvents = %v", c.SeedEvents)
				}
			},
		},
		{
			name: "unknown locale falls back",
			in:   Config{Locale: "xx_XX"},
			check: func(t *testing.T, c *Config) {
				if c.Locale != "it_IT" {
					t.Errorf("Locale = %q, want it_IT", c.Locale)
				}
			},
		},
		{
			name: "inverted years collapse to one",
			in:   Config{FirstYear: 2025, LastYear: 2020},
			check: func(t *testing.T, c *Config) {
				if c.LastYear != 2025 || c.ScrollToYear != 2025 {
					t.Errorf("years = %d..%d scroll %d", c.FirstYear, c.LastYear, c.ScrollToYear)
				}
			},
		},
		{
			name: "scroll target clamped to range",
			in:   Config{FirstYear: 2023, LastYear: 2026, ScrollToYear: 2030},
			check: func(t *testing.T, c *Config) {
				if c.ScrollToYear != 2026 {
					t.Errorf("ScrollToYear = %d, want 2026", c.ScrollToYear)
				}
			},
		},
		{
			name: "explicit empty seed kept",
			in:   Config{SeedEvents: []event.Seed{}},
			check: func(t *testing.T, c *Config) {
				if len(c.SeedEvents) != 0 {
					t.Errorf("SeedEvents = %v, want empty", c.SeedEvents)
				}
			},
		},
		{
			name: "log level lowercased",
			in:   Config{LogLevel: " DEBUG "},
			check: func(t *testing.T, c *Config) {
				if c.LogLevel != "debug" {
					t.Errorf("LogLevel = %q", c.LogLevel)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.Normalize()
			tt.check(t, &c)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nope.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != DefaultListen {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Load() should not create a config file")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.FirstYear != DefaultFirstYear {
		t.Errorf("FirstYear = %d", cfg.FirstYear)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `listen: ":9000"
locale: en_US
first_year: 2024
last_year: 2025
seed_events:
  - time: "09:00"
    description: Standup
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Listen != ":9000" || cfg.Locale != "en_US" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ScrollToYear != 2025 {
		t.Errorf("ScrollToYear = %d, want 2025", cfg.ScrollToYear)
	}
	if len(cfg.SeedEvents) != 1 || cfg.SeedEvents[0].Description != "Standup" {
		t.Errorf("SeedEvents = %+v", cfg.SeedEvents)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("listen: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Listen = ":7070"
	cfg.SeedEvents = []event.Seed{{Time: "12:00", Description: "Pranzo"}}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("perm = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Listen != ":7070" || loaded.SeedEvents[0].Description != "Pranzo" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestSave_Errors(t *testing.T) {
	if err := Save("", DefaultConfig()); err == nil {
		t.Error("expected error for empty path")
	}
	if err := Save(filepath.Join(t.TempDir(), "c.yaml"), nil); err == nil {
		t.Error("expected error for nil config")
	}
}
