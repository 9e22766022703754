// Package config loads and saves the YAML configuration for calendario.
//
// Configuration only shapes the presentation (grid years, locale, listen
// address) and the events a fresh day screen starts with. Events added at
// runtime are never written here.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/calendario/internal/dates"
	"github.com/pfrederiksen/calendario/internal/event"
)

const (
	DefaultListen       = "127.0.0.1:8080"
	DefaultFirstYear    = 2023
	DefaultLastYear     = 2030
	DefaultScrollToYear = 2030
	DefaultMaxScreens   = 256
	DefaultLogLevel     = "info"
)

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the web UI.
	Listen string `yaml:"listen" json:"listen"`

	// Locale selects month names, e.g. "it_IT" or "en_US".
	Locale string `yaml:"locale" json:"locale"`

	// FirstYear and LastYear bound the scrollable grid, inclusive.
	FirstYear int `yaml:"first_year" json:"first_year"`
	LastYear  int `yaml:"last_year" json:"last_year"`

	// ScrollToYear is the year the grid opens on.
	ScrollToYear int `yaml:"scroll_to_year" json:"scroll_to_year"`

	// MaxScreens caps how many day screens the web UI keeps open at once.
	MaxScreens int `yaml:"max_screens" json:"max_screens"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// SeedEvents are the events every new day screen starts with.
	SeedEvents []event.Seed `yaml:"seed_events" json:"seed_events"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:       DefaultListen,
		Locale:       string(dates.DefaultLocale),
		FirstYear:    DefaultFirstYear,
		LastYear:     DefaultLastYear,
		ScrollToYear: DefaultScrollToYear,
		MaxScreens:   DefaultMaxScreens,
		LogLevel:     DefaultLogLevel,
		SeedEvents:   event.DefaultSeed(),
	}
}

// Normalize fills in missing values so partially written files still work.
// An explicitly empty seed_events list is kept empty.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Locale == "" || !dates.SupportedLocale(dates.Locale(c.Locale)) {
		c.Locale = string(dates.DefaultLocale)
	}
	if c.FirstYear <= 0 {
		c.FirstYear = DefaultFirstYear
	}
	if c.LastYear < c.FirstYear {
		c.LastYear = c.FirstYear
	}
	if c.ScrollToYear < c.FirstYear || c.ScrollToYear > c.LastYear {
		c.ScrollToYear = c.LastYear
	}
	if c.MaxScreens <= 0 {
		c.MaxScreens = DefaultMaxScreens
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.SeedEvents == nil {
		c.SeedEvents = event.DefaultSeed()
	}
}

// Load reads configuration from a YAML file.
//
// An empty path or a file that does not exist yields DefaultConfig; nothing
// is written to disk.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(err, "reading config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically via a temp file and rename, leaving the
// file readable only by its owner.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}

	tmp, err := os.CreateTemp(dir, ".calendario-config-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return errors.Wrap(err, "setting permissions")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "replacing config")
	}

	return nil
}

// DisplayLocale returns the configured locale for month names.
func (c *Config) DisplayLocale() dates.Locale {
	return dates.Locale(c.Locale)
}
