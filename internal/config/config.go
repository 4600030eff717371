// Package config loads the daybook configuration file. The file is
// optional: a missing file yields the defaults, and a first run writes a
// starter config so the user has something to edit.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/daybookapp/daybook/internal/domain"
)

// Config is the top-level application configuration.
type Config struct {
	// DBPath is where the planner database lives. The DAYBOOK_DB
	// environment variable overrides it.
	DBPath string `yaml:"db_path"`

	// DefaultColor is the color token assigned to new events.
	DefaultColor string `yaml:"default_color"`

	// DayStart/DayEnd seed the visible hour window on first run. Once the
	// planner has persisted its own range, that wins.
	DayStart int `yaml:"day_start"`
	DayEnd   int `yaml:"day_end"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		DefaultColor: domain.DefaultColor,
		DayStart:     8,
		DayEnd:       20,
	}
}

// Normalize fills in missing or invalid values so a partially filled config
// still behaves.
func (c *Config) Normalize() {
	if c.DefaultColor == "" {
		c.DefaultColor = domain.DefaultColor
	}
	r := domain.TimeRange{Start: c.DayStart, End: c.DayEnd}
	if !r.Valid() {
		c.DayStart = 8
		c.DayEnd = 20
	}
}

// SeedRange returns the configured hour window.
func (c *Config) SeedRange() domain.TimeRange {
	return domain.TimeRange{Start: c.DayStart, End: c.DayEnd}
}

// DefaultPath returns ~/.daybook/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".daybook", "config.yaml"), nil
}

// Load reads the config at path. A missing file creates a default config
// there and returns the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if werr := Save(path, cfg); werr != nil {
			return nil, werr
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
