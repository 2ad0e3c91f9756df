// ABOUTME: TOML configuration file loading and saving
// ABOUTME: Applies defaults and the MOODLOG_DB_PATH environment override
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvDBPath overrides db_path when set.
const EnvDBPath = "MOODLOG_DB_PATH"

// Config is the moodlog configuration file.
type Config struct {
	DBPath       string  `toml:"db_path"`
	Driver       string  `toml:"driver"`
	HistoryLimit int     `toml:"history_limit"`
	LogLevel     string  `toml:"log_level"`
	Journal      Journal `toml:"journal"`
}

// Journal controls the optional daily journal files.
type Journal struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	Format  string `toml:"format"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DBPath:       filepath.Join(DataDir(), "mood.db"),
		Driver:       "sqlite3",
		HistoryLimit: 30,
		LogLevel:     "warn",
		Journal: Journal{
			Enabled: false,
			Dir:     filepath.Join(DataDir(), "journal"),
			Format:  "markdown",
		},
	}
}

// Load reads the config at path on top of the defaults. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if dbPath := os.Getenv(EnvDBPath); dbPath != "" {
		cfg.DBPath = dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Driver {
	case "sqlite3", "sqlite":
	default:
		return fmt.Errorf("invalid driver %q (want sqlite3 or sqlite)", c.Driver)
	}
	switch c.Journal.Format {
	case "markdown", "json":
	default:
		return fmt.Errorf("invalid journal format %q (want markdown or json)", c.Journal.Format)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	return nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // Standard directory permissions for user config
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644) //nolint:gosec // Config is not secret
	if err != nil {
		return err
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
