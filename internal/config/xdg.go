// ABOUTME: XDG Base Directory specification helpers
// ABOUTME: Resolves moodlog data and config locations with fallbacks
package config

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "moodlog"

// GetDataHome returns XDG_DATA_HOME or fallback to ~/.local/share
func GetDataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".local", "share")
}

// GetConfigHome returns XDG_CONFIG_HOME or fallback to ~/.config
func GetConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home := os.Getenv("HOME")
	return filepath.Join(home, ".config")
}

// DataDir is where moodlog keeps its database and journal.
func DataDir() string {
	return filepath.Join(GetDataHome(), AppName)
}

// DefaultPath is the config file location.
func DefaultPath() string {
	return filepath.Join(GetConfigHome(), AppName, "config.toml")
}
