// ABOUTME: Tests for TOML configuration loading
// ABOUTME: Validates defaults, overrides, validation, and round trips
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv(EnvDBPath, "")

	cfg, err := Load(filepath.Join(tmpDir, "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "moodlog", "mood.db"), cfg.DBPath)
	assert.Equal(t, "sqlite3", cfg.Driver)
	assert.Equal(t, 30, cfg.HistoryLimit)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "markdown", cfg.Journal.Format)
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvDBPath, "")

	configContent := `
db_path = "/data/mood.db"
driver = "sqlite"
history_limit = 10

[journal]
enabled = true
dir = "/data/journal"
format = "json"
`
	configPath := filepath.Join(tmpDir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644)) //nolint:gosec // Test file permissions

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/data/mood.db", cfg.DBPath)
	assert.Equal(t, "sqlite", cfg.Driver)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep defaults")
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "/data/journal", cfg.Journal.Dir)
	assert.Equal(t, "json", cfg.Journal.Format)
}

func TestLoadEnvOverride(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvDBPath, "/override/mood.db")

	cfg, err := Load(filepath.Join(tmpDir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "/override/mood.db", cfg.DBPath)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"driver":        `driver = "postgres"`,
		"format":        "[journal]\nformat = \"yaml\"",
		"history limit": `history_limit = -1`,
		"syntax":        `driver = `,
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644)) //nolint:gosec // Test file permissions

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv(EnvDBPath, "")
	path := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.DBPath = "/somewhere/mood.db"
	cfg.Journal.Enabled = true

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
