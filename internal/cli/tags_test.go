// ABOUTME: Unit tests for the tags and config commands
// ABOUTME: Tests vocabulary listing, seeding, and config file handling
package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/moodlog/internal/config"
)

func TestTagsCommand(t *testing.T) {
	t.Run("lists both vocabularies", func(t *testing.T) {
		setupEnv(t)
		_, err := runCLI(t, "", "add", "-V", "1", "-A", "1", "-e", "calm", "-f", "tea")
		require.NoError(t, err)

		output, err := runCLI(t, "", "tags")
		require.NoError(t, err)
		assert.Contains(t, output, "emotions:\n  calm\n")
		assert.Contains(t, output, "factors:\n  tea\n")
	})

	t.Run("counts", func(t *testing.T) {
		setupEnv(t)
		_, err := runCLI(t, "", "add", "-V", "1", "-A", "1", "-f", "tea")
		require.NoError(t, err)
		_, err = runCLI(t, "", "add", "-V", "1", "-A", "1", "-f", "tea;walk")
		require.NoError(t, err)

		output, err := runCLI(t, "", "tags", "factors", "--counts")
		require.NoError(t, err)
		assert.Regexp(t, `tea\s+2`, output)
		assert.Regexp(t, `walk\s+1`, output)
		assert.NotContains(t, output, "emotions:")
	})

	t.Run("add seeds a vocabulary", func(t *testing.T) {
		setupEnv(t)

		output, err := runCLI(t, "", "tags", "add", "emotion", "Grateful", "proud;grateful")
		require.NoError(t, err)
		assert.Contains(t, output, "2 emotions ready")

		output, err = runCLI(t, "", "tags", "emotions")
		require.NoError(t, err)
		assert.Contains(t, output, "  grateful\n  proud\n")
	})

	t.Run("rejects unknown vocabulary", func(t *testing.T) {
		setupEnv(t)

		_, err := runCLI(t, "", "tags", "places")
		assert.Error(t, err)
	})
}

func TestConfigCommand(t *testing.T) {
	t.Run("init then show", func(t *testing.T) {
		dir := setupEnv(t)

		output, err := runCLI(t, "", "config", "init")
		require.NoError(t, err)
		assert.Contains(t, output, config.DefaultPath())

		_, err = runCLI(t, "", "config", "init")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		_, err = runCLI(t, "", "config", "init", "--force")
		require.NoError(t, err)

		output, err = runCLI(t, "", "config", "show")
		require.NoError(t, err)
		assert.Contains(t, output, `db_path = "`+filepath.Join(dir, "data", "moodlog", "mood.db")+`"`)
		assert.Contains(t, output, `driver = "sqlite3"`)
		assert.Contains(t, output, "[journal]")
	})

	t.Run("show applies db flag", func(t *testing.T) {
		setupEnv(t)

		output, err := runCLI(t, "", "config", "show", "--db", "/tmp/other.db")
		require.NoError(t, err)
		assert.Contains(t, output, `db_path = "/tmp/other.db"`)
	})
}
