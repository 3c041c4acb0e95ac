package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quoteserver/internal/config"
	"github.com/mrlokans/quoteserver/internal/database"
	"github.com/mrlokans/quoteserver/internal/database/quotes"
	"github.com/mrlokans/quoteserver/internal/errkind"
)

func writeQuotesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quotes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func countQuotes(t *testing.T, dbURL string) int64 {
	t.Helper()
	db, err := database.NewDatabase(dbURL)
	require.NoError(t, err)
	defer db.Close()

	count, err := quotes.NewRepository(db.DB).Count(context.Background())
	require.NoError(t, err)
	return count
}

func TestImportCommand_ParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cmd := NewImportCommand()
		require.NoError(t, cmd.ParseFlags([]string{"-file", "quotes.json"}))

		assert.Equal(t, "quotes.json", cmd.FilePath)
		assert.Equal(t, config.DefaultDatabaseURL, cmd.DatabaseURL)
		assert.False(t, cmd.DryRun)
		assert.False(t, cmd.Verbose)
	})

	t.Run("positional file", func(t *testing.T) {
		cmd := NewImportCommand()
		require.NoError(t, cmd.ParseFlags([]string{"-db", "sqlite:x.db", "-dry-run", "quotes.json"}))

		assert.Equal(t, "quotes.json", cmd.FilePath)
		assert.Equal(t, "sqlite:x.db", cmd.DatabaseURL)
		assert.True(t, cmd.DryRun)
	})

	t.Run("missing file", func(t *testing.T) {
		cmd := NewImportCommand()
		assert.Error(t, cmd.ParseFlags([]string{"-verbose"}))
	})
}

func TestImportCommand_Run(t *testing.T) {
	source := writeQuotesFile(t, `[
		{"id": 1, "quote": "Q1", "author": "A1"},
		{"id": 2, "quote": "", "author": "A2"},
		{"id": 3, "quote": "Q3", "author": ""}
	]`)

	t.Run("imports and reports", func(t *testing.T) {
		dbURL := "sqlite:" + filepath.Join(t.TempDir(), "db", "quotes.db")
		var out bytes.Buffer
		cmd := &ImportCommand{FilePath: source, DatabaseURL: dbURL, Verbose: true, out: &out}

		require.NoError(t, cmd.Run(context.Background()))

		assert.Contains(t, out.String(), "Found 3 quotes")
		assert.Contains(t, out.String(), "2 inserted, 0 already present, 1 failed")
		assert.Contains(t, out.String(), "(id 2) invalid")
		assert.Equal(t, int64(2), countQuotes(t, dbURL))

		out.Reset()
		require.NoError(t, cmd.Run(context.Background()))
		assert.Contains(t, out.String(), "0 inserted, 2 already present, 1 failed")
	})

	t.Run("dry run leaves database alone", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "dry.db")
		var out bytes.Buffer
		cmd := &ImportCommand{FilePath: source, DatabaseURL: "sqlite:" + dbPath, DryRun: true, out: &out}

		require.NoError(t, cmd.Run(context.Background()))

		assert.Contains(t, out.String(), "Dry run complete")
		_, err := os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("unreadable source", func(t *testing.T) {
		cmd := &ImportCommand{
			FilePath:    filepath.Join(t.TempDir(), "missing.json"),
			DatabaseURL: "sqlite::memory:",
			out:         &bytes.Buffer{},
		}

		err := cmd.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, errkind.SourceRead, errkind.KindOf(err))
	})
}

func TestParseServeFlags(t *testing.T) {
	flags, err := ParseServeFlags([]string{"-init-from", "quotes.json", "-db", "sqlite:q.db", "-port", "8081"})
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.URL = "sqlite:default.db"
	cfg.Port = 3000
	flags.Apply(cfg)

	assert.Equal(t, "quotes.json", cfg.InitFrom)
	assert.Equal(t, "sqlite:q.db", cfg.Database.URL)
	assert.Equal(t, int32(8081), cfg.Port)
}

func TestServeFlags_ApplyKeepsUnsetValues(t *testing.T) {
	flags, err := ParseServeFlags(nil)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.URL = "sqlite:default.db"
	cfg.Port = 3000
	cfg.InitFrom = "env.json"
	flags.Apply(cfg)

	assert.Equal(t, "env.json", cfg.InitFrom)
	assert.Equal(t, "sqlite:default.db", cfg.Database.URL)
	assert.Equal(t, int32(3000), cfg.Port)
}
