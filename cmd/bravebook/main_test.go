package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/zodiacbuddy/internal/bravebook"
	"github.com/udisondev/zodiacbuddy/internal/db"
	"github.com/udisondev/zodiacbuddy/internal/testutil"
)

// writeConfig writes a config selecting the given source and returns its path.
func writeConfig(t *testing.T, kind, path string) string {
	t.Helper()

	cfgPath := filepath.Join(t.TempDir(), "bravebook.yaml")
	body := fmt.Sprintf("log_level: error\nsource:\n  kind: %s\n  path: %q\n  auto_migrate: true\n", kind, path)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))
	return cfgPath
}

func yamlConfig(t *testing.T) string {
	t.Helper()

	return writeConfig(t, "yaml", testutil.WriteExport(t, testutil.BraveSheets(t)))
}

func TestRun_Books(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", yamlConfig(t), "books"}, &out))

	assert.Contains(t, out.String(), "Book of Skyfire I")
	assert.Contains(t, out.String(), "DUNGEONS")
}

func TestRun_Show(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", yamlConfig(t), "show", "1"}, &out))

	var book bravebook.Book
	require.NoError(t, json.Unmarshal(out.Bytes(), &book))
	assert.Equal(t, "Book of Skyfire I", book.Name)
	require.Len(t, book.Leves, 1)
	assert.Equal(t, "Rurubana", book.Leves[0].Issuer)
}

func TestRun_ShowMissing(t *testing.T) {
	err := run(context.Background(), []string{"-config", yamlConfig(t), "show", "2"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, bravebook.ErrBookNotFound)
}

func TestRun_Search(t *testing.T) {
	cfg := yamlConfig(t)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfg, "search", "galvanth"}, &out))
	assert.Contains(t, out.String(), "Galvanth the Dominator")
	assert.Contains(t, out.String(), "dungeon")

	out.Reset()
	require.NoError(t, run(context.Background(), []string{"-config", cfg, "search", "qwxz"}, &out))
	assert.Contains(t, out.String(), `no targets match "qwxz"`)
}

func TestRun_SQLiteSource(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "sheets.db")
	ctx := context.Background()

	src, err := db.OpenSQLite(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, src.Migrate(ctx))
	require.NoError(t, src.Import(ctx, testutil.BraveSheets(t)))
	require.NoError(t, src.Close())

	var out bytes.Buffer
	require.NoError(t, run(ctx, []string{"-config", writeConfig(t, "sqlite", dbPath), "books"}, &out))
	assert.Contains(t, out.String(), "Book of Skyfire I")
}

func TestRun_Usage(t *testing.T) {
	cfg := yamlConfig(t)

	tests := [][]string{
		{"-config", cfg, "fly"},
		{"-config", cfg, "show"},
		{"-config", cfg, "search"},
		{"-nope"},
	}
	for _, args := range tests {
		err := run(context.Background(), args, &bytes.Buffer{})
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	err := run(context.Background(), []string{"-config", writeConfig(t, "csv", "x"), "books"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLogLevel(in), in)
	}
}
