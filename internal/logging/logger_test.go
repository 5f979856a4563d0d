package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/directorkit/internal/config"
)

func TestInitWritesAndRotatesFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "directorkit.log")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), 0o644))

	cleanup, err := Init(config.LogConfig{Level: "debug", Path: path})
	require.NoError(t, err)

	slog.Debug("Planned scene", "scene", 1)
	cleanup()

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Planned scene")
	assert.Contains(t, string(body), "scene=1")

	old, err := os.ReadFile(path + ".old")
	require.NoError(t, err)
	assert.Equal(t, "previous run\n", string(old))
}

func TestInitWithoutFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cleanup, err := Init(config.LogConfig{Level: "WARN"})
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, slog.Default().Enabled(t.Context(), slog.LevelInfo))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}
