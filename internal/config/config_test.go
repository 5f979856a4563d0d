package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, 3.0, cfg.Tuning.EstablishingShotDuration)
	assert.Equal(t, 2.0, cfg.Tuning.ActionShotDefaultDuration)
	assert.Equal(t, 2.5, cfg.Tuning.WordsPerSecond)
	assert.Equal(t, 1280, cfg.Render.Width)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directorkit.toml")
	body := `
workers = 3

[render]
fps = 30

[tuning]
words_per_second = 3.0

[tuning.dialogue_close_lens]
focal_length = 100.0
aperture = 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 30, cfg.Render.FPS)
	assert.Equal(t, 720, cfg.Render.Height)
	assert.Equal(t, 3.0, cfg.Tuning.WordsPerSecond)
	assert.Equal(t, 100.0, cfg.Tuning.DialogueCloseLens.FocalLength)
	assert.Equal(t, 3.0, cfg.Tuning.EstablishingShotDuration)
	assert.Equal(t, "persuade", cfg.Tuning.FallbackTactic)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("workers = = 1"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
