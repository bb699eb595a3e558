package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, Default(), p)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("show_fps = {{{"), 0o644))

	p := Load(path)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.toml")

	want := Prefs{
		ShowFPS:      true,
		ShowMemStats: true,
		GridVisible:  false,
		WindowWidth:  1920,
		WindowHeight: 1080,
		TargetFPS:    144,
		Debug:        true,
	}
	require.NoError(t, Save(path, want))
	assert.Equal(t, want, Load(path))
}

func TestLoadPartialFileKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte("target_fps = 30\n"), 0o644))

	p := Load(path)
	assert.Equal(t, int32(30), p.TargetFPS)
	assert.Equal(t, Default().WindowWidth, p.WindowWidth)
	assert.True(t, p.GridVisible)
}
