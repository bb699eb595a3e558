package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "cubeclicker.json")
	want := saveData{
		TotalClicks: 7,
		Cubes: []savedCube{
			{Position: [3]float32{1, 0.25, -2}, Clicks: 3},
			{Position: [3]float32{0, 0.25, 0}, Clicks: 4},
		},
	}
	require.NoError(t, writeSaveTo(path, want))
	assert.Equal(t, want, loadSaveFrom(path))
}

func TestLoadSaveMissingFileStartsFresh(t *testing.T) {
	got := loadSaveFrom(filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, saveData{}, got)
}

func TestLoadSaveCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubeclicker.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	assert.Equal(t, saveData{}, loadSaveFrom(path))
}
