package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenekit/config"
	"scenekit/scene"
)

func newTestGame(t *testing.T) (*game, *scene.Scene) {
	t.Helper()
	g, err := newGame(config.Default())
	require.NoError(t, err)
	scn := scene.New()
	require.NoError(t, g.start(scn))
	return g, scn
}

func TestSpawnBatchAddsExactlyBatchSize(t *testing.T) {
	g, scn := newTestGame(t)

	before := scn.CountByGroup(groupShapes)
	require.NoError(t, g.spawnBatch(scn))
	assert.Equal(t, before+spawnBatch, scn.CountByGroup(groupShapes))

	// Every spawned shape carries a plugin body.
	for _, e := range scn.Entities() {
		if e.Group == groupShapes {
			assert.NotNil(t, e.Body2D)
		}
	}
}

func TestClearRemovesAllSpawnedShapes(t *testing.T) {
	g, scn := newTestGame(t)
	require.NoError(t, g.spawnBatch(scn))
	require.NotZero(t, scn.CountByGroup(groupShapes))

	g.clear(scn)
	assert.Zero(t, scn.CountByGroup(groupShapes))
}

func TestReapDropsShapesBelowKillLine(t *testing.T) {
	g, scn := newTestGame(t)
	require.NoError(t, g.spawnBatch(scn))

	victims := 0
	for _, e := range scn.Entities() {
		if e.Group == groupShapes && victims < 3 {
			e.Transform.Position.Y = killY - 1
			victims++
		}
	}
	g.reap(scn)
	assert.Equal(t, spawnBatch-victims, scn.CountByGroup(groupShapes))
}
