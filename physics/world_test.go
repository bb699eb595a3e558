package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenekit/collider"
	"scenekit/primitive"
)

const dt float32 = 1.0 / 60

func mustShape(t *testing.T, p primitive.Type3D, size rl.Vector3) *collider.Shape {
	t.Helper()
	s, err := collider.For3D(p, size)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func TestDynamicBodyFallsUnderGravity(t *testing.T) {
	w := NewWorld()
	b := NewBody(rl.NewVector3(0, 10, 0), 1, false)
	w.Add(b)

	for i := 0; i < 30; i++ {
		w.Step(dt)
	}
	assert.Less(t, b.Position.Y, float32(10))
	assert.Negative(t, b.Velocity.Y)
}

func TestStaticBodyNeverMoves(t *testing.T) {
	w := NewWorld()
	b := NewBody(rl.NewVector3(0, 1, 0), 1, true)
	b.SetShape(mustShape(t, primitive.Cube, rl.NewVector3(1, 1, 1)))
	w.Add(b)

	for i := 0; i < 60; i++ {
		w.Step(dt)
	}
	assert.Equal(t, rl.NewVector3(0, 1, 0), b.Position)
	assert.Equal(t, rl.Vector3{}, b.Velocity)
}

func TestCubeComesToRestOnStaticPlane(t *testing.T) {
	w := NewWorld()

	ground := NewBody(rl.NewVector3(0, 0, 0), 1, true)
	ground.SetShape(mustShape(t, primitive.Plane, rl.NewVector3(10, 0, 10)))
	w.Add(ground)

	cube := NewBody(rl.NewVector3(0, 2, 0), 1, false)
	cube.SetShape(mustShape(t, primitive.Cube, rl.NewVector3(0.5, 0.5, 0.5)))
	w.Add(cube)

	for i := 0; i < 300; i++ {
		w.Step(dt)
	}
	// Resting on the plane's slab: bottom face on the surface, give or take
	// one integration step of sink.
	assert.InDelta(t, 0.3, cube.Position.Y, 0.05)
	assert.Zero(t, cube.Velocity.Y)
}

func TestShapelessBodyFallsThrough(t *testing.T) {
	w := NewWorld()

	ground := NewBody(rl.NewVector3(0, 0, 0), 1, true)
	ground.SetShape(mustShape(t, primitive.Plane, rl.NewVector3(10, 0, 10)))
	w.Add(ground)

	ghost := NewBody(rl.NewVector3(0, 1, 0), 1, false)
	w.Add(ghost)

	for i := 0; i < 300; i++ {
		w.Step(dt)
	}
	assert.Less(t, ghost.Position.Y, float32(-1))
}

func TestSeparationSplitsCorrectionByMass(t *testing.T) {
	w := NewWorld()
	w.Gravity = rl.Vector3{}

	light := NewBody(rl.NewVector3(-0.4, 0, 0), 1, false)
	light.SetShape(mustShape(t, primitive.Cube, rl.NewVector3(1, 1, 1)))
	heavy := NewBody(rl.NewVector3(0.4, 0, 0), 3, false)
	heavy.SetShape(mustShape(t, primitive.Cube, rl.NewVector3(1, 1, 1)))
	w.Add(light)
	w.Add(heavy)

	w.Step(dt)

	// Overlap was 0.2 on X; the light body absorbs the larger share.
	assert.InDelta(t, -0.55, light.Position.X, 1e-4)
	assert.InDelta(t, 0.45, heavy.Position.X, 1e-4)
}

func TestRemoveTakesBodyOutOfSimulation(t *testing.T) {
	w := NewWorld()
	a := NewBody(rl.NewVector3(0, 1, 0), 1, false)
	b := NewBody(rl.NewVector3(0, 2, 0), 1, false)
	w.Add(a)
	w.Add(b)
	require.Equal(t, 2, w.Len())

	w.Remove(a)
	assert.Equal(t, 1, w.Len())

	before := a.Position
	w.Step(dt)
	assert.Equal(t, before, a.Position)
	assert.NotEqual(t, rl.NewVector3(0, 2, 0), b.Position)
}

func TestBodyMassClampedPositive(t *testing.T) {
	b := NewBody(rl.Vector3{}, 0, false)
	assert.Equal(t, float32(1), b.Mass)
}
