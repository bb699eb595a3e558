package physics2d

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenekit/collider"
	"scenekit/primitive"
)

const dt float32 = 1.0 / 60

func newTestSpace() *Space {
	return NewSpace(rl.NewVector2(0, -9.81))
}

func shape2D(t *testing.T, p primitive.Type2D, size rl.Vector2) *collider.Shape {
	t.Helper()
	s, err := collider.For2D(p, size, 0)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func TestAddBodyAcceptsEveryMappedKind(t *testing.T) {
	cases := []struct {
		name string
		typ  primitive.Type2D
	}{
		{"square box", primitive.Square},
		{"rectangle box", primitive.Rectangle},
		{"circle", primitive.Circle},
		{"capsule segment", primitive.Capsule2D},
		{"triangle hull", primitive.Triangle},
		{"ellipse hull", primitive.Ellipse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSpace()
			desc := shape2D(t, tc.typ, rl.NewVector2(0.4, 0.3))
			b, err := s.AddBody(desc, rl.NewVector2(1, 2), 1, false)
			require.NoError(t, err)
			assert.Equal(t, rl.NewVector2(1, 2), b.Position())
		})
	}
}

func TestAddBodyRejectsNilShape(t *testing.T) {
	s := newTestSpace()
	_, err := s.AddBody(nil, rl.Vector2{}, 1, false)
	assert.Error(t, err)
}

func TestDynamicBodyFalls(t *testing.T) {
	s := newTestSpace()
	desc := shape2D(t, primitive.Circle, rl.NewVector2(0.3, 0.3))
	b, err := s.AddBody(desc, rl.NewVector2(0, 5), 1, false)
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		s.Step(dt)
	}
	assert.Less(t, b.Position().Y, float32(5))
}

func TestStaticBodyStaysPut(t *testing.T) {
	s := newTestSpace()
	desc := shape2D(t, primitive.Square, rl.NewVector2(1, 1))
	b, err := s.AddBody(desc, rl.NewVector2(0, 0), 1, true)
	require.NoError(t, err)

	for i := 0; i < 60; i++ {
		s.Step(dt)
	}
	assert.Equal(t, rl.NewVector2(0, 0), b.Position())
}

func TestBodyRestsOnGroundSegment(t *testing.T) {
	s := newTestSpace()
	s.AddGroundSegment(rl.NewVector2(-5, 0), rl.NewVector2(5, 0), 0.05)

	desc := shape2D(t, primitive.Circle, rl.NewVector2(0.4, 0.4))
	b, err := s.AddBody(desc, rl.NewVector2(0, 3), 1, false)
	require.NoError(t, err)

	for i := 0; i < 600; i++ {
		s.Step(dt)
	}
	// Came to rest near the floor instead of falling through.
	assert.Greater(t, b.Position().Y, float32(0.1))
	assert.Less(t, b.Position().Y, float32(0.5))
}

func TestRemoveDetachesBody(t *testing.T) {
	s := newTestSpace()
	desc := shape2D(t, primitive.Square, rl.NewVector2(0.2, 0.2))
	b, err := s.AddBody(desc, rl.NewVector2(0, 1), 1, false)
	require.NoError(t, err)

	s.Remove(b)
	// Stepping after removal must not touch the detached body.
	pos := b.Position()
	for i := 0; i < 30; i++ {
		s.Step(dt)
	}
	assert.Equal(t, pos, b.Position())

	s.Remove(nil) // no-op
}

func TestLockRotationStopsSpin(t *testing.T) {
	s := newTestSpace()
	s.AddGroundSegment(rl.NewVector2(-5, 0), rl.NewVector2(5, 0), 0.05)

	desc := shape2D(t, primitive.Square, rl.NewVector2(0.3, 0.3))
	b, err := s.AddBody(desc, rl.NewVector2(0.1, 2), 1, false)
	require.NoError(t, err)
	b.LockRotation()
	b.SetVelocity(rl.NewVector2(2, 0))

	for i := 0; i < 300; i++ {
		s.Step(dt)
	}
	assert.InDelta(t, 0, b.AngleDeg(), 1e-3)
}
