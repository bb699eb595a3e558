package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenekit/physics"
	"scenekit/primitive"
)

func TestGroupCountingAndBulkRemoval(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		_, err := s.Compose2D(CreationOptions2D{
			Type:  primitive.Square,
			Size:  rl.NewVector2(0.2, 0.2),
			Group: "shapes",
		})
		require.NoError(t, err)
	}
	_, err := s.Compose2D(CreationOptions2D{
		Type:  primitive.Circle,
		Size:  rl.NewVector2(0.2, 0.2),
		Group: "other",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, s.CountByGroup("shapes"))

	removed := s.RemoveByGroup("shapes")
	assert.Len(t, removed, 10)
	assert.Zero(t, s.CountByGroup("shapes"))
	assert.Equal(t, 1, s.CountByGroup("other"))
	assert.Len(t, s.Entities(), 1)
}

func TestRemoveSingleEntity(t *testing.T) {
	s := New()
	a := &Entity{Name: "a"}
	b := &Entity{Name: "b"}
	s.Add(a)
	s.Add(b)

	s.Remove(a)
	require.Len(t, s.Entities(), 1)
	assert.Same(t, b, s.Entities()[0])

	// Removing an entity that is no longer present is a no-op.
	s.Remove(a)
	assert.Len(t, s.Entities(), 1)
}

func TestSyncBodiesCopiesPhysicsPositions(t *testing.T) {
	s := New()
	body := physics.NewBody(rl.NewVector3(0, 5, 0), 1, false)
	e, err := s.Compose3D(CreationOptions3D{Type: primitive.Cube, Body: body})
	require.NoError(t, err)

	body.Position = rl.NewVector3(0, 3, 0)
	s.SyncBodies()
	assert.Equal(t, rl.NewVector3(0, 3, 0), e.Transform.Position)
}

func TestSetSkyboxMissingFileIsIgnored(t *testing.T) {
	s := New()
	s.SetSkybox("no/such/skybox.png")
	assert.Empty(t, s.skyboxPath)
}
