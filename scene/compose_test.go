package scene

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenekit/collider"
	"scenekit/physics"
	"scenekit/primitive"
)

func TestCompose3DAttachesMatchingCollider(t *testing.T) {
	s := New()
	body := physics.NewBody(rl.NewVector3(1, 2, 3), 1, false)
	e, err := s.Compose3D(CreationOptions3D{
		Name:            "box",
		Type:            primitive.Cube,
		Size:            rl.NewVector3(0.5, 0.5, 0.5),
		IncludeCollider: true,
		Body:            body,
	})
	require.NoError(t, err)
	require.NotNil(t, e)

	require.NotNil(t, e.Body)
	shape := e.Body.Shape()
	require.NotNil(t, shape)
	assert.Equal(t, collider.KindBox, shape.Kind)
	assert.Equal(t, rl.NewVector3(0.5, 0.5, 0.5), shape.Size)
	assert.Equal(t, body.Position, e.Transform.Position)
}

func TestCompose3DWithoutColliderLeavesBodyShapeless(t *testing.T) {
	s := New()
	body := physics.NewBody(rl.Vector3{}, 1, false)
	e, err := s.Compose3D(CreationOptions3D{
		Type: primitive.Sphere,
		Body: body,
	})
	require.NoError(t, err)
	assert.Nil(t, e.Body.Shape())
}

func TestCompose3DRenderOnlyPrimitiveHasNoCollider(t *testing.T) {
	s := New()
	body := physics.NewBody(rl.Vector3{}, 1, false)
	e, err := s.Compose3D(CreationOptions3D{
		Type:            primitive.Torus,
		IncludeCollider: true,
		Body:            body,
	})
	require.NoError(t, err)
	assert.Nil(t, e.Body.Shape())
}

func TestCompose3DUnknownTypeFails(t *testing.T) {
	s := New()
	body := physics.NewBody(rl.Vector3{}, 1, false)
	_, err := s.Compose3D(CreationOptions3D{
		Type:            primitive.Type3D(99),
		IncludeCollider: true,
		Body:            body,
	})
	assert.ErrorIs(t, err, collider.ErrUnsupportedPrimitive)
}

func TestCompose2DCircleFacesCamera(t *testing.T) {
	s := New()
	e, err := s.Compose2D(CreationOptions2D{
		Type: primitive.Circle,
		Size: rl.NewVector2(0.3, 0.3),
	})
	require.NoError(t, err)
	assert.Equal(t, rl.NewVector3(1, 0, 0), e.Transform.RotationAxis)
	assert.Equal(t, float32(90), e.Transform.RotationDeg)
}

func TestCompose2DSquareHasNoConventionalRotation(t *testing.T) {
	s := New()
	e, err := s.Compose2D(CreationOptions2D{
		Type: primitive.Square,
		Size: rl.NewVector2(0.2, 0.2),
	})
	require.NoError(t, err)
	assert.Zero(t, e.Transform.RotationDeg)
	require.NotNil(t, e.Mesh)
	assert.Equal(t, 4, e.Mesh.VertexCount())
}

func TestCompose2DUsesModelMeshCache(t *testing.T) {
	s := New()
	model := &primitive.ShapeModel{
		Type:  primitive.Triangle,
		Color: rl.NewColor(10, 20, 30, 255),
		Size:  rl.NewVector2(0.2, 0.2),
	}
	e1, err := s.Compose2D(CreationOptions2D{Model: model})
	require.NoError(t, err)
	e2, err := s.Compose2D(CreationOptions2D{Model: model})
	require.NoError(t, err)
	assert.Same(t, e1.Mesh, e2.Mesh)
	assert.Equal(t, model.Color, e1.Color)
}
