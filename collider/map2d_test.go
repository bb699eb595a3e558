package collider

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenekit/primitive"
)

func TestFor2DSquareIsBoxWithDepth(t *testing.T) {
	shape, err := For2D(primitive.Square, rl.NewVector2(0.2, 0.2), 0.1)
	require.NoError(t, err)
	require.NotNil(t, shape)
	assert.Equal(t, KindBox, shape.Kind)
	assert.True(t, shape.Is2D)
	assert.Equal(t, rl.NewVector3(0.2, 0.2, 0.1), shape.Size)
}

func TestFor2DRectangleUsesBothExtents(t *testing.T) {
	shape, err := For2D(primitive.Rectangle, rl.NewVector2(0.3, 0.15), 0)
	require.NoError(t, err)
	assert.Equal(t, rl.NewVector3(0.3, 0.15, primitive.DefaultDepth), shape.Size)
}

func TestFor2DCircleRadiusIsHalfWidth(t *testing.T) {
	shape, err := For2D(primitive.Circle, rl.NewVector2(0.5, 0.5), 0)
	require.NoError(t, err)
	assert.Equal(t, KindSphere, shape.Kind)
	assert.Equal(t, float32(0.25), shape.Radius)
}

func TestFor2DCapsule(t *testing.T) {
	shape, err := For2D(primitive.Capsule2D, rl.NewVector2(0.2, 0.6), 0)
	require.NoError(t, err)
	assert.Equal(t, KindCapsule, shape.Kind)
	assert.Equal(t, float32(0.1), shape.Radius)
	assert.Equal(t, float32(0.6), shape.Height)
}

func TestFor2DTriangleHullMatchesMeshVertices(t *testing.T) {
	size := rl.NewVector2(0.4, 0.3)
	mesh, err := primitive.Generate2D(primitive.Triangle, size)
	require.NoError(t, err)

	shape, err := For2D(primitive.Triangle, size, 0)
	require.NoError(t, err)
	require.NotNil(t, shape)
	assert.Equal(t, KindConvexHull, shape.Kind)
	assert.Len(t, shape.Hull, mesh.VertexCount())
	assert.Equal(t, mesh.Points(), shape.Hull)
}

func TestFor2DEllipseHullMatchesMeshVertices(t *testing.T) {
	size := rl.NewVector2(0.6, 0.3)
	mesh, err := primitive.Generate2D(primitive.Ellipse, size)
	require.NoError(t, err)

	shape, err := For2D(primitive.Ellipse, size, 0)
	require.NoError(t, err)
	assert.Equal(t, KindConvexHull, shape.Kind)
	assert.Len(t, shape.Hull, mesh.VertexCount())
}

func TestFor2DUnknownTypeFails(t *testing.T) {
	shape, err := For2D(primitive.Type2D(42), rl.NewVector2(1, 1), 0)
	assert.Nil(t, shape)
	assert.ErrorIs(t, err, ErrUnsupportedPrimitive)
}
