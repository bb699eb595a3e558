package collider

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scenekit/primitive"
)

// For2D returns the collision shape for a flat primitive of the given size
// and depth (Z extent; zero takes primitive.DefaultDepth). Triangle and
// Ellipse have no parametric collider in the engine's primitive set, so their
// shapes are convex hulls built from the generated mesh's vertex buffer.
// Enum values outside the known set return ErrUnsupportedPrimitive.
func For2D(t primitive.Type2D, size rl.Vector2, depth float32) (*Shape, error) {
	size = primitive.SizeOr2D(size)
	if depth == 0 {
		depth = primitive.DefaultDepth
	}
	switch t {
	case primitive.Square:
		return &Shape{Kind: KindBox, Is2D: true, Size: rl.NewVector3(size.X, size.X, depth)}, nil
	case primitive.Rectangle:
		return &Shape{Kind: KindBox, Is2D: true, Size: rl.NewVector3(size.X, size.Y, depth)}, nil
	case primitive.Circle:
		return &Shape{Kind: KindSphere, Is2D: true, Radius: size.X / 2}, nil
	case primitive.Capsule2D:
		return &Shape{Kind: KindCapsule, Is2D: true, Radius: size.X / 2, Height: size.Y}, nil
	case primitive.Triangle, primitive.Ellipse:
		return hullFor(t, size, depth)
	default:
		return nil, ErrUnsupportedPrimitive
	}
}

// hullFor generates the primitive's mesh and takes every vertex as a hull
// point, so the hull point count always matches the mesh vertex count.
func hullFor(t primitive.Type2D, size rl.Vector2, depth float32) (*Shape, error) {
	mesh, err := primitive.Generate2D(t, size)
	if err != nil {
		return nil, err
	}
	return &Shape{
		Kind: KindConvexHull,
		Is2D: true,
		Size: rl.NewVector3(size.X, size.Y, depth),
		Hull: mesh.Points(),
	}, nil
}
