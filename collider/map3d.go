package collider

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scenekit/primitive"
)

// For3D returns the collision shape for a 3D primitive of the given size
// (full extents; a zero size takes the package default). Torus and Teapot are
// render-only and return (nil, nil). Enum values outside the known set return
// ErrUnsupportedPrimitive.
func For3D(t primitive.Type3D, size rl.Vector3) (*Shape, error) {
	size = primitive.SizeOr3D(size)
	switch t {
	case primitive.Cube:
		return &Shape{Kind: KindBox, Size: size}, nil
	case primitive.Sphere:
		return &Shape{Kind: KindSphere, Radius: size.X / 2}, nil
	case primitive.Capsule:
		return &Shape{Kind: KindCapsule, Radius: size.X / 2, Height: size.Y}, nil
	case primitive.Cylinder:
		return &Shape{Kind: KindCylinder, Radius: size.X / 2, Height: size.Y}, nil
	case primitive.Cone:
		return &Shape{Kind: KindCone, Radius: size.X / 2, Height: size.Y}, nil
	case primitive.Plane, primitive.InfinitePlane:
		return &Shape{Kind: KindStaticPlane, Size: size, Normal: rl.NewVector3(0, 1, 0)}, nil
	case primitive.Torus, primitive.Teapot:
		// Render-only, no collider.
		return nil, nil
	default:
		return nil, ErrUnsupportedPrimitive
	}
}
