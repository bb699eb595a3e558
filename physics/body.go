// Package physics is the toolkit's built-in 3D rigid-body world: gravity,
// integration, and AABB overlap resolution. It is intentionally simple; 2D
// scenes use the Chipmunk2D adapter in physics2d instead.
package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scenekit/collider"
)

// Body is a rigid body. Static bodies ignore gravity and never move. A body
// carries at most one collider shape; with no shape it falls through
// everything (bounds collapse to a point).
type Body struct {
	Position rl.Vector3
	Velocity rl.Vector3
	Mass     float32
	Static   bool

	shape *collider.Shape
}

// NewBody returns a dynamic or static body at position. A non-positive mass
// is clamped to 1.
func NewBody(position rl.Vector3, mass float32, static bool) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{Position: position, Mass: mass, Static: static}
}

// SetShape attaches the collider shape, replacing any previous one.
func (b *Body) SetShape(s *collider.Shape) { b.shape = s }

// Shape returns the attached collider shape, or nil.
func (b *Body) Shape() *collider.Shape { return b.shape }

// halfExtents derives the body's AABB half extents from its collider shape.
func (b *Body) halfExtents() rl.Vector3 {
	s := b.shape
	if s == nil {
		return rl.Vector3{}
	}
	switch s.Kind {
	case collider.KindBox:
		return rl.NewVector3(s.Size.X/2, s.Size.Y/2, s.Size.Z/2)
	case collider.KindSphere:
		return rl.NewVector3(s.Radius, s.Radius, s.Radius)
	case collider.KindCapsule:
		return rl.NewVector3(s.Radius, s.Height/2+s.Radius, s.Radius)
	case collider.KindCylinder, collider.KindCone:
		return rl.NewVector3(s.Radius, s.Height/2, s.Radius)
	case collider.KindStaticPlane:
		// Thin slab under the plane surface.
		return rl.NewVector3(s.Size.X/2, planeThickness/2, s.Size.Z/2)
	case collider.KindConvexHull:
		return hullHalfExtents(s)
	default:
		return rl.Vector3{}
	}
}

const planeThickness float32 = 0.1

func hullHalfExtents(s *collider.Shape) rl.Vector3 {
	if len(s.Hull) == 0 {
		return rl.NewVector3(s.Size.X/2, s.Size.Y/2, s.Size.Z/2)
	}
	var hx, hy float32
	for _, p := range s.Hull {
		if x := abs(p.X); x > hx {
			hx = x
		}
		if y := abs(p.Y); y > hy {
			hy = y
		}
	}
	return rl.NewVector3(hx, hy, s.Size.Z/2)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Bounds returns the body's world-space AABB.
func (b *Body) Bounds() rl.BoundingBox {
	h := b.halfExtents()
	return rl.NewBoundingBox(
		rl.NewVector3(b.Position.X-h.X, b.Position.Y-h.Y, b.Position.Z-h.Z),
		rl.NewVector3(b.Position.X+h.X, b.Position.Y+h.Y, b.Position.Z+h.Z),
	)
}
