// Package collider maps primitive types to physics collision shapes. The
// mapping is pure data-in data-out: attaching the resulting description to a
// body is the scene composition layer's job.
package collider

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrUnsupportedPrimitive is returned when a mapping is requested for an enum
// value the mapper does not know. Callers are expected to only pass supported
// types; hitting this is a programming error, not a runtime condition.
var ErrUnsupportedPrimitive = errors.New("collider: unsupported primitive type")

// Kind tags the variant of a collision shape.
type Kind int

const (
	KindBox Kind = iota
	KindSphere
	KindCapsule
	KindCylinder
	KindCone
	KindStaticPlane
	KindConvexHull
)

var kindNames = map[Kind]string{
	KindBox:         "box",
	KindSphere:      "sphere",
	KindCapsule:     "capsule",
	KindCylinder:    "cylinder",
	KindCone:        "cone",
	KindStaticPlane: "static-plane",
	KindConvexHull:  "convex-hull",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Shape describes a collision volume. Only the fields relevant to Kind are
// set: Size for boxes and planes, Radius/Height for round shapes, Hull for
// convex hulls. Sizes are full extents; Radius is a half extent.
type Shape struct {
	Kind   Kind
	Is2D   bool
	Size   rl.Vector3
	Radius float32
	Height float32
	Normal rl.Vector3
	Hull   []rl.Vector2
}
