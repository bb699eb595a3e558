// Package primitive defines the procedural primitive vocabulary of the
// toolkit: the 3D and 2D type enums, default sizing, YAML-backed default
// definitions, flat 2D mesh generation, and the lazy mesh/material registry
// used for rendering.
package primitive

import rl "github.com/gen2brain/raylib-go/raylib"

// Type3D identifies a 3D procedural primitive supplied by the host engine.
type Type3D int

const (
	Cube Type3D = iota
	Sphere
	Capsule
	Cylinder
	Cone
	Plane
	InfinitePlane
	Torus
	Teapot
)

var type3DNames = map[Type3D]string{
	Cube:          "cube",
	Sphere:        "sphere",
	Capsule:       "capsule",
	Cylinder:      "cylinder",
	Cone:          "cone",
	Plane:         "plane",
	InfinitePlane: "infinite-plane",
	Torus:         "torus",
	Teapot:        "teapot",
}

func (t Type3D) String() string {
	if s, ok := type3DNames[t]; ok {
		return s
	}
	return "unknown"
}

// Type2D identifies a flat primitive generated in the XY plane.
type Type2D int

const (
	Square Type2D = iota
	Rectangle
	Circle
	Ellipse
	Triangle
	Capsule2D
)

var type2DNames = map[Type2D]string{
	Square:    "square",
	Rectangle: "rectangle",
	Circle:    "circle",
	Ellipse:   "ellipse",
	Triangle:  "triangle",
	Capsule2D: "capsule2d",
}

func (t Type2D) String() string {
	if s, ok := type2DNames[t]; ok {
		return s
	}
	return "unknown"
}

// Default sizes substituted when a caller passes a zero-valued size.
var (
	DefaultSize3D = rl.NewVector3(1, 1, 1)
	DefaultSize2D = rl.NewVector2(1, 1)
)

// DefaultDepth is the Z extent given to colliders of flat primitives.
const DefaultDepth float32 = 0.05

// SizeOr3D returns size, or DefaultSize3D when size is zero-valued.
func SizeOr3D(size rl.Vector3) rl.Vector3 {
	if size.X == 0 && size.Y == 0 && size.Z == 0 {
		return DefaultSize3D
	}
	return size
}

// SizeOr2D returns size, or DefaultSize2D when size is zero-valued.
func SizeOr2D(size rl.Vector2) rl.Vector2 {
	if size.X == 0 && size.Y == 0 {
		return DefaultSize2D
	}
	return size
}
