// Package scene holds the toolkit's scene graph: entities composed from
// primitive descriptors, the camera/light/ground/skybox bootstrap helpers,
// and per-frame rendering through the primitive registry.
package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"scenekit/physics"
	"scenekit/physics2d"
	"scenekit/primitive"
)

// Transform is an entity's placement: position, a single axis/angle rotation,
// and per-axis scale.
type Transform struct {
	Position     rl.Vector3
	RotationAxis rl.Vector3
	RotationDeg  float32
	Scale        rl.Vector3
}

// Entity is one node of the scene: a primitive visual plus optional physics.
// An entity has either no collider (both body fields nil) or exactly one,
// attached at composition time and consistent with its primitive type.
type Entity struct {
	ID    uuid.UUID
	Name  string
	Group string

	Transform Transform
	Color     rl.Color
	Visible   bool

	// Visual: Is2D selects which type field applies.
	Is2D   bool
	Type3D primitive.Type3D
	Type2D primitive.Type2D

	// Mesh is the generated flat mesh for 2D entities (collision source).
	Mesh *primitive.ProcMesh

	// Physics: at most one of these is set.
	Body   *physics.Body
	Body2D *physics2d.Body
}

// SetPosition moves the entity and its physics body (if any) together.
func (e *Entity) SetPosition(p rl.Vector3) {
	e.Transform.Position = p
	if e.Body != nil {
		e.Body.Position = p
	}
}

// SyncFromBody copies the physics body's state back onto the transform.
// 2D bodies drive position in the XY plane and rotation about Z.
func (e *Entity) SyncFromBody() {
	switch {
	case e.Body != nil:
		e.Transform.Position = e.Body.Position
	case e.Body2D != nil:
		p := e.Body2D.Position()
		e.Transform.Position.X = p.X
		e.Transform.Position.Y = p.Y
		if e.Transform.RotationAxis.X == 0 && e.Transform.RotationAxis.Y == 0 {
			e.Transform.RotationAxis = rl.NewVector3(0, 0, 1)
			e.Transform.RotationDeg = e.Body2D.AngleDeg()
		}
	}
}
