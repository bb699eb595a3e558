// Package physics2d binds collider shape descriptions to the Chipmunk2D
// physics plugin (github.com/jakecoffman/cp). Flat primitives live in the XY
// plane; Chipmunk keeps all motion in-plane by construction.
package physics2d

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jakecoffman/cp"

	"scenekit/collider"
)

// Default surface properties for shapes created through this adapter.
const (
	defaultFriction   = 0.7
	defaultElasticity = 0.2
)

// Space wraps a Chipmunk space. All distances are in world units; gravity is
// set once at construction.
type Space struct {
	space *cp.Space
}

// NewSpace returns a space with the given gravity (e.g. (0, -9.81)).
func NewSpace(gravity rl.Vector2) *Space {
	s := cp.NewSpace()
	s.SetGravity(cp.Vector{X: float64(gravity.X), Y: float64(gravity.Y)})
	return &Space{space: s}
}

// Inner exposes the underlying Chipmunk space for callers that need plugin
// features the adapter does not wrap.
func (s *Space) Inner() *cp.Space { return s.space }

// Step advances the simulation by dt seconds.
func (s *Space) Step(dt float32) {
	s.space.Step(float64(dt))
}

// Body is a Chipmunk body together with the shapes the adapter created for
// it, so Remove can detach everything it added.
type Body struct {
	body   *cp.Body
	shapes []*cp.Shape
}

// AddBody creates a body at pos carrying the collision geometry described by
// desc and inserts it into the space. desc must not be nil. Static bodies
// never move and have infinite effective mass.
func (s *Space) AddBody(desc *collider.Shape, pos rl.Vector2, mass float32, static bool) (*Body, error) {
	if desc == nil {
		return nil, fmt.Errorf("physics2d: nil collider shape")
	}
	if mass <= 0 {
		mass = 1
	}
	m := float64(mass)

	var body *cp.Body
	if static {
		body = cp.NewStaticBody()
	} else {
		moment, err := momentFor(desc, m)
		if err != nil {
			return nil, err
		}
		body = cp.NewBody(m, moment)
	}
	body.SetPosition(cp.Vector{X: float64(pos.X), Y: float64(pos.Y)})
	s.space.AddBody(body)

	shape, err := shapeFor(body, desc)
	if err != nil {
		s.space.RemoveBody(body)
		return nil, err
	}
	shape.SetFriction(defaultFriction)
	shape.SetElasticity(defaultElasticity)
	s.space.AddShape(shape)

	return &Body{body: body, shapes: []*cp.Shape{shape}}, nil
}

// momentFor computes the moment of inertia matching desc at the given mass.
func momentFor(desc *collider.Shape, mass float64) (float64, error) {
	switch desc.Kind {
	case collider.KindBox:
		return cp.MomentForBox(mass, float64(desc.Size.X), float64(desc.Size.Y)), nil
	case collider.KindSphere:
		return cp.MomentForCircle(mass, 0, float64(desc.Radius), cp.Vector{}), nil
	case collider.KindCapsule:
		a, b := capsuleEndpoints(desc)
		return cp.MomentForSegment(mass, a, b, float64(desc.Radius)), nil
	case collider.KindConvexHull:
		verts := hullVerts(desc)
		return cp.MomentForPoly(mass, len(verts), verts, cp.Vector{}, 0), nil
	default:
		return 0, fmt.Errorf("physics2d: no 2D representation for %s collider", desc.Kind)
	}
}

// shapeFor converts a collider description into a Chipmunk shape on body.
func shapeFor(body *cp.Body, desc *collider.Shape) (*cp.Shape, error) {
	switch desc.Kind {
	case collider.KindBox:
		return cp.NewBox(body, float64(desc.Size.X), float64(desc.Size.Y), 0), nil
	case collider.KindSphere:
		return cp.NewCircle(body, float64(desc.Radius), cp.Vector{}), nil
	case collider.KindCapsule:
		a, b := capsuleEndpoints(desc)
		return cp.NewSegment(body, a, b, float64(desc.Radius)), nil
	case collider.KindConvexHull:
		verts := hullVerts(desc)
		return cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0), nil
	default:
		return nil, fmt.Errorf("physics2d: no 2D representation for %s collider", desc.Kind)
	}
}

// capsuleEndpoints returns the segment endpoints of a vertical capsule:
// centers of the two cap arcs.
func capsuleEndpoints(desc *collider.Shape) (cp.Vector, cp.Vector) {
	half := float64(desc.Height)/2 - float64(desc.Radius)
	if half < 0 {
		half = 0
	}
	return cp.Vector{Y: -half}, cp.Vector{Y: half}
}

func hullVerts(desc *collider.Shape) []cp.Vector {
	verts := make([]cp.Vector, len(desc.Hull))
	for i, p := range desc.Hull {
		verts[i] = cp.Vector{X: float64(p.X), Y: float64(p.Y)}
	}
	return verts
}

// AddGroundSegment inserts a static segment (e.g. the floor) from a to b.
func (s *Space) AddGroundSegment(a, b rl.Vector2, radius float32) *Body {
	body := cp.NewStaticBody()
	s.space.AddBody(body)
	seg := cp.NewSegment(body,
		cp.Vector{X: float64(a.X), Y: float64(a.Y)},
		cp.Vector{X: float64(b.X), Y: float64(b.Y)},
		float64(radius))
	seg.SetFriction(defaultFriction)
	seg.SetElasticity(defaultElasticity)
	s.space.AddShape(seg)
	return &Body{body: body, shapes: []*cp.Shape{seg}}
}

// Remove detaches the body and every shape the adapter created for it.
func (s *Space) Remove(b *Body) {
	if b == nil {
		return
	}
	for _, shape := range b.shapes {
		s.space.RemoveShape(shape)
	}
	s.space.RemoveBody(b.body)
}

// Position returns the body's position in world units.
func (b *Body) Position() rl.Vector2 {
	p := b.body.Position()
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// AngleDeg returns the body's rotation about Z in degrees.
func (b *Body) AngleDeg() float32 {
	return float32(b.body.Angle() * 180 / math.Pi)
}

// SetVelocity sets the body's linear velocity.
func (b *Body) SetVelocity(v rl.Vector2) {
	b.body.SetVelocity(float64(v.X), float64(v.Y))
}

// SetAngularVelocity sets the body's spin in radians per second.
func (b *Body) SetAngularVelocity(w float32) {
	b.body.SetAngularVelocity(float64(w))
}

// LockRotation gives the body infinite moment so it translates without
// spinning. Used by per-shape motion policies in the demos.
func (b *Body) LockRotation() {
	b.body.SetMoment(cp.INFINITY)
}
