package primitive

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// circleSegments is the rim resolution for circle and ellipse fans.
const circleSegments = 32

// capSegments is the arc resolution of each rounded end of a 2D capsule.
const capSegments = 8

// MeshPlane identifies which model-space plane a flat mesh lies in.
type MeshPlane int

const (
	// PlaneXY: mesh faces +Z (squares, rectangles, triangles, capsules).
	PlaneXY MeshPlane = iota
	// PlaneXZ: mesh faces +Y, the engine's disc convention (circles,
	// ellipses). Composition rotates these 90 degrees about X so the disc
	// faces the camera plane.
	PlaneXZ
)

// ProcMesh is a procedurally generated flat mesh. Positions are xyz triplets;
// Plane says which model plane the vertices lie in. Convex-hull colliders are
// built from these buffers, so the vertex data doubles as collision geometry.
type ProcMesh struct {
	Plane     MeshPlane
	Positions []float32
	Normals   []float32
	Texcoords []float32
	Indices   []uint16
}

// VertexCount returns the number of vertices in the mesh.
func (m *ProcMesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Points returns the in-plane 2D coordinates of every vertex, in buffer
// order. For PlaneXZ meshes the coordinates are taken after the conventional
// 90-degree X rotation, so they line up with PlaneXY geometry.
func (m *ProcMesh) Points() []rl.Vector2 {
	n := m.VertexCount()
	pts := make([]rl.Vector2, n)
	for i := 0; i < n; i++ {
		if m.Plane == PlaneXZ {
			pts[i] = rl.NewVector2(m.Positions[3*i], -m.Positions[3*i+2])
		} else {
			pts[i] = rl.NewVector2(m.Positions[3*i], m.Positions[3*i+1])
		}
	}
	return pts
}

// Generate2D builds the mesh for a flat primitive of the given type and size.
// Size semantics: full extents on X/Y (Circle uses X as diameter).
func Generate2D(t Type2D, size rl.Vector2) (*ProcMesh, error) {
	size = SizeOr2D(size)
	switch t {
	case Square:
		return quad(size.X, size.X), nil
	case Rectangle:
		return quad(size.X, size.Y), nil
	case Circle:
		return fan(size.X/2, size.X/2), nil
	case Ellipse:
		return fan(size.X/2, size.Y/2), nil
	case Triangle:
		return triangle(size.X, size.Y), nil
	case Capsule2D:
		return capsule2D(size.X, size.Y), nil
	default:
		return nil, fmt.Errorf("primitive: no 2D mesh generator for type %d", int(t))
	}
}

func newProcMesh(verts []rl.Vector2, indices []uint16) *ProcMesh {
	m := &ProcMesh{
		Positions: make([]float32, 0, len(verts)*3),
		Normals:   make([]float32, 0, len(verts)*3),
		Texcoords: make([]float32, 0, len(verts)*2),
		Indices:   indices,
	}
	minX, minY := verts[0].X, verts[0].Y
	maxX, maxY := minX, minY
	for _, v := range verts {
		minX = math32.Min(minX, v.X)
		minY = math32.Min(minY, v.Y)
		maxX = math32.Max(maxX, v.X)
		maxY = math32.Max(maxY, v.Y)
	}
	spanX := math32.Max(maxX-minX, 1e-6)
	spanY := math32.Max(maxY-minY, 1e-6)
	for _, v := range verts {
		m.Positions = append(m.Positions, v.X, v.Y, 0)
		m.Normals = append(m.Normals, 0, 0, 1)
		m.Texcoords = append(m.Texcoords, (v.X-minX)/spanX, 1-(v.Y-minY)/spanY)
	}
	return m
}

// quad is a centered rectangle of full extents w x h (two triangles, CCW).
func quad(w, h float32) *ProcMesh {
	hw, hh := w/2, h/2
	verts := []rl.Vector2{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	return newProcMesh(verts, []uint16{0, 1, 2, 0, 2, 3})
}

// triangle is an isosceles triangle: apex up, base of width w, height h.
func triangle(w, h float32) *ProcMesh {
	verts := []rl.Vector2{
		{X: 0, Y: h / 2},
		{X: -w / 2, Y: -h / 2},
		{X: w / 2, Y: -h / 2},
	}
	return newProcMesh(verts, []uint16{0, 1, 2})
}

// fan is a triangle fan around the centroid with radii rx/ry, approximating a
// circle or ellipse with circleSegments rim vertices. Discs are generated in
// the XZ plane (facing +Y), matching the host engine's disc convention.
func fan(rx, ry float32) *ProcMesh {
	rxc := math32.Max(rx, 1e-6)
	ryc := math32.Max(ry, 1e-6)
	m := &ProcMesh{
		Plane:     PlaneXZ,
		Positions: make([]float32, 0, (circleSegments+1)*3),
		Normals:   make([]float32, 0, (circleSegments+1)*3),
		Texcoords: make([]float32, 0, (circleSegments+1)*2),
		Indices:   make([]uint16, 0, circleSegments*3),
	}
	addVert := func(x, z float32) {
		m.Positions = append(m.Positions, x, 0, z)
		m.Normals = append(m.Normals, 0, 1, 0)
		m.Texcoords = append(m.Texcoords, x/(2*rxc)+0.5, z/(2*ryc)+0.5)
	}
	addVert(0, 0)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math32.Pi * float32(i) / circleSegments
		// Negative Z so the rim winds CCW when viewed from +Y.
		addVert(rx*math32.Cos(a), -ry*math32.Sin(a))
	}
	for i := 0; i < circleSegments; i++ {
		next := uint16(1 + (i+1)%circleSegments)
		m.Indices = append(m.Indices, 0, uint16(1+i), next)
	}
	return m
}

// capsule2D is a vertical stadium shape: full width w (cap diameter) and full
// height h. When h <= w it degenerates to a circle of diameter w. Triangulated
// as a fan around the centroid; the outline is convex so the fan is valid.
func capsule2D(w, h float32) *ProcMesh {
	r := w / 2
	half := h/2 - r
	if half < 0 {
		half = 0
	}
	verts := make([]rl.Vector2, 0, capSegments*2+3)
	verts = append(verts, rl.Vector2{})
	// Top cap: sweep 0..pi around (0, +half), then bottom cap pi..2pi around (0, -half).
	for i := 0; i <= capSegments; i++ {
		a := math32.Pi * float32(i) / capSegments
		verts = append(verts, rl.NewVector2(r*math32.Cos(a), half+r*math32.Sin(a)))
	}
	for i := 0; i <= capSegments; i++ {
		a := math32.Pi + math32.Pi*float32(i)/capSegments
		verts = append(verts, rl.NewVector2(r*math32.Cos(a), -half+r*math32.Sin(a)))
	}
	rim := len(verts) - 1
	indices := make([]uint16, 0, rim*3)
	for i := 0; i < rim; i++ {
		next := uint16(1 + (i+1)%rim)
		indices = append(indices, 0, uint16(1+i), next)
	}
	return newProcMesh(verts, indices)
}
