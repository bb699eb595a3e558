package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World steps a set of bodies: gravity and integration for dynamic bodies,
// then pairwise AABB separation along the minimum penetration axis.
type World struct {
	Gravity rl.Vector3
	bodies  []*Body
}

// NewWorld returns a world with gravity (0, -9.81, 0).
func NewWorld() *World {
	return &World{Gravity: rl.NewVector3(0, -9.81, 0)}
}

// Add inserts a body into the world. Insertion order is stable so callers can
// keep bodies and scene entities in sync.
func (w *World) Add(b *Body) {
	w.bodies = append(w.bodies, b)
}

// Remove takes a body out of the world.
func (w *World) Remove(b *Body) {
	for i, cur := range w.bodies {
		if cur == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Len returns the number of bodies in the world.
func (w *World) Len() int { return len(w.bodies) }

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float32) {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Velocity.X += w.Gravity.X * dt
		b.Velocity.Y += w.Gravity.Y * dt
		b.Velocity.Z += w.Gravity.Z * dt
		b.Position.X += b.Velocity.X * dt
		b.Position.Y += b.Velocity.Y * dt
		b.Position.Z += b.Velocity.Z * dt
	}

	for i := 0; i < len(w.bodies); i++ {
		bi := w.bodies[i]
		if bi.Shape() == nil {
			continue
		}
		for j := i + 1; j < len(w.bodies); j++ {
			bj := w.bodies[j]
			if bj.Shape() == nil || (bi.Static && bj.Static) {
				continue
			}
			w.separate(bi, bj)
		}
	}
}

// separate resolves overlap between two bodies by pushing them apart along
// the axis of least penetration, splitting the correction by mass. The moved
// components of velocity are zeroed (inelastic contact).
func (w *World) separate(bi, bj *Body) {
	boxI, boxJ := bi.Bounds(), bj.Bounds()
	if !rl.CheckCollisionBoxes(boxI, boxJ) {
		return
	}
	overlap := [3]float32{
		minf(boxI.Max.X, boxJ.Max.X) - maxf(boxI.Min.X, boxJ.Min.X),
		minf(boxI.Max.Y, boxJ.Max.Y) - maxf(boxI.Min.Y, boxJ.Min.Y),
		minf(boxI.Max.Z, boxJ.Max.Z) - maxf(boxI.Min.Z, boxJ.Min.Z),
	}
	axis, depth := 0, overlap[0]
	for a := 1; a < 3; a++ {
		if overlap[a] < depth {
			axis, depth = a, overlap[a]
		}
	}
	if depth <= 0 {
		return
	}

	// Push i toward its own side of the axis.
	dir := float32(1)
	if center(boxI, axis) < center(boxJ, axis) {
		dir = -1
	}
	var moveI, moveJ float32
	switch {
	case bi.Static:
		moveJ = -dir * depth
	case bj.Static:
		moveI = dir * depth
	default:
		total := bi.Mass + bj.Mass
		moveI = dir * depth * (bj.Mass / total)
		moveJ = -dir * depth * (bi.Mass / total)
	}
	applyAxis(bi, axis, moveI)
	applyAxis(bj, axis, moveJ)
}

func center(b rl.BoundingBox, axis int) float32 {
	switch axis {
	case 0:
		return (b.Min.X + b.Max.X) / 2
	case 1:
		return (b.Min.Y + b.Max.Y) / 2
	default:
		return (b.Min.Z + b.Max.Z) / 2
	}
}

func applyAxis(b *Body, axis int, move float32) {
	if b.Static || move == 0 {
		return
	}
	switch axis {
	case 0:
		b.Position.X += move
		b.Velocity.X = 0
	case 1:
		b.Position.Y += move
		b.Velocity.Y = 0
	default:
		b.Position.Z += move
		b.Velocity.Z = 0
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
