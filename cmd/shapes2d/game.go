package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scenekit/config"
	"scenekit/internal/debug"
	"scenekit/logx"
	"scenekit/physics2d"
	"scenekit/primitive"
	"scenekit/scene"
)

const (
	groupShapes = "shapes2d"

	spawnBatch = 10
	spawnMinX  = -4.0
	spawnMaxX  = 4.0
	spawnMinY  = 4.0
	spawnMaxY  = 7.0
	// Shapes falling past this are gone for good and get removed.
	killY = -6.0

	shapeMass = 1
)

type game struct {
	space   *physics2d.Space
	shapes  *primitive.ShapeSet
	overlay *debug.Overlay
	rng     *rand.Rand

	selected int
}

func newGame(prefs config.Prefs) (*game, error) {
	// Clone the stock palette so demo tweaks never leak into the package
	// defaults.
	shapes, err := primitive.DefaultShapeSet().Clone()
	if err != nil {
		return nil, err
	}
	ov := debug.New()
	ov.ShowFPS = prefs.ShowFPS
	ov.ShowMemStats = prefs.ShowMemStats
	return &game{
		space:   physics2d.NewSpace(rl.NewVector2(0, -9.81)),
		shapes:  shapes,
		overlay: ov,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// start lays the static floor: a physics segment plus a matching visual
// strip.
func (g *game) start(scn *scene.Scene) error {
	g.space.AddGroundSegment(rl.NewVector2(-6, 0), rl.NewVector2(6, 0), 0.05)
	_, err := scn.Compose2D(scene.CreationOptions2D{
		Name:  "floor",
		Type:  primitive.Rectangle,
		Color: rl.NewColor(70, 80, 95, 255),
		Size:  rl.NewVector2(12, 0.1),
	})
	if err != nil {
		return err
	}
	logx.Infof("shapes2d ready: %d shape models", g.shapes.Len())
	return nil
}

func (g *game) update(scn *scene.Scene, dt float32) error {
	for i := 0; i < g.shapes.Len(); i++ {
		if rl.IsKeyPressed(int32(rl.KeyOne) + int32(i)) {
			g.selected = i
		}
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		if err := g.spawnBatch(scn); err != nil {
			return err
		}
	}
	if rl.IsKeyPressed(rl.KeyC) {
		g.clear(scn)
	}

	g.space.Step(dt)
	scn.SyncBodies()
	g.reap(scn)
	return nil
}

// spawnBatch drops spawnBatch instances of the selected model at randomized
// positions above the floor.
func (g *game) spawnBatch(scn *scene.Scene) error {
	model := g.shapes.Get(g.selected)
	if model == nil {
		return nil
	}
	for i := 0; i < spawnBatch; i++ {
		pos := rl.NewVector2(
			spawnMinX+g.rng.Float32()*(spawnMaxX-spawnMinX),
			spawnMinY+g.rng.Float32()*(spawnMaxY-spawnMinY),
		)
		e, err := scn.Compose2D(scene.CreationOptions2D{
			Name:            model.Type.String(),
			Model:           model,
			Group:           groupShapes,
			IncludeCollider: true,
			Space:           g.space,
			Mass:            shapeMass,
			Position:        pos,
		})
		if err != nil {
			return err
		}
		g.applyMotionPolicy(e)
	}
	return nil
}

// applyMotionPolicy sets the hard-coded per-shape motion: triangles tumble
// (spin about Z with a little sideways drift), every other shape falls
// straight without spinning.
func (g *game) applyMotionPolicy(e *scene.Entity) {
	if e.Body2D == nil {
		return
	}
	if e.Type2D == primitive.Triangle {
		e.Body2D.SetAngularVelocity((g.rng.Float32()*2 - 1) * 3)
		e.Body2D.SetVelocity(rl.NewVector2((g.rng.Float32()*2-1)*1.5, 0))
		return
	}
	e.Body2D.LockRotation()
}

func (g *game) clear(scn *scene.Scene) {
	for _, e := range scn.RemoveByGroup(groupShapes) {
		g.space.Remove(e.Body2D)
	}
}

// reap removes shapes that fell off the stage.
func (g *game) reap(scn *scene.Scene) {
	var dead []*scene.Entity
	for _, e := range scn.Entities() {
		if e.Group == groupShapes && e.Transform.Position.Y < killY {
			dead = append(dead, e)
		}
	}
	for _, e := range dead {
		scn.Remove(e)
		g.space.Remove(e.Body2D)
	}
}

func (g *game) drawOverlay(scn *scene.Scene) {
	model := g.shapes.Get(g.selected)
	name := "none"
	if model != nil {
		name = model.Type.String()
	}
	text := fmt.Sprintf("shape: %s   spawned: %d   [1-%d] select  [space] spawn %d  [C] clear",
		name, scn.CountByGroup(groupShapes), g.shapes.Len(), spawnBatch)
	rl.DrawText(text, 12, 12, 20, rl.RayWhite)
	g.overlay.Draw()
}
