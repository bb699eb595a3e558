package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"scenekit/config"
	"scenekit/internal/debug"
	"scenekit/logx"
	"scenekit/physics"
	"scenekit/primitive"
	"scenekit/procgen"
	"scenekit/scene"
)

const (
	groupCube    = "cube"
	groupTerrain = "terrain"

	cubeSize  = 0.5
	cubeMass  = 1
	fieldSeed = 7
)

var (
	cubeColor    = rl.NewColor(80, 140, 220, 255)
	clickedColor = rl.NewColor(230, 170, 60, 255)
	terrainColor = rl.NewColor(110, 100, 90, 255)
)

type game struct {
	world   *physics.World
	overlay *debug.Overlay

	totalClicks int
	clicks      map[uuid.UUID]int
}

func newGame(world *physics.World, prefs config.Prefs) *game {
	ov := debug.New()
	ov.ShowFPS = prefs.ShowFPS
	ov.ShowMemStats = prefs.ShowMemStats
	return &game{
		world:   world,
		overlay: ov,
		clicks:  make(map[uuid.UUID]int),
	}
}

// start builds the terrain field along the stage edge and restores the
// previous session's cubes and score.
func (g *game) start(scn *scene.Scene) error {
	opts := procgen.DefaultFieldOptions()
	opts.Width, opts.Depth = 4, 12
	opts.Seed = fieldSeed
	for _, p := range procgen.Field(opts) {
		body := physics.NewBody(rl.NewVector3(p.Position.X-5, p.Position.Y, p.Position.Z), 0, true)
		e, err := scn.Compose3D(scene.CreationOptions3D{
			Name:            "terrain-tile",
			Type:            primitive.Cube,
			Color:           terrainColor,
			Size:            p.Size,
			Group:           groupTerrain,
			IncludeCollider: true,
			Body:            body,
		})
		if err != nil {
			return err
		}
		e.SetPosition(body.Position)
		g.world.Add(body)
	}

	data := loadSave()
	g.totalClicks = data.TotalClicks
	for _, c := range data.Cubes {
		e, err := g.spawnCube(scn, rl.NewVector3(c.Position[0], c.Position[1], c.Position[2]))
		if err != nil {
			return err
		}
		if c.Clicks > 0 {
			g.clicks[e.ID] = c.Clicks
			e.Color = clickedColor
		}
	}
	logx.Infof("cube clicker ready: %d cubes restored, %d total clicks", len(data.Cubes), data.TotalClicks)
	return nil
}

func (g *game) update(scn *scene.Scene, dt float32) error {
	if rl.IsKeyPressed(rl.KeyR) {
		g.reset(scn)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.click(scn)
	}
	g.world.Step(dt)
	scn.SyncBodies()
	return nil
}

// click ray-picks the scene: the nearest hit cube scores, a hit on anything
// else spawns a new cube at the hit point.
func (g *game) click(scn *scene.Scene) {
	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), scn.Camera)

	var hitCube *scene.Entity
	var hitPoint rl.Vector3
	hitDist := float32(-1)
	hitAny := false
	for _, e := range scn.Entities() {
		if e.Body == nil || e.Body.Shape() == nil {
			continue
		}
		col := rl.GetRayCollisionBox(ray, e.Body.Bounds())
		if !col.Hit || (hitAny && col.Distance >= hitDist) {
			continue
		}
		hitAny = true
		hitDist = col.Distance
		hitPoint = col.Point
		if e.Group == groupCube {
			hitCube = e
		} else {
			hitCube = nil
		}
	}
	if !hitAny {
		return
	}

	if hitCube != nil {
		g.totalClicks++
		g.clicks[hitCube.ID]++
		hitCube.Color = clickedColor
	} else {
		spawn := rl.NewVector3(hitPoint.X, hitPoint.Y+cubeSize/2+0.01, hitPoint.Z)
		if _, err := g.spawnCube(scn, spawn); err != nil {
			logx.Errorf("spawning cube: %v", err)
			return
		}
	}
	g.persist(scn)
}

func (g *game) spawnCube(scn *scene.Scene, pos rl.Vector3) (*scene.Entity, error) {
	body := physics.NewBody(pos, cubeMass, false)
	e, err := scn.Compose3D(scene.CreationOptions3D{
		Name:            "cube",
		Type:            primitive.Cube,
		Color:           cubeColor,
		Size:            rl.NewVector3(cubeSize, cubeSize, cubeSize),
		Group:           groupCube,
		IncludeCollider: true,
		Body:            body,
	})
	if err != nil {
		return nil, err
	}
	g.world.Add(body)
	return e, nil
}

// reset clears every spawned cube and the score, and persists the empty
// state.
func (g *game) reset(scn *scene.Scene) {
	for _, e := range scn.RemoveByGroup(groupCube) {
		if e.Body != nil {
			g.world.Remove(e.Body)
		}
	}
	g.totalClicks = 0
	g.clicks = make(map[uuid.UUID]int)
	g.persist(scn)
}

func (g *game) persist(scn *scene.Scene) {
	data := saveData{TotalClicks: g.totalClicks}
	for _, e := range scn.Entities() {
		if e.Group != groupCube {
			continue
		}
		p := e.Transform.Position
		data.Cubes = append(data.Cubes, savedCube{
			Position: [3]float32{p.X, p.Y, p.Z},
			Clicks:   g.clicks[e.ID],
		})
	}
	if err := writeSave(data); err != nil {
		logx.Errorf("saving game: %v", err)
	}
}

func (g *game) drawOverlay(scn *scene.Scene) {
	text := fmt.Sprintf("clicks: %d   cubes: %d   [click] spawn/score  [R] reset",
		g.totalClicks, scn.CountByGroup(groupCube))
	rl.DrawText(text, 12, 12, 20, rl.RayWhite)
	g.overlay.Draw()
}
