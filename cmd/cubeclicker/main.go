// Command cubeclicker is a small 3D demo: click the stage to spawn cubes,
// click a cube to score. Score and cube layout persist across runs.
package main

import (
	"context"
	"os"
	"os/signal"

	"scenekit/config"
	"scenekit/logx"
	"scenekit/loop"
	"scenekit/physics"
	"scenekit/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	prefs := config.Load("")
	logx.SetDebug(prefs.Debug)

	world := physics.NewWorld()
	scn, err := scene.NewBase(world)
	if err != nil {
		logx.Fatalf("building base scene: %v", err)
	}
	scn.GridVisible = prefs.GridVisible

	g := newGame(world, prefs)
	err = loop.Run(ctx, loop.Config{
		Title:     "scenekit - cube clicker",
		Width:     prefs.WindowWidth,
		Height:    prefs.WindowHeight,
		TargetFPS: prefs.TargetFPS,
		Overlay:   g.drawOverlay,
	}, scn, g.start, g.update)
	if err != nil {
		logx.Fatalf("cube clicker: %v", err)
	}
}
