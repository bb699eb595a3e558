// Command shapes2d is a keyboard-driven playground: pick a flat shape, spawn
// batches of it over a Chipmunk2D space, and watch them pile up.
package main

import (
	"context"
	"os"
	"os/signal"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scenekit/config"
	"scenekit/logx"
	"scenekit/loop"
	"scenekit/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	prefs := config.Load("")
	logx.SetDebug(prefs.Debug)

	scn := scene.New()
	scn.AddCamera(rl.NewVector3(0, 3, 9), rl.NewVector3(0, 3, 0))
	scn.GridVisible = false

	g, err := newGame(prefs)
	if err != nil {
		logx.Fatalf("shapes2d: %v", err)
	}
	err = loop.Run(ctx, loop.Config{
		Title:     "scenekit - 2D shapes",
		Width:     prefs.WindowWidth,
		Height:    prefs.WindowHeight,
		TargetFPS: prefs.TargetFPS,
		Overlay:   g.drawOverlay,
	}, scn, g.start, g.update)
	if err != nil {
		logx.Fatalf("shapes2d: %v", err)
	}
}
