package loop

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scenekit/logx"
	"scenekit/scene"
)

// Config controls the window opened by Run.
type Config struct {
	Title      string
	Width      int32
	Height     int32
	TargetFPS  int32
	Fullscreen bool
	Background rl.Color

	// Overlay, when set, is drawn after the 3D scene each frame (HUD text,
	// debug counters). It runs inside BeginDrawing/EndDrawing.
	Overlay func(*scene.Scene)
}

func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "scenekit"
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = 60
	}
	if c.Background == (rl.Color{}) {
		c.Background = rl.NewColor(18, 18, 24, 255)
	}
	return c
}

// Run opens the window and drives the frame loop until the window closes or
// ctx is cancelled. start runs on the first frame with the root scene; update
// runs once per subsequent frame with the frame's delta time. A non-nil error
// from either callback stops the loop.
func Run(ctx context.Context, cfg Config, scn *scene.Scene, start func(*scene.Scene) error, update func(*scene.Scene, float32) error) error {
	cfg = cfg.withDefaults()
	if scn == nil {
		scn = scene.New()
	}

	if cfg.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode)
	}
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(cfg.TargetFPS)

	sched := NewScheduler()
	defer sched.Stop()

	var cbErr error
	sched.Script(
		func() {
			if start != nil {
				if err := start(scn); err != nil {
					cbErr = err
				}
			}
		},
		func(dt float32) {
			if update != nil && cbErr == nil {
				if err := update(scn, dt); err != nil {
					cbErr = err
				}
			}
		},
	)

	for !rl.WindowShouldClose() {
		if err := ctx.Err(); err != nil {
			logx.Infof("frame loop cancelled: %v", err)
			return nil
		}
		sched.Tick(rl.GetFrameTime())
		if cbErr != nil {
			return cbErr
		}

		rl.BeginDrawing()
		rl.ClearBackground(cfg.Background)
		scn.Draw()
		if cfg.Overlay != nil {
			cfg.Overlay(scn)
		}
		rl.EndDrawing()
	}
	return nil
}
