// Package debug draws runtime overlays for the demo apps: FPS and heap
// allocation counters in the top-right corner.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Counters are re-rendered every refreshFrames frames to limit
	// per-frame string allocation.
	refreshFrames = 30
)

// Overlay holds the overlay toggles and the cached counter text.
type Overlay struct {
	ShowFPS      bool
	ShowMemStats bool

	frame    uint32
	fpsText  string
	memText  string
	memStats runtime.MemStats
}

// New returns an overlay with every counter hidden.
func New() *Overlay {
	return &Overlay{}
}

// Draw renders the enabled counters. Call after the scene, inside the 2D
// drawing phase.
func (o *Overlay) Draw() {
	o.frame++
	refresh := o.frame%refreshFrames == 1

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if o.ShowFPS {
		if refresh || o.fpsText == "" {
			o.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(o.fpsText, screenW, y)
		y += lineHeight
	}
	if o.ShowMemStats {
		if refresh || o.memText == "" {
			runtime.ReadMemStats(&o.memStats)
			o.memText = fmt.Sprintf("Mem: %.2f MiB", float64(o.memStats.Alloc)/(1024*1024))
		}
		drawRight(o.memText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	x := screenW - rl.MeasureText(text, fontSize) - padding
	rl.DrawText(text, x, y, fontSize, rl.Green)
}
