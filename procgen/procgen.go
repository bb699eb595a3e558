// Package procgen generates simple procedural layouts for demo stages: a
// centered field of static cube placements whose heights come from fractal
// value noise.
package procgen

import (
	"time"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// FieldOptions controls tile-field generation. Width/Depth are in tiles,
// TileSize is the world size of one tile on X/Z, HeightScale the maximum tile
// height. Seed 0 picks a time-based seed; any other seed is deterministic.
type FieldOptions struct {
	Width       int
	Depth       int
	TileSize    float32
	HeightScale float32

	Seed       int64
	Octaves    int
	Lacunarity float32
	Gain       float32
	Frequency  float32
}

// DefaultFieldOptions returns a small stage: 12x12 tiles of unit size.
func DefaultFieldOptions() FieldOptions {
	return FieldOptions{
		Width:       12,
		Depth:       12,
		TileSize:    1,
		HeightScale: 1.5,
		Octaves:     4,
		Lacunarity:  2,
		Gain:        0.5,
		Frequency:   0.12,
	}
}

// Placement is one generated cube: center position and full extents. The
// consumer turns placements into scene entities (static, so they never move).
type Placement struct {
	Position rl.Vector3
	Size     rl.Vector3
}

// minTileHeight keeps every tile visible even where noise bottoms out.
const minTileHeight float32 = 0.1

// Field generates Width*Depth cube placements sitting on Y=0, centered on the
// world origin in XZ. Output is deterministic for a non-zero seed.
func Field(opts FieldOptions) []Placement {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil
	}
	if opts.TileSize <= 0 {
		opts.TileSize = 1
	}
	if opts.HeightScale <= 0 {
		opts.HeightScale = 1
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.1
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	startX := -float32(opts.Width)*opts.TileSize/2 + opts.TileSize/2
	startZ := -float32(opts.Depth)*opts.TileSize/2 + opts.TileSize/2

	out := make([]Placement, 0, opts.Width*opts.Depth)
	for z := 0; z < opts.Depth; z++ {
		for x := 0; x < opts.Width; x++ {
			n := fractalNoise(float32(x)*opts.Frequency, float32(z)*opts.Frequency,
				int32(seed), opts.Octaves, opts.Lacunarity, opts.Gain)
			h := minTileHeight + n*(opts.HeightScale-minTileHeight)
			if h < minTileHeight || math32.IsNaN(h) || math32.IsInf(h, 0) {
				h = minTileHeight
			}
			out = append(out, Placement{
				Position: rl.NewVector3(
					startX+float32(x)*opts.TileSize,
					h/2,
					startZ+float32(z)*opts.TileSize),
				Size: rl.NewVector3(opts.TileSize, h, opts.TileSize),
			})
		}
	}
	return out
}

// fractalNoise layers smooth value noise; output in [0,1].
func fractalNoise(x, y float32, seed int32, octaves int, lacunarity, gain float32) float32 {
	var sum, maxAmp float32
	amp, freq := float32(1), float32(1)
	for i := 0; i < octaves; i++ {
		sum += valueNoise(x*freq, y*freq, seed+int32(i)) * amp
		maxAmp += amp
		amp *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise interpolates hashed lattice values with cubic easing; [0,1].
func valueNoise(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	tx := ease(x - float32(x0))
	ty := ease(y - float32(y0))

	v00 := hash(x0, y0, seed)
	v10 := hash(x0+1, y0, seed)
	v01 := hash(x0, y0+1, seed)
	v11 := hash(x0+1, y0+1, seed)

	top := v00 + (v10-v00)*tx
	bot := v01 + (v11-v01)*tx
	return top + (bot-top)*ty
}

func hash(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n ^= n >> 16
	return float32(n&0x7fffffff) / 2147483647
}

func ease(t float32) float32 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	default:
		return t * t * (3 - 2*t)
	}
}
