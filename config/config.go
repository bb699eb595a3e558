// Package config persists engine preferences across runs. In-game save data
// is separate and owned by the demos.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"scenekit/logx"
)

// Path is the preferences file location, relative to the process working
// directory.
const Path = "config/engine.toml"

// Prefs holds engine-only preferences: debug overlays, grid, and window
// settings.
type Prefs struct {
	ShowFPS      bool  `toml:"show_fps"`
	ShowMemStats bool  `toml:"show_mem_stats"`
	GridVisible  bool  `toml:"grid_visible"`
	WindowWidth  int32 `toml:"window_width"`
	WindowHeight int32 `toml:"window_height"`
	TargetFPS    int32 `toml:"target_fps"`
	Debug        bool  `toml:"debug"`
}

// Default returns the stock preferences: overlays off, grid on, 1280x720@60.
func Default() Prefs {
	return Prefs{
		GridVisible:  true,
		WindowWidth:  1280,
		WindowHeight: 720,
		TargetFPS:    60,
	}
}

// Load reads preferences from path (or Path when empty). A missing or
// unparsable file logs and returns Default(); it never creates a file.
func Load(path string) Prefs {
	if path == "" {
		path = Path
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logx.Warnf("reading %s: %v, using defaults", path, err)
		}
		return Default()
	}
	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		logx.Warnf("parsing %s: %v, using defaults", path, err)
		return Default()
	}
	return p
}

// Save writes preferences to path (or Path when empty), creating the
// directory if needed.
func Save(path string, p Prefs) error {
	if path == "" {
		path = Path
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
