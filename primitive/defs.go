package primitive

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Def is the YAML definition of a primitive's defaults, one file per type
// (e.g. assets/primitives/cube.yaml). Size and color are optional; absent
// fields fall back to package defaults at lookup time.
type Def struct {
	Type  string     `yaml:"type"`
	Size  [3]float32 `yaml:"size,omitempty"`
	Color string     `yaml:"color,omitempty"`
}

// Defs maps primitive type names to their loaded definitions.
type Defs map[string]Def

// LoadDefs reads every .yaml/.yml file in dir. A missing directory is not an
// error (returns an empty set); a malformed file is.
func LoadDefs(dir string) (Defs, error) {
	defs := Defs{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return defs, nil
		}
		return nil, err
	}
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		var d Def
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("primitive: parsing %s: %w", e.Name(), err)
		}
		if d.Type == "" {
			d.Type = strings.TrimSuffix(e.Name(), ext)
		}
		defs[d.Type] = d
	}
	return defs, nil
}

// SizeFor returns the defined size for the named type, or fallback when the
// type has no definition or the defined size is zero-valued.
func (d Defs) SizeFor(name string, fallback rl.Vector3) rl.Vector3 {
	def, ok := d[name]
	if !ok || (def.Size[0] == 0 && def.Size[1] == 0 && def.Size[2] == 0) {
		return fallback
	}
	return rl.NewVector3(def.Size[0], def.Size[1], def.Size[2])
}

// ColorFor returns the defined color for the named type, or fallback when the
// type has no definition or its color string does not parse.
func (d Defs) ColorFor(name string, fallback rl.Color) rl.Color {
	def, ok := d[name]
	if !ok || def.Color == "" {
		return fallback
	}
	c, err := ParseHexColor(def.Color)
	if err != nil {
		return fallback
	}
	return c
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa" (leading # optional).
func ParseHexColor(s string) (rl.Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return rl.Color{}, fmt.Errorf("primitive: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return rl.Color{}, fmt.Errorf("primitive: invalid hex color %q", s)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
