package scene

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scenekit/logx"
	"scenekit/primitive"
)

const (
	gridExtent    = 20
	gridMajorStep = 5
	skyboxScale   = 500

	// defsDir holds the optional per-primitive YAML defaults.
	defsDir = "assets/primitives"
)

// Scene is the root container: camera, light, optional skybox, entity list,
// and the registry that draws them. Not safe for concurrent use; everything
// runs on the engine's single frame loop.
type Scene struct {
	Camera      rl.Camera3D
	LightDir    rl.Vector3
	GridVisible bool

	// Defs supplies per-type default size/color from assets/primitives.
	Defs primitive.Defs

	entities []*Entity
	reg      *primitive.Registry

	// Skybox: path is recorded up front, GPU resources are created on the
	// first Draw so loading happens after the window/GL context exists.
	skyboxPath   string
	skyboxTex    rl.Texture2D
	skyboxMesh   rl.Mesh
	skyboxMtl    rl.Material
	skyboxLoaded bool
}

// New returns an empty scene with a perspective camera at (6,6,6) looking at
// the origin and a high, slightly tilted light direction.
func New() *Scene {
	defs, err := primitive.LoadDefs(defsDir)
	if err != nil {
		logx.Warnf("loading primitive defs: %v", err)
		defs = primitive.Defs{}
	}
	s := &Scene{
		LightDir:    rl.NewVector3(0.4, 1, 0.3),
		GridVisible: true,
		Defs:        defs,
		reg:         primitive.NewRegistry(),
	}
	s.Camera.Position = rl.NewVector3(6, 6, 6)
	s.Camera.Target = rl.NewVector3(0, 0, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
	return s
}

// Registry returns the scene's primitive registry.
func (s *Scene) Registry() *primitive.Registry { return s.reg }

// Add inserts an entity into the scene.
func (s *Scene) Add(e *Entity) {
	s.entities = append(s.entities, e)
}

// Remove deletes an entity from the scene. The caller is responsible for
// detaching its physics body from whatever world or space owns it.
func (s *Scene) Remove(e *Entity) {
	for i, cur := range s.entities {
		if cur == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}

// Entities returns the live entity slice. Callers must not mutate it while
// iterating Draw.
func (s *Scene) Entities() []*Entity { return s.entities }

// CountByGroup returns how many entities carry the given render-group tag.
func (s *Scene) CountByGroup(group string) int {
	n := 0
	for _, e := range s.entities {
		if e.Group == group {
			n++
		}
	}
	return n
}

// RemoveByGroup removes every entity with the given tag and returns them so
// the caller can release their physics bodies.
func (s *Scene) RemoveByGroup(group string) []*Entity {
	var removed []*Entity
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Group == group {
			removed = append(removed, e)
		} else {
			kept = append(kept, e)
		}
	}
	s.entities = kept
	return removed
}

// SyncBodies copies physics state onto every entity transform. Call after
// stepping the physics world/space and before Draw.
func (s *Scene) SyncBodies() {
	for _, e := range s.entities {
		e.SyncFromBody()
	}
}

// SetSkybox records the path of a cubemap image to draw behind the scene.
// The texture is loaded on the first Draw. A missing file logs and disables
// the skybox rather than failing.
func (s *Scene) SetSkybox(path string) {
	if _, err := os.Stat(filepath.Clean(path)); err != nil {
		logx.Debugf("skybox image %s not found, skipping", path)
		return
	}
	s.skyboxPath = filepath.Clean(path)
}

func (s *Scene) ensureSkybox() {
	if s.skyboxLoaded || s.skyboxPath == "" {
		return
	}
	path := s.skyboxPath
	s.skyboxPath = ""
	img := rl.LoadImage(path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		logx.Warnf("skybox image %s failed to load", path)
		return
	}
	s.skyboxTex = rl.LoadTextureCubemap(img, rl.CubemapLayoutAutoDetect)
	rl.UnloadImage(img)
	if !rl.IsTextureValid(s.skyboxTex) {
		logx.Warnf("skybox cubemap %s failed to upload", path)
		return
	}
	s.skyboxMesh = rl.GenMeshCube(1, 1, 1)
	s.skyboxMtl = rl.LoadMaterialDefault()
	rl.SetMaterialTexture(&s.skyboxMtl, rl.MapCubemap, s.skyboxTex)
	s.skyboxLoaded = true
}

// Draw renders the frame's 3D content: skybox, grid, then every visible
// entity. Call between BeginDrawing and EndDrawing.
func (s *Scene) Draw() {
	s.ensureSkybox()
	s.reg.SetView(s.Camera.Position, s.LightDir)
	rl.BeginMode3D(s.Camera)
	if s.skyboxLoaded {
		s.drawSkybox()
	}
	if s.GridVisible {
		drawGrid()
	}
	for _, e := range s.entities {
		if !e.Visible {
			continue
		}
		t := e.Transform
		if e.Is2D {
			s.reg.Draw2D(e.Type2D, t.Position, t.RotationAxis, t.RotationDeg, t.Scale, e.Color)
		} else {
			s.reg.Draw3D(e.Type3D, t.Position, t.RotationAxis, t.RotationDeg, t.Scale, e.Color)
		}
	}
	rl.EndMode3D()
}

// drawSkybox draws a large cube centered on the camera with depth writes off
// so everything else renders in front of it.
func (s *Scene) drawSkybox() {
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	p := s.Camera.Position
	transform := rl.MatrixMultiply(
		rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale),
		rl.MatrixTranslate(p.X, p.Y, p.Z))
	rl.DrawMesh(s.skyboxMesh, s.skyboxMtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// drawGrid draws reference lines on the XZ plane, brighter every
// gridMajorStep units.
func drawGrid() {
	minor := rl.NewColor(128, 128, 128, 60)
	major := rl.NewColor(170, 170, 170, 130)
	for i := -gridExtent; i <= gridExtent; i++ {
		c := minor
		if i%gridMajorStep == 0 {
			c = major
		}
		fi := float32(i)
		rl.DrawLine3D(rl.NewVector3(fi, 0, -gridExtent), rl.NewVector3(fi, 0, gridExtent), c)
		rl.DrawLine3D(rl.NewVector3(-gridExtent, 0, fi), rl.NewVector3(gridExtent, 0, fi), c)
	}
}
