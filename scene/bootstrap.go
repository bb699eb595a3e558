package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scenekit/physics"
	"scenekit/primitive"
)

// Default ground extents, matching a small demo stage.
var defaultGroundSize = rl.NewVector2(10, 10)

// skyboxPaths are tried in order so the skybox is found whether a demo runs
// from the repo root or its own cmd directory.
var skyboxPaths = []string{
	"assets/skybox/skybox.png",
	"../../assets/skybox/skybox.png",
}

// AddCamera points the scene camera: perspective, at position, looking at
// target, Y up.
func (s *Scene) AddCamera(position, target rl.Vector3) {
	s.Camera.Position = position
	s.Camera.Target = target
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = 60
	s.Camera.Projection = rl.CameraPerspective
}

// AddDirectionalLight sets the direction-to-light used by the lit shader.
func (s *Scene) AddDirectionalLight(dir rl.Vector3) {
	s.LightDir = dir
}

// AddGround composes a static plane entity of the given XZ extents with a
// collider, registered in the supplied world so dynamic bodies rest on it.
func (s *Scene) AddGround(w *physics.World, size rl.Vector2) (*Entity, error) {
	if size.X == 0 && size.Y == 0 {
		size = defaultGroundSize
	}
	body := physics.NewBody(rl.NewVector3(0, 0, 0), 0, true)
	e, err := s.Compose3D(CreationOptions3D{
		Name:            "ground",
		Type:            primitive.Plane,
		Color:           rl.NewColor(90, 110, 90, 255),
		Size:            rl.NewVector3(size.X, 1, size.Y),
		IncludeCollider: true,
		Body:            body,
	})
	if err != nil {
		return nil, err
	}
	w.Add(body)
	return e, nil
}

// AddSkybox tries the conventional skybox asset paths and installs the first
// one that exists. Absent assets leave the scene without a skybox.
func (s *Scene) AddSkybox() {
	for _, p := range skyboxPaths {
		s.SetSkybox(p)
		if s.skyboxPath != "" {
			return
		}
	}
}

// NewBase composes the standard demo stage: camera, directional light,
// collidable ground, and skybox (when the asset exists) in a fresh scene.
func NewBase(w *physics.World) (*Scene, error) {
	s := New()
	s.AddCamera(rl.NewVector3(6, 6, 6), rl.NewVector3(0, 0, 0))
	s.AddDirectionalLight(rl.NewVector3(0.4, 1, 0.3))
	if _, err := s.AddGround(w, defaultGroundSize); err != nil {
		return nil, err
	}
	s.AddSkybox()
	return s, nil
}
