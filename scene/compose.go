package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"scenekit/collider"
	"scenekit/physics"
	"scenekit/physics2d"
	"scenekit/primitive"
)

// defaultColor is the albedo used when creation options carry no color.
var defaultColor = rl.NewColor(150, 150, 150, 255)

// CreationOptions3D describes one 3D primitive entity to compose. Consumed
// immediately by Compose3D; not retained.
type CreationOptions3D struct {
	Name  string
	Type  primitive.Type3D
	Color rl.Color
	// Size is the primitive's full extents; zero takes the package default.
	Size rl.Vector3
	// Group is the render-group tag used for counting and bulk removal.
	Group string
	// IncludeCollider requests a collider; it only takes effect when Body is
	// supplied, since the shape is attached to the body.
	IncludeCollider bool
	Body            *physics.Body
}

// CreationOptions2D describes one flat primitive entity. Either Model or
// Type/Color/Size is used: a model brings its own cached mesh.
type CreationOptions2D struct {
	Name  string
	Model *primitive.ShapeModel
	Type  primitive.Type2D
	Color rl.Color
	Size  rl.Vector2
	// Depth is the collider's Z extent; zero takes primitive.DefaultDepth.
	Depth float32
	Group string

	// IncludeCollider requests a collider; it takes effect when Space is
	// supplied, which then owns the created plugin body.
	IncludeCollider bool
	Space           *physics2d.Space
	Mass            float32
	Static          bool
	// Position is needed up front for 2D because the plugin body is created
	// at composition time.
	Position rl.Vector2
}

// Compose3D builds an entity from opts and inserts it into the scene. When a
// collider is requested and a body supplied, the mapped shape is attached to
// the body (mutating it) before the body is wired into the entity; Torus and
// Teapot simply end up with a shapeless body.
func (s *Scene) Compose3D(opts CreationOptions3D) (*Entity, error) {
	size := opts.Size
	if size.X == 0 && size.Y == 0 && size.Z == 0 {
		size = s.Defs.SizeFor(opts.Type.String(), primitive.DefaultSize3D)
	}
	color := opts.Color
	if color == (rl.Color{}) {
		color = s.Defs.ColorFor(opts.Type.String(), defaultColor)
	}
	e := &Entity{
		ID:      uuid.New(),
		Name:    opts.Name,
		Group:   opts.Group,
		Color:   color,
		Visible: true,
		Type3D:  opts.Type,
		Transform: Transform{
			RotationAxis: rl.NewVector3(0, 1, 0),
			Scale:        size,
		},
	}
	if opts.Body != nil {
		if opts.IncludeCollider {
			shape, err := collider.For3D(opts.Type, size)
			if err != nil {
				return nil, err
			}
			if shape != nil {
				opts.Body.SetShape(shape)
			}
		}
		e.Body = opts.Body
		e.Transform.Position = opts.Body.Position
	}
	s.Add(e)
	return e, nil
}

// Compose2D builds a flat entity from opts and inserts it into the scene.
// The generated mesh is kept on the entity: it is the source geometry for
// convex-hull colliders. Circle and ellipse entities get a 90-degree rotation
// about X so the engine's up-facing disc faces the camera plane.
func (s *Scene) Compose2D(opts CreationOptions2D) (*Entity, error) {
	t, color, size := opts.Type, opts.Color, opts.Size
	var mesh *primitive.ProcMesh
	var err error
	if opts.Model != nil {
		t, color, size = opts.Model.Type, opts.Model.Color, opts.Model.Size
		mesh, err = opts.Model.Mesh()
	} else {
		mesh, err = primitive.Generate2D(t, size)
	}
	if err != nil {
		return nil, err
	}
	size = primitive.SizeOr2D(size)
	if color == (rl.Color{}) {
		color = s.Defs.ColorFor(t.String(), defaultColor)
	}

	e := &Entity{
		ID:      uuid.New(),
		Name:    opts.Name,
		Group:   opts.Group,
		Color:   color,
		Visible: true,
		Is2D:    true,
		Type2D:  t,
		Mesh:    mesh,
		Transform: Transform{
			Position: rl.NewVector3(opts.Position.X, opts.Position.Y, 0),
			Scale:    rl.NewVector3(size.X, size.Y, 1),
		},
	}
	if t == primitive.Circle || t == primitive.Ellipse {
		e.Transform.RotationAxis = rl.NewVector3(1, 0, 0)
		e.Transform.RotationDeg = 90
	}

	if opts.IncludeCollider && opts.Space != nil {
		shape, err := collider.For2D(t, size, opts.Depth)
		if err != nil {
			return nil, err
		}
		body, err := opts.Space.AddBody(shape, opts.Position, opts.Mass, opts.Static)
		if err != nil {
			return nil, err
		}
		e.Body2D = body
	}
	s.Add(e)
	return e, nil
}
