package primitive

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jinzhu/copier"
)

// ShapeModel describes one spawnable flat shape: its type, tint, and size.
// The generated mesh is cached on first use so repeated spawns of the same
// model share collision geometry.
type ShapeModel struct {
	Type  Type2D
	Color rl.Color
	Size  rl.Vector2

	mesh *ProcMesh
}

// Mesh returns the generated mesh for this model, generating it on first call.
func (m *ShapeModel) Mesh() (*ProcMesh, error) {
	if m.mesh != nil {
		return m.mesh, nil
	}
	mesh, err := Generate2D(m.Type, m.Size)
	if err != nil {
		return nil, err
	}
	m.mesh = mesh
	return mesh, nil
}

// ShapeSet is an explicitly owned, ordered collection of shape models. Demos
// pass one into composition instead of sharing package-level state.
type ShapeSet struct {
	Models []*ShapeModel
}

// DefaultShapeSet returns the stock palette used by the 2D demo: one model per
// supported flat type, each with a distinct tint.
func DefaultShapeSet() *ShapeSet {
	return &ShapeSet{Models: []*ShapeModel{
		{Type: Square, Color: rl.NewColor(102, 204, 102, 255), Size: rl.NewVector2(0.2, 0.2)},
		{Type: Rectangle, Color: rl.NewColor(204, 153, 102, 255), Size: rl.NewVector2(0.3, 0.15)},
		{Type: Circle, Color: rl.NewColor(102, 153, 255, 255), Size: rl.NewVector2(0.2, 0.2)},
		{Type: Ellipse, Color: rl.NewColor(204, 102, 204, 255), Size: rl.NewVector2(0.3, 0.2)},
		{Type: Triangle, Color: rl.NewColor(255, 204, 102, 255), Size: rl.NewVector2(0.2, 0.2)},
		{Type: Capsule2D, Color: rl.NewColor(153, 102, 255, 255), Size: rl.NewVector2(0.15, 0.3)},
	}}
}

// Get returns the model at index i, or nil when out of range.
func (s *ShapeSet) Get(i int) *ShapeModel {
	if i < 0 || i >= len(s.Models) {
		return nil
	}
	return s.Models[i]
}

// Len returns the number of models in the set.
func (s *ShapeSet) Len() int { return len(s.Models) }

// Clone returns a deep copy of the set. Mutating the clone (colors, sizes)
// never affects the original; mesh caches are not shared either.
func (s *ShapeSet) Clone() (*ShapeSet, error) {
	out := &ShapeSet{}
	if err := copier.CopyWithOption(out, s, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}
