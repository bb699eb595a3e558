package primitive

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Registry caches one unit-sized mesh per primitive type and draws instances
// of them with per-entity transform and tint. Meshes are created on first
// draw so GPU allocation happens after the window/GL context exists.
type Registry struct {
	meshes   map[string]meshEntry
	mtl      rl.Material
	mtlReady bool
	viewPos  rl.Vector3
	lightDir rl.Vector3
}

// meshEntry pairs a cached mesh with its model-space centering offset.
// proc keeps the CPU-side buffers of uploaded flat meshes alive.
type meshEntry struct {
	mesh   rl.Mesh
	offset rl.Vector3
	proc   *ProcMesh
}

// NewRegistry returns an empty registry. Meshes and the shared material are
// allocated lazily.
func NewRegistry() *Registry {
	return &Registry{
		meshes:   make(map[string]meshEntry),
		lightDir: rl.NewVector3(0.4, 1, 0.3),
	}
}

// SetView sets the camera position and direction-to-light for this frame.
// Call once per frame before drawing so the lit shader shades correctly.
func (r *Registry) SetView(viewPos, lightDir rl.Vector3) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

func (r *Registry) material() rl.Material {
	if !r.mtlReady {
		r.mtl = rl.LoadMaterialDefault()
		if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
			r.mtl.Shader = shader
		}
		r.mtlReady = true
	}
	return r.mtl
}

// ensure3D creates the unit mesh for a 3D type on first use. Cylinder and cone
// come out of the generator with their base at Y=0; the offset recenters them
// so the scene position is the primitive's center. Capsule has no generator in
// the host engine and renders as a cylinder; Teapot renders as the engine's
// decorative knot mesh.
func (r *Registry) ensure3D(t Type3D) (meshEntry, bool) {
	key := t.String()
	if e, ok := r.meshes[key]; ok {
		return e, true
	}
	var e meshEntry
	switch t {
	case Cube:
		e.mesh = rl.GenMeshCube(1, 1, 1)
	case Sphere:
		e.mesh = rl.GenMeshSphere(0.5, 24, 24)
	case Capsule:
		e.mesh = rl.GenMeshCylinder(0.5, 1, 16)
		e.offset = rl.NewVector3(0, -0.5, 0)
	case Cylinder:
		e.mesh = rl.GenMeshCylinder(0.5, 1, 24)
		e.offset = rl.NewVector3(0, -0.5, 0)
	case Cone:
		e.mesh = rl.GenMeshCone(0.5, 1, 24)
		e.offset = rl.NewVector3(0, -0.5, 0)
	case Plane, InfinitePlane:
		e.mesh = rl.GenMeshPlane(1, 1, 1, 1)
	case Torus:
		e.mesh = rl.GenMeshTorus(0.25, 1, 16, 24)
	case Teapot:
		e.mesh = rl.GenMeshKnot(1, 3, 16, 64)
	default:
		return meshEntry{}, false
	}
	r.meshes[key] = e
	return e, true
}

// ensure2D creates and uploads the unit flat mesh for a 2D type on first use.
// Ellipse shares the circle mesh: it is a circle under non-uniform scale.
// Capsule2D is cached per aspect ratio instead (see ensureCapsule2D).
func (r *Registry) ensure2D(t Type2D) (meshEntry, bool) {
	gen := t
	if t == Ellipse {
		gen = Circle
	}
	key := gen.String()
	if e, ok := r.meshes[key]; ok {
		return e, true
	}
	proc, err := Generate2D(gen, rl.NewVector2(1, 1))
	if err != nil {
		return meshEntry{}, false
	}
	e := r.upload(proc)
	r.meshes[key] = e
	return e, true
}

// ensureCapsule2D caches one capsule mesh per height/width aspect ratio.
// A capsule cannot share a unit mesh across sizes: non-uniform scale would
// squash its circular caps into ellipses, so the mesh is generated at the
// target aspect and drawn under uniform scale.
func (r *Registry) ensureCapsule2D(aspect float32) (meshEntry, bool) {
	key := fmt.Sprintf("capsule2d@%.3f", aspect)
	if e, ok := r.meshes[key]; ok {
		return e, true
	}
	proc, err := Generate2D(Capsule2D, rl.NewVector2(1, aspect))
	if err != nil {
		return meshEntry{}, false
	}
	e := r.upload(proc)
	r.meshes[key] = e
	return e, true
}

func (r *Registry) upload(proc *ProcMesh) meshEntry {
	mesh := rl.Mesh{
		VertexCount:   int32(proc.VertexCount()),
		TriangleCount: int32(len(proc.Indices) / 3),
	}
	mesh.Vertices = &proc.Positions[0]
	mesh.Normals = &proc.Normals[0]
	mesh.Texcoords = &proc.Texcoords[0]
	mesh.Indices = &proc.Indices[0]
	rl.UploadMesh(&mesh, false)
	return meshEntry{mesh: mesh, proc: proc}
}

// Draw3D draws one instance of a 3D primitive. rotationDeg is about axis, in
// degrees. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw3D(t Type3D, position, axis rl.Vector3, rotationDeg float32, scale rl.Vector3, color rl.Color) {
	e, ok := r.ensure3D(t)
	if !ok {
		return
	}
	r.drawEntry(e, position, axis, rotationDeg, scale, color)
}

// Draw2D draws one instance of a flat primitive. Backface culling is disabled
// for the draw so the shape stays visible from both sides.
func (r *Registry) Draw2D(t Type2D, position, axis rl.Vector3, rotationDeg float32, scale rl.Vector3, color rl.Color) {
	var e meshEntry
	var ok bool
	if t == Capsule2D {
		var aspect float32
		aspect, scale = capsule2DParams(scale)
		e, ok = r.ensureCapsule2D(aspect)
	} else {
		e, ok = r.ensure2D(t)
	}
	if !ok {
		return
	}
	// Disc meshes lie in the XZ plane, so the caller's Y extent applies to
	// the mesh's Z axis (the conventional 90-degree X rotation maps it back).
	if t == Circle || t == Ellipse {
		scale = rl.NewVector3(scale.X, scale.Z, scale.Y)
	}
	rl.DisableBackfaceCulling()
	r.drawEntry(e, position, axis, rotationDeg, scale, color)
	rl.EnableBackfaceCulling()
}

func (r *Registry) drawEntry(e meshEntry, position, axis rl.Vector3, rotationDeg float32, scale rl.Vector3, color rl.Color) {
	mtl := r.material()
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setLitUniforms(mtl.Shader)

	if scale.X == 0 {
		scale.X = 1
	}
	if scale.Y == 0 {
		scale.Y = 1
	}
	if scale.Z == 0 {
		scale.Z = 1
	}
	// Order: recenter the mesh, scale, rotate, then translate to position.
	transform := rl.MatrixScale(scale.X, scale.Y, scale.Z)
	if e.offset.X != 0 || e.offset.Y != 0 || e.offset.Z != 0 {
		transform = rl.MatrixMultiply(rl.MatrixTranslate(e.offset.X, e.offset.Y, e.offset.Z), transform)
	}
	if rotationDeg != 0 {
		transform = rl.MatrixMultiply(transform, rl.MatrixRotate(axis, rotationDeg*math32.Pi/180))
	}
	transform = rl.MatrixMultiply(transform, rl.MatrixTranslate(position.X, position.Y, position.Z))
	rl.DrawMesh(e.mesh, mtl, transform)
}

// capsule2DParams turns a capsule's requested extents into the mesh aspect
// ratio (height over width) and the uniform draw scale that realizes them
// without distorting the caps.
func capsule2DParams(scale rl.Vector3) (aspect float32, drawScale rl.Vector3) {
	w, h := scale.X, scale.Y
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	return h / w, rl.NewVector3(w, w, scale.Z)
}

func (r *Registry) setLitUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, []float32{r.viewPos.X, r.viewPos.Y, r.viewPos.Z}, rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, []float32{r.lightDir.X, r.lightDir.Y, r.lightDir.Z}, rl.ShaderUniformVec3, 1)
	}
}

// Minimal lit shader: directional diffuse plus a fixed ambient floor. Shares
// raylib's standard vertex attributes.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragNormal;
void main() {
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * matModel * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
out vec4 finalColor;
void main() {
  float ndl = max(dot(normalize(fragNormal), normalize(lightDir)), 0.0);
  vec3 lit = colDiffuse.rgb * (0.25 + 0.75 * ndl);
  finalColor = vec4(lit, colDiffuse.a);
}
`
)
