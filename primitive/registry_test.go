package primitive

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapsule2DParamsKeepScaleUniform(t *testing.T) {
	aspect, drawScale := capsule2DParams(rl.NewVector3(0.15, 0.3, 1))
	assert.InDelta(t, 2.0, aspect, 1e-6)
	assert.Equal(t, rl.NewVector3(0.15, 0.15, 1), drawScale)

	// Zero extents fall back to 1 before the ratio is taken.
	aspect, drawScale = capsule2DParams(rl.Vector3{})
	assert.InDelta(t, 1.0, aspect, 1e-6)
	assert.Equal(t, rl.NewVector3(1, 1, 0), drawScale)
}

func TestCapsuleMeshCapsStayRoundAtAnyAspect(t *testing.T) {
	// The capsule mesh is generated at its target aspect (width 1), so every
	// cap rim vertex sits exactly one cap radius from its cap center.
	for _, aspect := range []float32{1.5, 2, 4} {
		mesh, err := Generate2D(Capsule2D, rl.NewVector2(1, aspect))
		require.NoError(t, err)

		const r = 0.5
		half := aspect/2 - r
		pts := mesh.Points()
		// Vertex 0 is the fan centroid; then one rim arc per cap.
		top := pts[1 : capSegments+2]
		bottom := pts[capSegments+2:]
		for _, p := range top {
			d := math32.Hypot(p.X, p.Y-half)
			assert.InDelta(t, r, d, 1e-4, "aspect %v top cap", aspect)
		}
		for _, p := range bottom {
			d := math32.Hypot(p.X, p.Y+half)
			assert.InDelta(t, r, d, 1e-4, "aspect %v bottom cap", aspect)
		}
	}
}
