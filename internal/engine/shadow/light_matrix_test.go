package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

func project(m math.Mat4, p math.Vec3) math.Vec3 {
	v := m.MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})
	return math.Vec3{X: v[0] / v[3], Y: v[1] / v[3], Z: v[2] / v[3]}
}

func TestLightMatrixCoversBounds(t *testing.T) {
	bounds := geometry.Bounds{Min: [3]float32{-2.1, -2.1, -2.1}, Max: [3]float32{2.1, 2.1, 2.1}}
	toLight := math.Vec3{X: 50, Z: 30}.Normalize().Array()
	m := LightMatrix(toLight, bounds)

	c := project(m, math.Vec3{})
	assert.InDelta(t, 0, c.X, 1e-4)
	assert.InDelta(t, 0, c.Y, 1e-4)

	for _, x := range []float32{-2.1, 2.1} {
		for _, y := range []float32{-2.1, 2.1} {
			for _, z := range []float32{-2.1, 2.1} {
				p := project(m, math.Vec3{X: x, Y: y, Z: z})
				assert.True(t, p.X >= -1 && p.X <= 1, "x %v", p)
				assert.True(t, p.Y >= -1 && p.Y <= 1, "y %v", p)
				assert.True(t, p.Z >= -1 && p.Z <= 1, "z %v", p)
			}
		}
	}
}

func TestLightMatrixNearerIsShallower(t *testing.T) {
	bounds := geometry.Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}}
	m := LightMatrix([3]float32{1, 0, 0}, bounds)

	near := project(m, math.Vec3{X: 1})
	far := project(m, math.Vec3{X: -1})
	assert.Less(t, near.Z, far.Z)
}

func TestLightMatrixVerticalLight(t *testing.T) {
	bounds := geometry.Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}}
	m := LightMatrix([3]float32{0, 1, 0}, bounds)

	p := project(m, math.Vec3{})
	assert.False(t, p.X != p.X, "NaN from degenerate up vector")
	assert.InDelta(t, 0, p.X, 1e-4)
}
