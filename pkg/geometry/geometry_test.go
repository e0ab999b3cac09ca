package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/globe-scene/pkg/math"
)

func TestSphereLayout(t *testing.T) {
	g := NewSphere(1, 8, 6)

	require.Equal(t, 9*7, g.VertexCount())
	// Pole rows contribute one triangle per segment, the rest two.
	assert.Equal(t, 8*(2*6-2), g.TriangleCount())
	assert.Len(t, g.Normals, g.VertexCount())
	assert.Len(t, g.UVs, g.VertexCount())

	for _, p := range g.Positions {
		assert.InDelta(t, 1, math.V3(p).Length(), 1e-5)
	}
}

func TestSphereWindingFacesOutward(t *testing.T) {
	g := NewSphere(2, 16, 12)
	for i := 0; i < g.TriangleCount(); i++ {
		ia, ib, ic := g.Triangle(i)
		a, b, c := math.V3(g.Positions[ia]), math.V3(g.Positions[ib]), math.V3(g.Positions[ic])
		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d faces inward", i)
	}
}

func TestTorusLayout(t *testing.T) {
	g := NewTorus(2, 0.01, 10, 128, 2*math32.Pi)

	require.Equal(t, 11*129, g.VertexCount())
	assert.Equal(t, 10*128*2, g.TriangleCount())

	b := g.Bounds()
	assert.InDelta(t, 2.01, b.Max[0], 1e-4)
	assert.InDelta(t, -2.01, b.Min[1], 1e-4)
	assert.InDelta(t, 0.01, b.Max[2], 1e-3)
}

func TestTranslateBumpsVersion(t *testing.T) {
	g := NewSphere(0.1, 8, 8)
	g.Translate(2, 0, 0)

	assert.Equal(t, uint64(1), g.Version)
	s := g.BoundingSphere()
	assert.InDelta(t, 2, s.Center.X, 1e-5)
	assert.InDelta(t, 0.1, s.Radius, 1e-4)
}

func TestComputeVertexNormalsNonIndexed(t *testing.T) {
	g := &Geometry{Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}
	g.ComputeVertexNormals()

	for _, n := range g.Normals {
		assert.Equal(t, [3]float32{0, 0, 1}, n)
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := NewSphere(1, 4, 4)
	c := g.Clone()
	c.Positions[0][0] = 42

	assert.NotEqual(t, g.Positions[0][0], c.Positions[0][0])
	assert.Equal(t, g.Indices, c.Indices)
}

func TestArc(t *testing.T) {
	p := Arc(2, math32.Pi/2)
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, 2, p[1], 1e-5)
}
