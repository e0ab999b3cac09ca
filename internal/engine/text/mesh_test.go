package text

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/globe-scene/pkg/geometry"
)

func loadFont(t *testing.T) *Font {
	t.Helper()
	f, err := DefaultFont()
	require.NoError(t, err)
	return f
}

func TestBuildEmpty(t *testing.T) {
	f := loadFont(t)
	for _, content := range []string{"", "   ", "\n\t\n"} {
		_, err := Build(f, content, Options{Size: 1, Depth: 0.1})
		assert.ErrorIs(t, err, ErrEmptyText, "content %q", content)
	}
}

func TestBuildCentredAndExtruded(t *testing.T) {
	f := loadFont(t)
	const size, depth = 0.5, 0.1
	g, err := Build(f, "Hello", Options{Size: size, Depth: depth})
	require.NoError(t, err)
	require.NotZero(t, g.TriangleCount())

	b := g.Bounds()
	c := b.Center()
	cell := float32(size) / DefaultResolution
	assert.InDelta(t, 0, c.X, float64(cell))
	assert.InDelta(t, 0, c.Y, float64(cell))
	assert.InDelta(t, 0, b.Min[2], 1e-6)
	assert.InDelta(t, depth, b.Max[2], 1e-6)

	// "Hello" has ascenders but no descenders.
	height := b.Max[1] - b.Min[1]
	assert.Greater(t, height, float32(0.3*size))
	assert.Less(t, height, float32(1.2*size))
}

func TestBuildWidthGrowsWithContent(t *testing.T) {
	f := loadFont(t)
	opts := Options{Size: 1, Depth: 0.2}
	short, err := Build(f, "Hi", opts)
	require.NoError(t, err)
	long, err := Build(f, "Hi there world", opts)
	require.NoError(t, err)

	sw := short.Bounds().Max[0] - short.Bounds().Min[0]
	lw := long.Bounds().Max[0] - long.Bounds().Min[0]
	assert.Greater(t, lw, 3*sw)
}

func TestBuildMultiline(t *testing.T) {
	f := loadFont(t)
	opts := Options{Size: 1, Depth: 0.1}
	one, err := Build(f, "Globe", opts)
	require.NoError(t, err)
	two, err := Build(f, "Globe\nGlobe", opts)
	require.NoError(t, err)

	h1 := one.Bounds().Max[1] - one.Bounds().Min[1]
	h2 := two.Bounds().Max[1] - two.Bounds().Min[1]
	assert.Greater(t, h2, 1.5*h1)
}

func TestBuildNormalsAreAxisAligned(t *testing.T) {
	f := loadFont(t)
	g, err := Build(f, "A", Options{Size: 1, Depth: 0.3, Resolution: 16})
	require.NoError(t, err)
	require.Len(t, g.Normals, g.VertexCount())

	seen := map[[3]float32]bool{}
	for _, n := range g.Normals {
		l := math32.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
		assert.InDelta(t, 1, l, 1e-6)
		seen[n] = true
	}
	assert.True(t, seen[[3]float32{0, 0, 1}], "front cap missing")
	assert.True(t, seen[[3]float32{0, 0, -1}], "back cap missing")
	assert.Len(t, seen, 6)
}

func TestBuildWindingMatchesNormals(t *testing.T) {
	f := loadFont(t)
	g, err := Build(f, "o", Options{Size: 1, Depth: 0.2, Resolution: 12})
	require.NoError(t, err)

	stored := append([][3]float32(nil), g.Normals...)
	g.ComputeVertexNormals()
	for i := range stored {
		assert.InDelta(t, stored[i][0], g.Normals[i][0], 1e-5)
		assert.InDelta(t, stored[i][1], g.Normals[i][1], 1e-5)
		assert.InDelta(t, stored[i][2], g.Normals[i][2], 1e-5)
	}
}

func TestBuildFlat(t *testing.T) {
	f := loadFont(t)
	g, err := Build(f, "T", Options{Size: 1, Resolution: 16})
	require.NoError(t, err)
	for _, p := range g.Positions {
		assert.Zero(t, p[2])
	}
}

func TestBuildBendsAroundGlobe(t *testing.T) {
	f := loadFont(t)
	g, err := Build(f, "Hello World", Options{Size: 0.3, Depth: 0.05})
	require.NoError(t, err)

	g.BendCylinder(geometry.BendOptions{Radius: 1.2, Width: geometry.DefaultBendWidth})
	for _, p := range g.Positions {
		r := math32.Hypot(p[0], p[2])
		assert.GreaterOrEqual(t, r, float32(1.2-1e-4))
		assert.LessOrEqual(t, r, float32(1.25+1e-4))
	}
}

func TestParseFontRejectsGarbage(t *testing.T) {
	_, err := ParseFont("junk", []byte("not a font"))
	assert.Error(t, err)
}
