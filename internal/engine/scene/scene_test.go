package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

func sphere(name string, r float32) *Object {
	return NewObject(name, geometry.NewSphere(r, 8, 6), NewMaterial(lighting.White))
}

func TestPickableExcludesBackdrop(t *testing.T) {
	s := New()
	earth := sphere("earth", 1)
	hidden := sphere("hidden", 1)
	hidden.Visible = false
	stars := sphere("stars", 90)

	s.Add(earth, hidden)
	s.SetBackdrop(stars)

	assert.Equal(t, []*Object{earth, hidden, stars}, s.Objects())
	assert.Equal(t, []*Object{earth}, s.Pickable())
	assert.Same(t, stars, s.Backdrop())

	s.Remove(stars)
	assert.Nil(t, s.Backdrop())
}

func TestAddIgnoresDuplicates(t *testing.T) {
	s := New()
	o := sphere("node1", 0.1)
	s.Add(o, o, nil)
	s.Add(o)
	assert.Len(t, s.Objects(), 1)

	found, ok := s.Find("node1")
	require.True(t, ok)
	assert.Same(t, o, found)

	_, ok = s.Find("missing")
	assert.False(t, ok)
}

func TestSortedDrawOrder(t *testing.T) {
	s := New()
	clouds := sphere("clouds", 1)
	clouds.RenderOrder = 1
	earth := sphere("earth", 1)
	near := sphere("near", 0.1)
	near.Material.Transparent = true
	near.Position = math.Vec3{Z: 4}
	far := sphere("far", 0.1)
	far.Material.Transparent = true
	far.Position = math.Vec3{Z: -4}

	s.Add(clouds, near, earth, far)
	got := s.Sorted(math.Vec3{Z: 5})

	names := make([]string, len(got))
	for i, o := range got {
		names[i] = o.Name
	}
	assert.Equal(t, []string{"earth", "clouds", "far", "near"}, names)
}

func TestWorldBoundingSphere(t *testing.T) {
	o := sphere("node", 0.5)
	o.Position = math.Vec3{X: 3}
	o.Scale = math.Vec3{X: 2, Y: 2, Z: 2}

	bs := o.WorldBoundingSphere()
	assert.InDelta(t, 3, bs.Center.X, 1e-5)
	assert.InDelta(t, 1, bs.Radius, 1e-4)
}

func TestMaterialOpacity(t *testing.T) {
	m := NewMaterial(lighting.White)
	m.Opacity = 0.1
	assert.Equal(t, float32(1), m.EffectiveOpacity())
	m.Transparent = true
	assert.Equal(t, float32(0.1), m.EffectiveOpacity())
}

func TestBounds(t *testing.T) {
	s := New()
	a := sphere("a", 1)
	b := sphere("b", 1)
	b.Position = math.Vec3{X: 4}
	s.Add(a, b)
	s.SetBackdrop(sphere("stars", 90))

	bounds := s.Bounds()
	assert.InDelta(t, -1, bounds.Min[0], 1e-4)
	assert.InDelta(t, 5, bounds.Max[0], 1e-4)
}
