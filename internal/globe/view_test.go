package globe

import (
	"sync"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/globe-scene/internal/config"
	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/internal/engine/text"
	"github.com/Faultbox/globe-scene/internal/engine/texture"
	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

const (
	testWidth  = 800
	testHeight = 600
)

func newTestView(t *testing.T) *View {
	t.Helper()
	return NewView(config.Default(), testWidth, testHeight)
}

// screen projects a world point to pointer coordinates.
func screen(v *View, p math.Vec3) (int, int) {
	clip := v.camera.ViewProjection(v.projection).MulVec4(math.Vec4{p.X, p.Y, p.Z, 1})
	x := (clip[0]/clip[3] + 1) / 2 * testWidth
	y := (1 - clip[1]/clip[3]) / 2 * testHeight
	return int(math32.Round(x)), int(math32.Round(y))
}

// frontNode returns the node closest to the camera.
func frontNode(v *View) *Node {
	eye := v.camera.Position()
	best := v.nodes[0]
	for _, n := range v.nodes[1:] {
		if n.Center().Distance(eye) < best.Center().Distance(eye) {
			best = n
		}
	}
	return best
}

func TestSceneLayout(t *testing.T) {
	v := newTestView(t)
	sc := v.Scene()

	for _, name := range []string{NameEarth, NameClouds, NameAtmosphere, NameRing, NameStars, "Node 1", "Node 2", "Node 3"} {
		_, ok := sc.Find(name)
		assert.True(t, ok, "missing %s", name)
	}
	assert.Equal(t, v.stars, sc.Backdrop())
	assert.NotContains(t, sc.Pickable(), v.stars)

	require.Len(t, v.Nodes(), 3)
	for k, n := range v.Nodes() {
		assert.InDelta(t, 2*math32.Pi/3*float32(k+1), n.Orbit.Phase, 1e-5)
		assert.InDelta(t, 2, n.Center().Length(), 1e-3, "node %s sits on the ring", n.Name)
	}

	// Clouds share the planet mesh
	assert.Same(t, v.earth.Geometry, v.clouds.Geometry)
	assert.Equal(t, 1, v.clouds.RenderOrder)
	assert.False(t, v.clouds.Material.DepthTest)
	assert.InDelta(t, 0.1, v.atmosphere.Material.Opacity, 1e-6)
}

func TestSceneNamesAreReserved(t *testing.T) {
	for _, name := range []string{NameEarth, NameClouds, NameAtmosphere, NameRing, NameStars, NameCaption} {
		assert.Contains(t, config.ReservedNames, name)
	}
}

func TestNodeCannotShadowAtmosphere(t *testing.T) {
	cfg := config.Default()
	cfg.Nodes[0].Name = NameAtmosphere
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)

	// Even unvalidated, the styler keeps the real atmosphere.
	v := NewView(cfg, testWidth, testHeight)
	v.PointerMove(407, 293)
	assert.Equal(t, atmosphereColor, v.atmosphere.Material.Emissive)
	assert.True(t, v.nodes[0].Object.Material.Emissive.IsBlack())
}

func TestHoverGlobeThenMiss(t *testing.T) {
	v := newTestView(t)

	tr := v.PointerMove(407, 293)
	assert.Equal(t, NameAtmosphere, tr.Highlighted)
	assert.Equal(t, NameAtmosphere, v.Highlighted())
	assert.Equal(t, lighting.White, v.atmosphere.Material.Color)
	assert.Equal(t, atmosphereColor, v.atmosphere.Material.Emissive)

	tr = v.PointerMove(408, 294)
	assert.Empty(t, tr.Unhighlighted, "same object is not unhighlighted")

	tr = v.PointerMove(0, 0)
	assert.Equal(t, NameAtmosphere, tr.Unhighlighted)
	assert.Empty(t, v.Highlighted())
	assert.Equal(t, atmosphereColor, v.atmosphere.Material.Color)
	assert.True(t, v.atmosphere.Material.Emissive.IsBlack())
}

func TestHoverNodeThenGlobe(t *testing.T) {
	v := newTestView(t)
	n := frontNode(v)

	px, py := screen(v, n.Center())
	tr := v.PointerMove(px, py)
	require.Equal(t, n.Name, tr.Highlighted)
	assert.Equal(t, lighting.White, n.Object.Material.Emissive)

	tr = v.PointerMove(407, 293)
	assert.Equal(t, n.Name, tr.Unhighlighted)
	assert.Equal(t, NameAtmosphere, tr.Highlighted)
	assert.True(t, n.Object.Material.Emissive.IsBlack())
	assert.Equal(t, lighting.White, n.Object.Material.Color)
}

func TestClickNode(t *testing.T) {
	v := newTestView(t)
	n := frontNode(v)

	var clicked []*Node
	v.OnNodeClick = func(n *Node) { clicked = append(clicked, n) }

	px, py := screen(v, n.Center())
	got, ok := v.Click(px, py)
	require.True(t, ok)
	assert.Same(t, n, got)
	assert.Equal(t, []*Node{n}, clicked)
}

func TestClickGlobeIsNotNode(t *testing.T) {
	v := newTestView(t)
	called := false
	v.OnNodeClick = func(*Node) { called = true }

	_, ok := v.Click(407, 293)
	assert.False(t, ok)
	_, ok = v.Click(0, 0)
	assert.False(t, ok)
	assert.False(t, called)
}

func TestUpdateSpins(t *testing.T) {
	v := newTestView(t)
	v.Update(1.0 / 60)

	assert.InDelta(t, 0.001, v.earth.Rotation.Y, 1e-6)
	assert.InDelta(t, 0.0017, v.clouds.Rotation.Y, 1e-6)
	assert.InDelta(t, 0.23, v.earth.Rotation.X, 1e-6)
	for _, n := range v.nodes {
		assert.InDelta(t, 0.0005, n.Object.Rotation.Z, 1e-6)
	}

	// Half a second is thirty frames
	v.Update(0.5)
	assert.InDelta(t, 0.031, v.earth.Rotation.Y, 1e-5)
}

func TestNodesOrbit(t *testing.T) {
	v := newTestView(t)
	n := v.nodes[0]
	before := n.Center()
	v.Update(10)
	after := n.Center()

	assert.Greater(t, before.Distance(after), float32(0.1))
	assert.InDelta(t, 2, after.Length(), 1e-3)
}

func TestResize(t *testing.T) {
	v := newTestView(t)
	v.Resize(1000, 500)
	assert.InDelta(t, 2, v.projection.Aspect, 1e-6)

	v.Resize(0, 500)
	assert.InDelta(t, 2, v.projection.Aspect, 1e-6)
	assert.Equal(t, 1000, v.width)
}

func TestAttachText(t *testing.T) {
	cfg := config.Default()
	cfg.Text.Enabled = true
	cfg.Text.Content = "Hello World"
	v := NewView(cfg, testWidth, testHeight)

	f, err := text.DefaultFont()
	require.NoError(t, err)
	require.NoError(t, v.AttachText(f))

	caption := v.Caption()
	require.NotNil(t, caption)
	_, ok := v.Scene().Find(NameCaption)
	assert.True(t, ok)

	lo, hi := cfg.Text.BendRadius, cfg.Text.BendRadius+cfg.Text.Depth
	for _, p := range caption.Geometry.Positions {
		r := math32.Hypot(p[0], p[2])
		assert.True(t, r >= lo-1e-4 && r <= hi+1e-4, "radius %v outside [%v, %v]", r, lo, hi)
	}

	assert.Empty(t, v.Retired())

	// Replacing keeps a single caption
	require.NoError(t, v.AttachText(f))
	assert.Equal(t, []*geometry.Geometry{caption.Geometry}, v.Retired())
	assert.Empty(t, v.Retired())
	count := 0
	for _, o := range v.Scene().Objects() {
		if o.Name == NameCaption {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAttachTextDisabledOrEmpty(t *testing.T) {
	f, err := text.DefaultFont()
	require.NoError(t, err)

	v := newTestView(t)
	require.NoError(t, v.AttachText(f))
	assert.Nil(t, v.Caption())

	cfg := config.Default()
	cfg.Text.Enabled = true
	cfg.Text.Content = "  "
	v = NewView(cfg, testWidth, testHeight)
	assert.ErrorIs(t, v.AttachText(f), text.ErrEmptyText)
	assert.Nil(t, v.Caption())
}

func TestApplyTextures(t *testing.T) {
	v := newTestView(t)
	assert.False(t, v.clouds.Visible)
	assert.False(t, v.stars.Visible)

	earth := &texture.Image{Name: "earth", Width: 1, Height: 1, Pix: []byte{1, 2, 3, 255}}
	v.ApplyTextures(map[string]*texture.Image{v.cfg.Scene.EarthTexture: earth})
	assert.Same(t, earth, v.earth.Material.Texture)
	assert.Equal(t, lighting.White, v.earth.Material.Color)
	assert.False(t, v.clouds.Visible)

	clouds := &texture.Image{Name: "clouds", Width: 1, Height: 1, Pix: []byte{255, 255, 255, 128}}
	stars := &texture.Image{Name: "stars", Width: 1, Height: 1, Pix: []byte{0, 0, 0, 255}}
	v.ApplyTextures(map[string]*texture.Image{
		v.cfg.Scene.EarthTexture:  earth,
		v.cfg.Scene.CloudsTexture: clouds,
		v.cfg.Scene.StarsTexture:  stars,
	})
	assert.True(t, v.clouds.Visible)
	assert.True(t, v.stars.Visible)
	assert.NotContains(t, v.Scene().Pickable(), v.stars)
}

func TestConcurrentUpdateAndHover(t *testing.T) {
	v := newTestView(t)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			v.Update(1.0 / 60)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			v.PointerMove(400+i, 300)
		}
	}()
	wg.Wait()
	assert.Equal(t, NameAtmosphere, v.Highlighted())
}
