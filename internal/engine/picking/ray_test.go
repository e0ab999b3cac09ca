package picking

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/internal/engine/scene"
	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

func ball(name string, r float32, pos math.Vec3) *scene.Object {
	o := scene.NewObject(name, geometry.NewSphere(r, 24, 16), scene.NewMaterial(lighting.White))
	o.Position = pos
	return o
}

func cameraRay(ndcX, ndcY float32) Ray {
	eye := math.Vec3{Z: 5}
	view := math.LookAt(eye, math.Vec3{}, math.Vec3{Y: 1})
	proj := math.Perspective(75*math32.Pi/180, 16.0/9.0, 0.1, 1000)
	return FromCamera(ndcX, ndcY, proj.Mul(view).Inverse(), eye)
}

func TestNDC(t *testing.T) {
	tests := []struct {
		px, py, wantX, wantY float32
	}{
		{400, 300, 0, 0},
		{0, 0, -1, 1},
		{800, 600, 1, -1},
		{200, 450, -0.5, -0.5},
	}
	for _, tt := range tests {
		x, y := NDC(tt.px, tt.py, 800, 600)
		assert.InDelta(t, tt.wantX, x, 1e-6)
		assert.InDelta(t, tt.wantY, y, 1e-6)
	}
}

func TestFromCameraCenter(t *testing.T) {
	r := cameraRay(0, 0)
	assert.InDelta(t, 5, r.Origin.Z, 1e-5)
	assert.InDelta(t, 0, r.Direction.X, 1e-4)
	assert.InDelta(t, 0, r.Direction.Y, 1e-4)
	assert.InDelta(t, -1, r.Direction.Z, 1e-4)

	up := cameraRay(0, 0.5)
	assert.Greater(t, up.Direction.Y, float32(0))
}

func TestBackdropOnlyIsMiss(t *testing.T) {
	s := scene.New()
	stars := ball("stars", 90, math.Vec3{})
	stars.Material.Side = scene.BackSide
	s.SetBackdrop(stars)

	rc := NewRaycaster(cameraRay(0.01, 0.013))

	// The backdrop itself is hittable from inside...
	_, ok := rc.IntersectObject(stars)
	require.True(t, ok)

	// ...but it never reaches pointer picking.
	_, ok = Nearest(rc.Intersect(s.Pickable()))
	assert.False(t, ok)
}

func TestNearestOfOverlappingObjects(t *testing.T) {
	back := ball("earth", 1, math.Vec3{})
	front := ball("node1", 0.2, math.Vec3{Z: 2})
	rc := NewRaycaster(cameraRay(0.01, 0.013))

	for _, order := range [][]*scene.Object{{back, front}, {front, back}} {
		hits := rc.Intersect(order)
		require.Len(t, hits, 2)
		assert.Same(t, front, hits[0].Object)
		assert.Same(t, back, hits[1].Object)
		assert.InDelta(t, 2.8, hits[0].Distance, 0.02)
		assert.InDelta(t, 4, hits[1].Distance, 0.02)
	}
}

func TestAtmosphereShellWinsOverGlobe(t *testing.T) {
	earth := ball("earth", 1, math.Vec3{})
	atmosphere := ball("earthAtmosphere", 1.01, math.Vec3{})
	atmosphere.Material.Transparent = true

	hit, ok := Nearest(NewRaycaster(cameraRay(0.05, 0.05)).Intersect([]*scene.Object{earth, atmosphere}))
	require.True(t, ok)
	assert.Equal(t, "earthAtmosphere", hit.Object.Name)
}

func TestMissOffToTheSide(t *testing.T) {
	earth := ball("earth", 1, math.Vec3{})
	hits := NewRaycaster(cameraRay(0.9, 0.9)).Intersect([]*scene.Object{earth})
	assert.Empty(t, hits)
}

func TestTransformedObjectIsHit(t *testing.T) {
	// Geometry sits at the origin; the object transform moves and scales it.
	node := ball("node2", 0.1, math.Vec3{Y: 1})
	node.Scale = math.Vec3{X: 3, Y: 3, Z: 3}

	r := Ray{Origin: math.Vec3{X: 0.01, Y: 1, Z: 5}, Direction: math.Vec3{Z: -1}}
	hit, ok := NewRaycaster(r).IntersectObject(node)
	require.True(t, ok)
	assert.InDelta(t, 4.7, hit.Distance, 0.01)
	assert.InDelta(t, 0.3, hit.Point.Z, 0.01)
}

func TestFrontSideIgnoresInsideHits(t *testing.T) {
	shell := ball("shell", 2, math.Vec3{})
	r := Ray{Direction: math.Vec3{X: 1, Y: 0.01, Z: 0.013}.Normalize()}

	_, ok := NewRaycaster(r).IntersectObject(shell)
	assert.False(t, ok)

	shell.Material.Side = scene.DoubleSide
	hit, ok := NewRaycaster(r).IntersectObject(shell)
	require.True(t, ok)
	assert.InDelta(t, 2, hit.Distance, 0.02)
}

func TestNearFarLimits(t *testing.T) {
	earth := ball("earth", 1, math.Vec3{})
	rc := &Raycaster{Ray: cameraRay(0.01, 0.013), Far: 3}
	_, ok := rc.IntersectObject(earth)
	assert.False(t, ok)

	rc.Far = 0
	rc.Near = 4.5
	_, ok = rc.IntersectObject(earth)
	assert.False(t, ok)
}

func TestIntersectSphere(t *testing.T) {
	r := Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}
	d, ok := r.IntersectSphere(math.Vec3{}, 1)
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-5)

	_, ok = r.IntersectSphere(math.Vec3{X: 3}, 1)
	assert.False(t, ok)

	_, ok = r.IntersectSphere(math.Vec3{Z: 10}, 1)
	assert.False(t, ok, "sphere behind the origin")
}

func TestIntersectTriangleSides(t *testing.T) {
	a, b, c := math.Vec3{X: -1, Y: -1}, math.Vec3{X: 1, Y: -1}, math.Vec3{Y: 1}
	toward := Ray{Origin: math.Vec3{Z: 1}, Direction: math.Vec3{Z: -1}}
	away := Ray{Origin: math.Vec3{Z: -1}, Direction: math.Vec3{Z: 1}}

	_, ok := toward.IntersectTriangle(a, b, c, scene.FrontSide)
	assert.True(t, ok)
	_, ok = away.IntersectTriangle(a, b, c, scene.FrontSide)
	assert.False(t, ok)
	_, ok = away.IntersectTriangle(a, b, c, scene.BackSide)
	assert.True(t, ok)
	_, ok = toward.IntersectTriangle(a, b, c, scene.BackSide)
	assert.False(t, ok)
	_, ok = away.IntersectTriangle(a, b, c, scene.DoubleSide)
	assert.True(t, ok)
}

func TestIntersectAABB(t *testing.T) {
	box := AABB{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}}
	r := Ray{Origin: math.Vec3{X: -5}, Direction: math.Vec3{X: 1}}
	d, ok := r.IntersectAABB(box)
	require.True(t, ok)
	assert.InDelta(t, 4, d, 1e-5)

	inside := Ray{Direction: math.Vec3{Y: 1}}
	d, ok = inside.IntersectAABB(box)
	require.True(t, ok)
	assert.InDelta(t, 1, d, 1e-5)

	miss := Ray{Origin: math.Vec3{X: -5, Y: 3}, Direction: math.Vec3{X: 1}}
	_, ok = miss.IntersectAABB(box)
	assert.False(t, ok)
}
