package picking

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/Faultbox/globe-scene/internal/engine/scene"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// Hit is a ray intersection with a scene object.
type Hit struct {
	Object *scene.Object
	// Distance from the ray origin (the camera) in world units.
	Distance float32
	Point    math.Vec3
}

// Raycaster intersects a world ray with scene objects.
type Raycaster struct {
	Ray Ray
	// Hits closer than Near or farther than Far are discarded. Far <= 0 means unbounded.
	Near, Far float32
}

// NewRaycaster creates a raycaster without distance limits.
func NewRaycaster(r Ray) *Raycaster {
	return &Raycaster{Ray: r}
}

// Intersect tests every target and returns one hit per intersected object,
// nearest first. Objects at equal distance keep their input order.
func (rc *Raycaster) Intersect(targets []*scene.Object) []Hit {
	var hits []Hit
	for _, o := range targets {
		if h, ok := rc.IntersectObject(o); ok {
			hits = append(hits, h)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// IntersectObject returns the nearest triangle hit on a single object.
func (rc *Raycaster) IntersectObject(o *scene.Object) (Hit, bool) {
	if o == nil || o.Geometry == nil || o.Geometry.VertexCount() == 0 {
		return Hit{}, false
	}

	// Cheap reject against the world bounding sphere.
	bs := o.WorldBoundingSphere()
	if _, ok := rc.Ray.IntersectSphere(bs.Center, bs.Radius); !ok {
		return Hit{}, false
	}

	side := scene.FrontSide
	if o.Material != nil {
		side = o.Material.Side
	}

	world := o.WorldMatrix()
	local := rc.Ray.Transform(world.Inverse())
	g := o.Geometry

	// Thin shapes like the ring reject most rays at their local box.
	if _, ok := local.IntersectAABB(AABB(g.Bounds())); !ok {
		return Hit{}, false
	}

	best := math32.Inf(1)
	found := false
	for i := 0; i < g.TriangleCount(); i++ {
		ia, ib, ic := g.Triangle(i)
		t, ok := local.IntersectTriangle(
			math.V3(g.Positions[ia]), math.V3(g.Positions[ib]), math.V3(g.Positions[ic]), side)
		if !ok || t >= best {
			continue
		}
		best, found = t, true
	}
	if !found {
		return Hit{}, false
	}

	point := world.TransformVec3(local.At(best))
	dist := point.Distance(rc.Ray.Origin)
	if dist < rc.Near || (rc.Far > 0 && dist > rc.Far) {
		return Hit{}, false
	}
	return Hit{Object: o, Distance: dist, Point: point}, true
}

// Nearest returns the closest hit, if any.
func Nearest(hits []Hit) (Hit, bool) {
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}
