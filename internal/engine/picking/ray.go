// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/globe-scene/internal/engine/scene"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

const epsilon = 1e-7

// NDC converts pixel coordinates to normalized device coordinates (-1 to 1, Y up).
func NDC(px, py, width, height float32) (x, y float32) {
	x = (px/width)*2 - 1
	y = -(py/height)*2 + 1
	return x, y
}

// FromCamera builds a world-space ray starting at the camera position eye and
// passing through the NDC point. invViewProj is the inverse view-projection matrix.
func FromCamera(ndcX, ndcY float32, invViewProj math.Mat4, eye math.Vec3) Ray {
	p := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 0.5, 1})
	if p[3] != 0 {
		p[0] /= p[3]
		p[1] /= p[3]
		p[2] /= p[3]
	}
	target := math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	return Ray{Origin: eye, Direction: target.Sub(eye).Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform returns the ray in the space defined by m. The direction is
// renormalized, so distances along the result are in the target space.
func (r Ray) Transform(m math.Mat4) Ray {
	o := m.TransformVec3(r.Origin)
	d := m.TransformDirection(r.Direction.Array())
	return Ray{Origin: o, Direction: math.V3(d).Normalize()}
}

// IntersectSphere returns the nearest non-negative distance to a sphere.
// A ray starting inside the sphere reports the exit distance.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	oc := center.Sub(r.Origin)
	tca := oc.Dot(r.Direction)
	d2 := oc.LengthSq() - tca*tca
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}
	thc := math32.Sqrt(r2 - d2)
	t0, t1 := tca-thc, tca+thc
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// IntersectTriangle tests the ray against triangle (a, b, c) with
// counter-clockwise front faces. side selects which faces can be hit.
func (r Ray) IntersectTriangle(a, b, c math.Vec3, side scene.Side) (t float32, hit bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	pv := r.Direction.Cross(e2)
	det := e1.Dot(pv)

	// det > 0 means the ray looks at the front face.
	switch side {
	case scene.FrontSide:
		if det < epsilon {
			return 0, false
		}
	case scene.BackSide:
		if det > -epsilon {
			return 0, false
		}
	default:
		if math32.Abs(det) < epsilon {
			return 0, false
		}
	}

	inv := 1 / det
	tv := r.Origin.Sub(a)
	u := tv.Dot(pv) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	qv := tv.Cross(e1)
	v := r.Direction.Dot(qv) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = e2.Dot(qv) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)
	origin, dir := r.Origin.Array(), r.Direction.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (box.Min[axis] - origin[axis]) / dir[axis]
			t2 := (box.Max[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tmin = max(tmin, t1)
			tmax = min(tmax, t2)
		} else if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
