package shadow

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// LightMatrix computes the view-projection used by the depth pass of a
// directional light. toLight is the normalized direction towards the light;
// the orthographic volume encloses the sphere around bounds.
func LightMatrix(toLight [3]float32, bounds geometry.Bounds) math.Mat4 {
	center := bounds.Center()
	radius := bounds.Size().Length() / 2
	if radius == 0 {
		radius = 1
	}

	dir := math.V3(toLight).Normalize()
	lightDistance := radius * 2
	lightPos := center.Add(dir.Scale(lightDistance))

	// Avoid an up vector parallel to the light
	up := math.Vec3{Y: 1}
	if math32.Abs(dir.Y) > 0.99 {
		up = math.Vec3{Z: 1}
	}
	view := math.LookAt(lightPos, center, up)

	// Padding avoids clipping at the edges
	halfSize := radius * 1.1
	near := float32(0.1)
	far := lightDistance + halfSize

	return math.Ortho(-halfSize, halfSize, -halfSize, halfSize, near, far).Mul(view)
}
