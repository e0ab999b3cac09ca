package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/globe-scene/pkg/math"
)

// OrbitCamera orbits around a target point. With a non-zero DampingFactor,
// drag input is accumulated and eased out over subsequent Update calls.
type OrbitCamera struct {
	Target math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	PanSensitivity  float32

	DampingFactor float32 // 0 disables inertia
	EnablePan     bool

	// Pending rotation not yet applied by Update
	yawDelta   float32
	pitchDelta float32
}

// NewOrbitCamera creates an orbit camera at distance looking at the origin
// from +Z.
func NewOrbitCamera(distance float32) *OrbitCamera {
	return &OrbitCamera{
		Distance:        distance,
		MinDistance:     0,
		MaxDistance:     math32.Inf(1),
		MinPitch:        -math32.Pi/2 + 0.01,
		MaxPitch:        math32.Pi/2 - 0.01,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		PanSensitivity:  0.001,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	cp := math32.Cos(c.Pitch)
	return math.Vec3{
		X: c.Target.X + c.Distance*cp*math32.Sin(c.Yaw),
		Y: c.Target.Y + c.Distance*math32.Sin(c.Pitch),
		Z: c.Target.Z + c.Distance*cp*math32.Cos(c.Yaw),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// ViewProjection returns projection * view.
func (c *OrbitCamera) ViewProjection(p Perspective) math.Mat4 {
	return p.Projection().Mul(c.ViewMatrix())
}

// InverseViewProjection returns the matrix that unprojects NDC to world space.
func (c *OrbitCamera) InverseViewProjection(p Perspective) math.Mat4 {
	return c.ViewProjection(p).Inverse()
}

// HandleDrag queues a rotation from a pointer drag delta in pixels.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.yawDelta -= deltaX * c.DragSensitivity
	c.pitchDelta += deltaY * c.DragSensitivity
	if c.DampingFactor <= 0 {
		c.Update()
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// HandlePan moves the target in the view plane. Ignored unless EnablePan.
func (c *OrbitCamera) HandlePan(deltaX, deltaY float32) {
	if !c.EnablePan {
		return
	}
	forward := c.Target.Sub(c.Position()).Normalize()
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward)

	speed := c.Distance * c.PanSensitivity
	c.Target = c.Target.
		Add(right.Scale(-deltaX * speed)).
		Add(up.Scale(deltaY * speed))
}

// Update applies pending rotation. Call once per frame.
func (c *OrbitCamera) Update() {
	if c.DampingFactor > 0 {
		c.Yaw += c.yawDelta * c.DampingFactor
		c.Pitch += c.pitchDelta * c.DampingFactor
		c.yawDelta *= 1 - c.DampingFactor
		c.pitchDelta *= 1 - c.DampingFactor
	} else {
		c.Yaw += c.yawDelta
		c.Pitch += c.pitchDelta
		c.yawDelta, c.pitchDelta = 0, 0
	}
	c.Pitch = clamp(c.Pitch, c.MinPitch, c.MaxPitch)
}

// Settled reports whether no queued rotation remains.
func (c *OrbitCamera) Settled() bool {
	const eps = 1e-6
	return math32.Abs(c.yawDelta) < eps && math32.Abs(c.pitchDelta) < eps
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
