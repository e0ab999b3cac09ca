// Package camera provides the projection and orbit controls for the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/globe-scene/pkg/math"
)

// Perspective is a symmetric perspective projection.
type Perspective struct {
	FovY   float32 // vertical field of view, radians
	Aspect float32 // width / height
	Near   float32
	Far    float32
}

// NewPerspective creates a projection from a vertical field of view in degrees.
func NewPerspective(fovDegrees, aspect, near, far float32) Perspective {
	return Perspective{
		FovY:   fovDegrees * math32.Pi / 180,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// SetAspect updates the aspect ratio for a viewport size. Zero sizes are ignored.
func (p *Perspective) SetAspect(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.Aspect = float32(width) / float32(height)
}

// Projection returns the projection matrix.
func (p Perspective) Projection() math.Mat4 {
	return math.Perspective(p.FovY, p.Aspect, p.Near, p.Far)
}
