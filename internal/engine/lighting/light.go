// Package lighting provides light sources and colors for the scene.
package lighting

import "github.com/Faultbox/globe-scene/pkg/math"

// Directional is a light infinitely far away shining from Position towards the origin.
type Directional struct {
	Color      Color
	Intensity  float32
	Position   math.Vec3
	CastShadow bool
}

// Direction returns the normalized direction TO the light.
func (d Directional) Direction() [3]float32 {
	return d.Position.Normalize().Array()
}

// Radiance returns the light color scaled by intensity.
func (d Directional) Radiance() Color {
	return d.Color.Scale(d.Intensity)
}

// Ambient lights every surface uniformly.
type Ambient struct {
	Color Color
}
