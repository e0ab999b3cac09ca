package scene

import (
	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/internal/engine/texture"
)

// Side selects which triangle faces are rendered and hit-tested.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material describes how an object's surface is shaded.
type Material struct {
	Color    lighting.Color
	Emissive lighting.Color
	// Opacity is only honored when Transparent is set.
	Opacity     float32
	Transparent bool
	DepthTest   bool
	Side        Side
	// Texture is optional; nil renders the flat Color.
	Texture *texture.Image
	// Unlit materials ignore lights (backdrops).
	Unlit bool
}

// NewMaterial returns an opaque, depth-tested, front-sided material.
func NewMaterial(color lighting.Color) *Material {
	return &Material{
		Color:     color,
		Opacity:   1,
		DepthTest: true,
		Side:      FrontSide,
	}
}

// EffectiveOpacity returns the opacity used for blending.
func (m *Material) EffectiveOpacity() float32 {
	if !m.Transparent {
		return 1
	}
	return m.Opacity
}
