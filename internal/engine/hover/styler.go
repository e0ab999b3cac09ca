package hover

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/internal/engine/scene"
	"github.com/Faultbox/globe-scene/internal/logger"
)

// ErrDuplicateName is returned when a hoverable name is already taken.
var ErrDuplicateName = errors.New("duplicate hoverable name")

// Palette holds the highlight colors.
type Palette struct {
	// Hover is the shared tint applied to any highlighted object.
	Hover lighting.Color
	// Glow is the emissive contribution of a highlighted object.
	Glow lighting.Color
	// Rest is the color restored on unhighlight unless RestOverrides names the object.
	Rest          lighting.Color
	RestOverrides map[string]lighting.Color
	// GlowOverrides replaces Glow for specific objects.
	GlowOverrides map[string]lighting.Color
}

// DefaultPalette returns white hover and rest colors with a white glow.
func DefaultPalette() Palette {
	return Palette{
		Hover: lighting.White,
		Glow:  lighting.White,
		Rest:  lighting.White,
	}
}

// RestColor returns the resting color for a name.
func (p Palette) RestColor(name string) lighting.Color {
	if c, ok := p.RestOverrides[name]; ok {
		return c
	}
	return p.Rest
}

// GlowColor returns the highlight glow for a name.
func (p Palette) GlowColor(name string) lighting.Color {
	if c, ok := p.GlowOverrides[name]; ok {
		return c
	}
	return p.Glow
}

// MaterialStyler highlights scene objects by editing their material colors.
// Only registered names are touched; others are tracked by the highlighter
// but keep their look.
type MaterialStyler struct {
	palette Palette
	objects map[string]*scene.Object
}

// NewMaterialStyler creates a styler for the given hoverable objects.
func NewMaterialStyler(p Palette, hoverable ...*scene.Object) *MaterialStyler {
	s := &MaterialStyler{palette: p, objects: make(map[string]*scene.Object, len(hoverable))}
	for _, o := range hoverable {
		if err := s.Register(o); err != nil {
			logger.Warn("object not hoverable", zap.Error(err))
		}
	}
	return s
}

// Register makes an object hoverable. A name already held by another
// object is refused.
func (s *MaterialStyler) Register(o *scene.Object) error {
	if o == nil || o.Material == nil {
		return errors.New("register: object without material")
	}
	if prev, ok := s.objects[o.Name]; ok && prev != o {
		return fmt.Errorf("%w: %q", ErrDuplicateName, o.Name)
	}
	s.objects[o.Name] = o
	return nil
}

// Hoverable reports whether a name is registered.
func (s *MaterialStyler) Hoverable(name string) bool {
	_, ok := s.objects[name]
	return ok
}

// Highlight sets the hover tint and a non-zero glow.
func (s *MaterialStyler) Highlight(name string) {
	o, ok := s.objects[name]
	if !ok {
		return
	}
	o.Material.Color = s.palette.Hover
	o.Material.Emissive = s.palette.GlowColor(name)
}

// Unhighlight restores the resting color and clears the glow.
func (s *MaterialStyler) Unhighlight(name string) {
	o, ok := s.objects[name]
	if !ok {
		return
	}
	o.Material.Color = s.palette.RestColor(name)
	o.Material.Emissive = lighting.Black
}
