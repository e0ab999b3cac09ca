// Package scene holds the scene graph: named objects, lights and the backdrop.
package scene

import (
	"slices"
	"sort"

	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// Scene owns every object for the lifetime of the view.
type Scene struct {
	objects  []*Object
	backdrop *Object

	Sun     lighting.Directional
	Ambient lighting.Ambient

	// Background is the clear color.
	Background lighting.Color
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add attaches objects in order. Adding an object twice is a no-op.
func (s *Scene) Add(objs ...*Object) {
	for _, o := range objs {
		if o == nil || slices.Contains(s.objects, o) {
			continue
		}
		s.objects = append(s.objects, o)
	}
}

// Remove detaches an object. Removing the backdrop clears it.
func (s *Scene) Remove(o *Object) {
	s.objects = slices.DeleteFunc(s.objects, func(x *Object) bool { return x == o })
	if s.backdrop == o {
		s.backdrop = nil
	}
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) (*Object, bool) {
	for _, o := range s.objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Objects returns the attached objects in insertion order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// SetBackdrop marks an object as the non-interactive backdrop, adding it if needed.
func (s *Scene) SetBackdrop(o *Object) {
	s.Add(o)
	s.backdrop = o
}

// Backdrop returns the backdrop object, or nil.
func (s *Scene) Backdrop() *Object {
	return s.backdrop
}

// Pickable returns the visible objects that can be hit by the pointer,
// i.e. everything except the backdrop.
func (s *Scene) Pickable() []*Object {
	out := make([]*Object, 0, len(s.objects))
	for _, o := range s.objects {
		if o == s.backdrop || !o.Visible || o.Geometry == nil {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Sorted returns visible objects in draw order: opaque objects by RenderOrder,
// then transparent objects by RenderOrder and back to front from eye.
func (s *Scene) Sorted(eye math.Vec3) []*Object {
	var opaque, transparent []*Object
	for _, o := range s.objects {
		if !o.Visible || o.Geometry == nil || o.Material == nil {
			continue
		}
		if o.Material.Transparent {
			transparent = append(transparent, o)
		} else {
			opaque = append(opaque, o)
		}
	}

	sort.SliceStable(opaque, func(i, j int) bool {
		return opaque[i].RenderOrder < opaque[j].RenderOrder
	})
	sort.SliceStable(transparent, func(i, j int) bool {
		a, b := transparent[i], transparent[j]
		if a.RenderOrder != b.RenderOrder {
			return a.RenderOrder < b.RenderOrder
		}
		return a.Position.Distance(eye) > b.Position.Distance(eye)
	})
	return append(opaque, transparent...)
}

// Bounds returns the world bounds of every visible object except the backdrop.
func (s *Scene) Bounds() geometry.Bounds {
	var b geometry.Bounds
	first := true
	for _, o := range s.Pickable() {
		sp := o.WorldBoundingSphere()
		lo := sp.Center.Sub(math.Vec3{X: sp.Radius, Y: sp.Radius, Z: sp.Radius}).Array()
		hi := sp.Center.Add(math.Vec3{X: sp.Radius, Y: sp.Radius, Z: sp.Radius}).Array()
		if first {
			b = geometry.Bounds{Min: lo, Max: hi}
			first = false
			continue
		}
		for k := 0; k < 3; k++ {
			b.Min[k] = min(b.Min[k], lo[k])
			b.Max[k] = max(b.Max[k], hi[k])
		}
	}
	return b
}
