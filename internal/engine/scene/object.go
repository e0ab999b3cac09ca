package scene

import (
	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// Object is a named mesh placed in the scene.
type Object struct {
	Name     string
	Position math.Vec3
	// Rotation holds Euler angles in radians, applied in XYZ order.
	Rotation math.Vec3
	Scale    math.Vec3

	Geometry *geometry.Geometry
	Material *Material

	CastShadow    bool
	ReceiveShadow bool
	// RenderOrder sorts opaque objects; lower draws first.
	RenderOrder int
	Visible     bool
}

// NewObject creates a visible object with unit scale.
func NewObject(name string, geo *geometry.Geometry, mat *Material) *Object {
	return &Object{
		Name:     name,
		Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		Geometry: geo,
		Material: mat,
		Visible:  true,
	}
}

// WorldMatrix returns the object's model matrix.
func (o *Object) WorldMatrix() math.Mat4 {
	return math.Compose(o.Position, o.Rotation, o.Scale)
}

// WorldBoundingSphere returns the geometry bounding sphere in world space.
func (o *Object) WorldBoundingSphere() geometry.Sphere {
	local := o.Geometry.BoundingSphere()
	m := o.WorldMatrix()
	return geometry.Sphere{
		Center: m.TransformVec3(local.Center),
		Radius: local.Radius * m.MaxScale(),
	}
}
