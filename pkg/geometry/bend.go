package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// BendPolicy selects which radius a vertex is wrapped at.
type BendPolicy int

const (
	// DepthOffset wraps each vertex at Radius + z, keeping extrusion depth
	// as a local offset from the wrap circle. This is the default.
	DepthOffset BendPolicy = iota
	// ConstantRadius wraps every vertex at Radius, flattening depth onto the circle.
	ConstantRadius
)

// String returns the config name of the policy.
func (p BendPolicy) String() string {
	switch p {
	case DepthOffset:
		return "depth_offset"
	case ConstantRadius:
		return "constant_radius"
	default:
		return fmt.Sprintf("BendPolicy(%d)", int(p))
	}
}

// ParseBendPolicy parses a config name into a policy.
func ParseBendPolicy(s string) (BendPolicy, error) {
	switch s {
	case "", "depth_offset":
		return DepthOffset, nil
	case "constant_radius":
		return ConstantRadius, nil
	}
	return 0, fmt.Errorf("unknown bend policy %q", s)
}

// DefaultBendWidth is the normalization width matching a typical text block.
const DefaultBendWidth = 10

// BendOptions configures BendCylinder.
type BendOptions struct {
	// Radius of the wrap cylinder.
	Radius float32
	// Width maps x onto one full turn: x = Width is 2π. Zero means DefaultBendWidth.
	Width  float32
	Policy BendPolicy
}

// RadiusFromCircumference returns the cylinder radius whose circumference is c.
func RadiusFromCircumference(c float32) float32 {
	return c / (2 * math32.Pi)
}

// BendCylinder wraps the geometry around a vertical cylinder in place.
// For each vertex angle = 2π·x/Width and the new position is
// (cos(angle)·r, y, -sin(angle)·r). Y is untouched and the vertex count
// and winding never change. Normals are recomputed afterwards.
func (g *Geometry) BendCylinder(opts BendOptions) {
	if len(g.Positions) == 0 {
		return
	}
	width := opts.Width
	if width == 0 {
		width = DefaultBendWidth
	}

	for i, p := range g.Positions {
		angle := 2 * math32.Pi * (p[0] / width)

		r := opts.Radius
		if opts.Policy == DepthOffset {
			r += p[2]
		}

		g.Positions[i] = [3]float32{
			math32.Cos(angle) * r,
			p[1],
			-math32.Sin(angle) * r,
		}
	}

	g.ComputeVertexNormals()
}
