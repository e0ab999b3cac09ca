package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/globe-scene/pkg/math"
)

// NewSphere builds a UV sphere centered on the origin.
// Vertices form a (widthSegs+1) x (heightSegs+1) grid; u runs around Y, v from the
// north pole down. Pole rows skip their degenerate triangles.
func NewSphere(radius float32, widthSegs, heightSegs int) *Geometry {
	if widthSegs < 3 {
		widthSegs = 3
	}
	if heightSegs < 2 {
		heightSegs = 2
	}

	g := &Geometry{}
	grid := make([][]uint32, heightSegs+1)
	var index uint32

	for iy := 0; iy <= heightSegs; iy++ {
		v := float32(iy) / float32(heightSegs)
		theta := v * math32.Pi

		// Offset the pole u so the texture seam lines up with the triangle fan.
		var uOffset float32
		switch iy {
		case 0:
			uOffset = 0.5 / float32(widthSegs)
		case heightSegs:
			uOffset = -0.5 / float32(widthSegs)
		}

		row := make([]uint32, widthSegs+1)
		for ix := 0; ix <= widthSegs; ix++ {
			u := float32(ix) / float32(widthSegs)
			phi := u * 2 * math32.Pi

			p := [3]float32{
				-radius * math32.Cos(phi) * math32.Sin(theta),
				radius * math32.Cos(theta),
				radius * math32.Sin(phi) * math32.Sin(theta),
			}
			g.Positions = append(g.Positions, p)
			g.Normals = append(g.Normals, math.V3(p).Normalize().Array())
			g.UVs = append(g.UVs, [2]float32{u + uOffset, 1 - v})

			row[ix] = index
			index++
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegs; iy++ {
		for ix := 0; ix < widthSegs; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]

			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegs-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}

// NewTorus builds a torus in the XY plane around the Z axis.
// radius is the ring radius, tube the tube radius, arc the swept angle in radians.
func NewTorus(radius, tube float32, radialSegs, tubularSegs int, arc float32) *Geometry {
	if radialSegs < 2 {
		radialSegs = 2
	}
	if tubularSegs < 3 {
		tubularSegs = 3
	}

	g := &Geometry{}
	for j := 0; j <= radialSegs; j++ {
		for i := 0; i <= tubularSegs; i++ {
			u := float32(i) / float32(tubularSegs) * arc
			v := float32(j) / float32(radialSegs) * 2 * math32.Pi

			p := [3]float32{
				(radius + tube*math32.Cos(v)) * math32.Cos(u),
				(radius + tube*math32.Cos(v)) * math32.Sin(u),
				tube * math32.Sin(v),
			}
			center := math.Vec3{X: radius * math32.Cos(u), Y: radius * math32.Sin(u)}

			g.Positions = append(g.Positions, p)
			g.Normals = append(g.Normals, math.V3(p).Sub(center).Normalize().Array())
			g.UVs = append(g.UVs, [2]float32{float32(i) / float32(tubularSegs), float32(j) / float32(radialSegs)})
		}
	}

	stride := uint32(tubularSegs + 1)
	for j := uint32(1); j <= uint32(radialSegs); j++ {
		for i := uint32(1); i <= uint32(tubularSegs); i++ {
			a := stride*j + i - 1
			b := stride*(j-1) + i - 1
			c := stride*(j-1) + i
			d := stride*j + i

			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}

// Arc returns the position of a point on a circle of the given radius in the XY plane.
func Arc(radius, angle float32) [3]float32 {
	return [3]float32{radius * math32.Cos(angle), radius * math32.Sin(angle), 0}
}
