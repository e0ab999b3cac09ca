// Package geometry provides indexed triangle geometry, primitive builders
// and in-place vertex transforms such as the cylindrical bend.
package geometry

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/globe-scene/pkg/math"
)

// Geometry is an indexed (or non-indexed) triangle list.
// The vertex count is fixed once built; transforms mutate positions in place.
type Geometry struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32

	// Version is bumped on every in-place mutation so GPU copies can be refreshed.
	Version uint64
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the center of the box.
func (b Bounds) Center() math.Vec3 {
	return math.Vec3{
		X: (b.Min[0] + b.Max[0]) / 2,
		Y: (b.Min[1] + b.Max[1]) / 2,
		Z: (b.Min[2] + b.Max[2]) / 2,
	}
}

// Size returns the box extent on each axis.
func (b Bounds) Size() math.Vec3 {
	return math.Vec3{X: b.Max[0] - b.Min[0], Y: b.Max[1] - b.Min[1], Z: b.Max[2] - b.Min[2]}
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	if g.Indices != nil {
		return len(g.Indices) / 3
	}
	return len(g.Positions) / 3
}

// Triangle returns the vertex indices of triangle i.
func (g *Geometry) Triangle(i int) (a, b, c uint32) {
	if g.Indices != nil {
		return g.Indices[i*3], g.Indices[i*3+1], g.Indices[i*3+2]
	}
	n := uint32(i * 3)
	return n, n + 1, n + 2
}

// Translate moves every vertex by the given offset.
func (g *Geometry) Translate(dx, dy, dz float32) *Geometry {
	for i := range g.Positions {
		g.Positions[i][0] += dx
		g.Positions[i][1] += dy
		g.Positions[i][2] += dz
	}
	g.Version++
	return g
}

// Bounds computes the axis-aligned bounding box of all vertices.
func (g *Geometry) Bounds() Bounds {
	if len(g.Positions) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: g.Positions[0], Max: g.Positions[0]}
	for _, p := range g.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < b.Min[k] {
				b.Min[k] = p[k]
			}
			if p[k] > b.Max[k] {
				b.Max[k] = p[k]
			}
		}
	}
	return b
}

// BoundingSphere returns a sphere centered on the box center that encloses every vertex.
func (g *Geometry) BoundingSphere() Sphere {
	center := g.Bounds().Center()
	var maxSq float32
	for _, p := range g.Positions {
		if d := math.V3(p).Sub(center).LengthSq(); d > maxSq {
			maxSq = d
		}
	}
	return Sphere{Center: center, Radius: math32.Sqrt(maxSq)}
}

// Clone returns a deep copy.
func (g *Geometry) Clone() *Geometry {
	c := &Geometry{
		Positions: append([][3]float32(nil), g.Positions...),
		Normals:   append([][3]float32(nil), g.Normals...),
		UVs:       append([][2]float32(nil), g.UVs...),
		Version:   g.Version,
	}
	if g.Indices != nil {
		c.Indices = append([]uint32(nil), g.Indices...)
	}
	return c
}
