package renderer

import "github.com/Faultbox/globe-scene/pkg/geometry"

// floatsPerVertex is position(3) + normal(3) + uv(2).
const floatsPerVertex = 8

// interleave packs a geometry into the vertex layout of the mesh shader.
// Missing normals or UVs are written as zeros.
func interleave(g *geometry.Geometry) []float32 {
	out := make([]float32, 0, len(g.Positions)*floatsPerVertex)
	for i, p := range g.Positions {
		var n [3]float32
		if i < len(g.Normals) {
			n = g.Normals[i]
		}
		var uv [2]float32
		if i < len(g.UVs) {
			uv = g.UVs[i]
		}
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

// drawIndices returns the element indices, generating a sequential list for
// non-indexed geometry.
func drawIndices(g *geometry.Geometry) []uint32 {
	if len(g.Indices) > 0 {
		return g.Indices
	}
	idx := make([]uint32, len(g.Positions))
	for i := range idx {
		idx[i] = uint32(i)
	}
	return idx
}
