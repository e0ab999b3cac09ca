package geometry

import "github.com/Faultbox/globe-scene/pkg/math"

// ComputeVertexNormals recomputes per-vertex normals from the current positions.
// Each vertex receives the sum of the unnormalized normals of its adjacent faces,
// so larger faces weigh more, then the sum is normalized.
func (g *Geometry) ComputeVertexNormals() {
	if len(g.Normals) != len(g.Positions) {
		g.Normals = make([][3]float32, len(g.Positions))
	} else {
		for i := range g.Normals {
			g.Normals[i] = [3]float32{}
		}
	}

	for t := 0; t < g.TriangleCount(); t++ {
		ia, ib, ic := g.Triangle(t)
		a := math.V3(g.Positions[ia])
		b := math.V3(g.Positions[ib])
		c := math.V3(g.Positions[ic])
		n := c.Sub(b).Cross(a.Sub(b))

		for _, idx := range [3]uint32{ia, ib, ic} {
			g.Normals[idx][0] += n.X
			g.Normals[idx][1] += n.Y
			g.Normals[idx][2] += n.Z
		}
	}

	for i := range g.Normals {
		g.Normals[i] = math.V3(g.Normals[i]).Normalize().Array()
	}
	g.Version++
}
