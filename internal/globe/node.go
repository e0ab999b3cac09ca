package globe

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/globe-scene/internal/config"
	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/internal/engine/scene"
	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// Orbit places a node on the ring. The node mesh is offset by Radius at
// angle Phase in its local XY plane; Speed spins it about local Z, which
// sweeps it along the ring tilted by TiltX and TiltY.
type Orbit struct {
	Radius float32
	Phase  float32
	TiltX  float32
	TiltY  float32
	Speed  float32 // radians per 60 Hz frame
}

// Node is a clickable marker orbiting the globe.
type Node struct {
	Name   string
	Link   string
	Orbit  Orbit
	Object *scene.Object
}

const (
	nodeRadius   = 0.1
	nodeSegments = 32
)

// newNodes lays out the configured nodes evenly around the ring, the k-th
// at phase arc/n*(k+1).
func newNodes(cfgs []config.NodeConfig, ring ringShape, speed float32) []*Node {
	nodes := make([]*Node, 0, len(cfgs))
	n := float32(len(cfgs))
	for k, c := range cfgs {
		orbit := Orbit{
			Radius: ring.radius,
			Phase:  ring.arc / n * float32(k+1),
			TiltX:  ring.tiltX,
			TiltY:  ring.tiltY,
			Speed:  speed,
		}
		nodes = append(nodes, newNode(c, orbit))
	}
	return nodes
}

func newNode(c config.NodeConfig, orbit Orbit) *Node {
	geo := geometry.NewSphere(nodeRadius, nodeSegments, nodeSegments)
	p := geometry.Arc(orbit.Radius, orbit.Phase)
	geo.Translate(p[0], p[1], p[2])

	obj := scene.NewObject(c.Name, geo, scene.NewMaterial(lighting.White))
	obj.Rotation = math.Vec3{X: orbit.TiltX, Y: orbit.TiltY}
	obj.CastShadow = true
	obj.ReceiveShadow = true

	return &Node{Name: c.Name, Link: c.Link, Orbit: orbit, Object: obj}
}

// advance moves the node along its orbit.
func (n *Node) advance(frames float32) {
	n.Object.Rotation.Z = math32.Mod(n.Object.Rotation.Z+n.Orbit.Speed*frames, 2*math32.Pi)
}

// Center returns the node's world position.
func (n *Node) Center() math.Vec3 {
	return n.Object.WorldBoundingSphere().Center
}
