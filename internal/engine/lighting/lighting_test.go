package lighting

import (
	"testing"

	"github.com/Faultbox/globe-scene/pkg/math"
)

func TestHex(t *testing.T) {
	c := Hex(0x00b3ff)
	if c.R != 0 || c.B != 1 {
		t.Errorf("Hex(0x00b3ff) = %v, want R=0 B=1", c)
	}
	if g := c.G * 255; g < 178.9 || g > 179.1 {
		t.Errorf("Hex(0x00b3ff).G*255 = %v, want 179", g)
	}
	if Hex(0xffffff) != White {
		t.Errorf("Hex(0xffffff) = %v, want white", Hex(0xffffff))
	}
}

func TestDirectionalDirection(t *testing.T) {
	l := Directional{Color: White, Intensity: 1.8, Position: math.Vec3{X: 50, Y: 0, Z: 30}}
	d := math.V3(l.Direction())
	if n := d.Length(); n < 0.999 || n > 1.001 {
		t.Errorf("Direction length = %v, want 1", n)
	}
	if d.X <= d.Z {
		t.Errorf("Direction = %v, expected X to dominate", d)
	}
	if r := l.Radiance(); r.R != 1.8 {
		t.Errorf("Radiance = %v, want 1.8", r)
	}
}
