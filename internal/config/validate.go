package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/globe-scene/pkg/geometry"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the settings can build a scene.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	cam := c.Camera
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return fmt.Errorf("%w: camera fov %v outside (0, 180)", ErrInvalid, cam.FOV)
	}
	if cam.Near <= 0 || cam.Near >= cam.Far {
		return fmt.Errorf("%w: camera near %v must be positive and below far %v", ErrInvalid, cam.Near, cam.Far)
	}
	if cam.Distance <= 0 {
		return fmt.Errorf("%w: camera distance %v", ErrInvalid, cam.Distance)
	}
	if cam.MinDistance > cam.MaxDistance {
		return fmt.Errorf("%w: camera min distance %v above max %v", ErrInvalid, cam.MinDistance, cam.MaxDistance)
	}
	if cam.DampingFactor < 0 || cam.DampingFactor > 1 {
		return fmt.Errorf("%w: damping factor %v outside [0, 1]", ErrInvalid, cam.DampingFactor)
	}

	if c.Scene.Shadows && c.Scene.ShadowResolution <= 0 {
		return fmt.Errorf("%w: shadow resolution %d", ErrInvalid, c.Scene.ShadowResolution)
	}

	if c.Text.Enabled {
		if c.Text.Size <= 0 || c.Text.Depth < 0 {
			return fmt.Errorf("%w: text size %v depth %v", ErrInvalid, c.Text.Size, c.Text.Depth)
		}
		if c.Text.BendWidth == 0 {
			return fmt.Errorf("%w: bend width must be non-zero", ErrInvalid)
		}
	}
	if _, err := geometry.ParseBendPolicy(c.Text.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	seen := make(map[string]bool, len(c.Nodes)+len(ReservedNames))
	for _, name := range ReservedNames {
		seen[name] = true
	}
	for i, n := range c.Nodes {
		if n.Name == "" {
			return fmt.Errorf("%w: node %d has no name", ErrInvalid, i)
		}
		if seen[n.Name] {
			return fmt.Errorf("%w: node name %q is already in use", ErrInvalid, n.Name)
		}
		seen[n.Name] = true
	}

	return nil
}
