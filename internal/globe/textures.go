package globe

import (
	"go.uber.org/zap"

	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/internal/engine/texture"
	"github.com/Faultbox/globe-scene/internal/logger"
)

// TextureNames returns the texture files the scene asks for.
func (v *View) TextureNames() []string {
	sc := v.cfg.Scene
	return []string{sc.EarthTexture, sc.CloudsTexture, sc.StarsTexture}
}

// ApplyTextures assigns loaded maps. Without its map the earth keeps the
// flat ocean color and the cloud and star layers stay hidden.
func (v *View) ApplyTextures(textures map[string]*texture.Image) {
	v.mu.Lock()
	defer v.mu.Unlock()

	sc := v.cfg.Scene
	if img, ok := textures[sc.EarthTexture]; ok {
		v.earth.Material.Texture = img
		v.earth.Material.Color = lighting.White
	}

	if img, ok := textures[sc.CloudsTexture]; ok {
		v.clouds.Material.Texture = img
		v.clouds.Visible = true
	} else {
		v.clouds.Visible = false
	}

	if img, ok := textures[sc.StarsTexture]; ok {
		v.stars.Material.Texture = img
		v.stars.Visible = true
	} else {
		v.stars.Visible = false
	}

	logger.Debug("textures applied",
		zap.Bool("earth", v.earth.Material.Texture != nil),
		zap.Bool("clouds", v.clouds.Visible),
		zap.Bool("stars", v.stars.Visible),
	)
}
