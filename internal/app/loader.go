package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/Faultbox/globe-scene/internal/assets"
)

// loadAssets fetches textures and the caption font off the render thread.
// The result is picked up by pollAssets; GL uploads happen on first draw.
func (a *App) loadAssets(ctx context.Context) {
	res, err := a.assets.LoadAll(ctx, assets.Request{
		Textures: a.view.TextureNames(),
		Font:     a.cfg.Text.FontPath,
		WithFont: a.cfg.Text.Enabled,
	})
	a.loaded <- loadResult{res: res, err: err}
}

// pollAssets applies a finished load without blocking the frame.
func (a *App) pollAssets() {
	var lr loadResult
	select {
	case lr = <-a.loaded:
	default:
		return
	}

	if lr.err != nil {
		a.log.Warn("asset loading aborted", zap.Error(lr.err))
		return
	}
	a.view.ApplyTextures(lr.res.Textures)

	if lr.res.Font == nil {
		if a.cfg.Text.Enabled {
			a.log.Warn("caption skipped, font unavailable", zap.String("font", a.cfg.Text.FontPath))
		}
		return
	}
	if err := a.view.AttachText(lr.res.Font); err != nil {
		a.log.Warn("caption skipped", zap.Error(err))
	}
}
