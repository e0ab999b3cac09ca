// Package app runs the globe viewer: window, input, asset loading and the
// frame loop.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/globe-scene/internal/assets"
	"github.com/Faultbox/globe-scene/internal/config"
	"github.com/Faultbox/globe-scene/internal/engine/debug"
	"github.com/Faultbox/globe-scene/internal/engine/input"
	"github.com/Faultbox/globe-scene/internal/engine/renderer"
	"github.com/Faultbox/globe-scene/internal/engine/scene"
	"github.com/Faultbox/globe-scene/internal/engine/window"
	"github.com/Faultbox/globe-scene/internal/globe"
	"github.com/Faultbox/globe-scene/internal/logger"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// App is the running viewer.
type App struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	view     *globe.View
	assets   *assets.Manager
	shots    *debug.Screenshots

	loaded chan loadResult
}

type loadResult struct {
	res *assets.Result
	err error
}

// New opens the window and builds the scene.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")
	log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		cfg:    cfg,
		log:    log,
		assets: assets.NewDirManager(cfg.Scene.AssetsDir),
		shots:  debug.NewScreenshots(cfg.Debug.ScreenshotDir, "globe"),
		loaded: make(chan loadResult, 1),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer works in pixels, picking in window points.
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:            dw,
		Height:           dh,
		Shadows:          cfg.Scene.Shadows,
		ShadowResolution: int32(cfg.Scene.ShadowResolution),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	w, h := a.window.GetSize()
	a.view = globe.NewView(cfg, w, h)
	a.view.OnNodeClick = a.nodeClicked

	log.Info("initialized")
	return a, nil
}

// Run drives the frame loop until the window closes or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.running = true
	go a.loadAssets(ctx)

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	a.log.Info("starting frame loop")

	for a.running {
		if err := ctx.Err(); err != nil {
			break
		}

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if a.input.Update() {
			break
		}
		for _, ev := range a.input.Events() {
			a.handle(ev)
		}

		a.pollAssets()
		a.view.Update(dt)
		a.render()
		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			a.log.Debug("fps", zap.Float64("fps", fps), zap.Float32("dt_ms", dt*1000))
			if a.cfg.Debug.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %.0f fps", a.cfg.Window.Title, fps))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("frame loop stopped")
	return nil
}

// Close releases GPU, window and asset resources.
func (a *App) Close() {
	a.log.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	a.assets.Close()
}

func (a *App) handle(ev input.Event) {
	switch ev.Type {
	case input.EventResize:
		a.renderer.Resize(a.window.DrawableSize())
		a.view.Resize(ev.Width, ev.Height)

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			a.running = false
		case sdl.SCANCODE_F12:
			a.screenshot()
		}

	case input.EventPointerMove:
		a.view.PointerMove(ev.X, ev.Y)

	case input.EventPointerLeave:
		a.view.PointerLeave()

	case input.EventClick:
		if ev.Button == input.ButtonLeft {
			a.view.Click(ev.X, ev.Y)
		}

	case input.EventDrag:
		switch ev.Button {
		case input.ButtonLeft:
			a.view.Orbit(ev.DX, ev.DY)
		case input.ButtonRight:
			a.view.Pan(ev.DX, ev.DY)
		}

	case input.EventWheel:
		a.view.Zoom(ev.Wheel)
	}
}

// nodeClicked reports the link of a clicked node. Runs under the view lock.
func (a *App) nodeClicked(n *globe.Node) {
	if n.Link == "" {
		a.log.Info("node has no link", zap.String("node", n.Name))
		return
	}
	a.log.Info("open node link", zap.String("node", n.Name), zap.String("link", n.Link))
}

func (a *App) render() {
	for _, g := range a.view.Retired() {
		a.renderer.Forget(g)
	}
	a.view.Render(func(sc *scene.Scene, view, projection math.Mat4, eye math.Vec3) {
		a.renderer.Render(sc, renderer.Frame{View: view, Projection: projection, Eye: eye})
	})
}

func (a *App) screenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.SavePixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}
