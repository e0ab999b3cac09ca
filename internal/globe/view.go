// Package globe assembles the interactive globe scene: the earth with its
// cloud and atmosphere layers, the orbit ring and its nodes, the star
// backdrop and an optional caption bent around the globe.
package globe

import (
	"fmt"
	"sync"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/globe-scene/internal/config"
	"github.com/Faultbox/globe-scene/internal/engine/camera"
	"github.com/Faultbox/globe-scene/internal/engine/hover"
	"github.com/Faultbox/globe-scene/internal/engine/lighting"
	"github.com/Faultbox/globe-scene/internal/engine/picking"
	"github.com/Faultbox/globe-scene/internal/engine/scene"
	"github.com/Faultbox/globe-scene/internal/engine/text"
	"github.com/Faultbox/globe-scene/internal/logger"
	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// Object names.
const (
	NameEarth      = "earth"
	NameClouds     = "earthClouds"
	NameAtmosphere = "earthAtmosphere"
	NameRing       = "earthRing"
	NameStars      = "stars"
	NameCaption    = "caption"
)

// Scene colors.
var (
	atmosphereColor = lighting.Hex(0x00b3ff)
	ambientColor    = lighting.Hex(0x404040)
	// Earth color until its texture loads
	oceanColor = lighting.Hex(0x1e4d8c)
)

type ringShape struct {
	radius, tube float32
	arc          float32
	tiltX, tiltY float32
}

// Ring tilt angles are radians.
var ring = ringShape{radius: 2, tube: 0.01, arc: 2 * math32.Pi, tiltX: 90, tiltY: 0.40}

// View owns the scene and its interaction state. All methods are safe for
// concurrent use; the render callback runs under the same lock.
type View struct {
	mu  sync.Mutex
	cfg *config.Config

	scene      *scene.Scene
	camera     *camera.OrbitCamera
	projection camera.Perspective
	width      int
	height     int

	earth      *scene.Object
	clouds     *scene.Object
	atmosphere *scene.Object
	ring       *scene.Object
	stars      *scene.Object
	caption    *scene.Object
	nodes      []*Node
	// geometries removed from the scene, pending GPU release
	retired []*geometry.Geometry

	highlighter *hover.Highlighter

	// OnNodeClick is called, under the view lock, after a click lands on a node.
	OnNodeClick func(*Node)
}

// NewView builds the scene for a viewport of width x height.
func NewView(cfg *config.Config, width, height int) *View {
	v := &View{
		cfg:    cfg,
		scene:  scene.New(),
		width:  width,
		height: height,
	}

	cc := cfg.Camera
	v.projection = camera.NewPerspective(cc.FOV, 1, cc.Near, cc.Far)
	v.projection.SetAspect(width, height)
	v.camera = camera.NewOrbitCamera(cc.Distance)
	v.camera.MinDistance = cc.MinDistance
	v.camera.MaxDistance = cc.MaxDistance
	v.camera.DampingFactor = cc.DampingFactor
	v.camera.EnablePan = cc.EnablePan
	v.camera.DragSensitivity = cc.RotateSensitivity
	v.camera.ZoomSensitivity = cc.ZoomSensitivity

	v.build()
	return v
}

func (v *View) build() {
	sc := v.cfg.Scene

	planet := geometry.NewSphere(1, 64, 64)

	// Layers that depend on textures start flat or hidden until ApplyTextures.
	v.earth = scene.NewObject(NameEarth, planet, scene.NewMaterial(oceanColor))
	v.earth.Rotation.X = sc.AxialTilt
	v.earth.CastShadow = true
	v.earth.ReceiveShadow = true

	// Clouds share the planet geometry and draw after it without depth testing.
	cloudsMat := scene.NewMaterial(lighting.White)
	cloudsMat.Transparent = true
	cloudsMat.DepthTest = false
	v.clouds = scene.NewObject(NameClouds, planet, cloudsMat)
	v.clouds.Rotation.X = sc.AxialTilt
	v.clouds.RenderOrder = 1
	v.clouds.Visible = false
	v.clouds.CastShadow = true
	v.clouds.ReceiveShadow = true

	atmoMat := scene.NewMaterial(atmosphereColor)
	atmoMat.Emissive = atmosphereColor
	atmoMat.Transparent = true
	atmoMat.Opacity = 0.1
	v.atmosphere = scene.NewObject(NameAtmosphere, geometry.NewSphere(1.01, 64, 64), atmoMat)

	ringMat := scene.NewMaterial(lighting.White)
	ringMat.Side = scene.DoubleSide
	v.ring = scene.NewObject(NameRing, geometry.NewTorus(ring.radius, ring.tube, 10, 128, ring.arc), ringMat)
	v.ring.Rotation = math.Vec3{X: ring.tiltX, Y: ring.tiltY}
	v.ring.ReceiveShadow = true

	v.nodes = newNodes(v.cfg.Nodes, ring, sc.NodeSpin)

	starsMat := scene.NewMaterial(lighting.White)
	starsMat.Side = scene.BackSide
	starsMat.Unlit = true
	v.stars = scene.NewObject(NameStars, geometry.NewSphere(90, 128, 128), starsMat)
	v.stars.Rotation.X = 60.2
	v.stars.Visible = false

	v.scene.Add(v.earth, v.clouds, v.atmosphere, v.ring)
	for _, n := range v.nodes {
		v.scene.Add(n.Object)
	}
	v.scene.SetBackdrop(v.stars)

	v.scene.Sun = lighting.Directional{
		Color:      lighting.White,
		Intensity:  1.8,
		Position:   math.Vec3{X: 50, Y: 0, Z: 30},
		CastShadow: sc.Shadows,
	}
	v.scene.Ambient = lighting.Ambient{Color: ambientColor}
	v.scene.Background = lighting.Black

	// Only the atmosphere, ring and nodes react to hover; the atmosphere
	// glows and rests in its own tint.
	palette := hover.DefaultPalette()
	palette.RestOverrides = map[string]lighting.Color{NameAtmosphere: atmosphereColor}
	palette.GlowOverrides = map[string]lighting.Color{NameAtmosphere: atmosphereColor}
	styler := hover.NewMaterialStyler(palette, v.atmosphere, v.ring)
	for _, n := range v.nodes {
		if err := styler.Register(n.Object); err != nil {
			logger.Warn("node not hoverable", zap.String("node", n.Name), zap.Error(err))
		}
	}
	v.highlighter = hover.NewHighlighter(styler)

	logger.Debug("globe scene built",
		zap.Int("objects", len(v.scene.Objects())),
		zap.Int("nodes", len(v.nodes)),
	)
}

// Scene returns the scene. Callers must not mutate it outside Render.
func (v *View) Scene() *scene.Scene {
	return v.scene
}

// Nodes returns the orbiting nodes in configuration order.
func (v *View) Nodes() []*Node {
	return v.nodes
}

// Update advances the animation by dt seconds. Spin rates are per 60 Hz frame.
func (v *View) Update(dt float32) {
	v.mu.Lock()
	defer v.mu.Unlock()

	frames := dt * 60
	sc := v.cfg.Scene
	v.earth.Rotation.Y += sc.EarthSpin * frames
	v.clouds.Rotation.Y += sc.CloudsSpin * frames
	for _, n := range v.nodes {
		n.advance(frames)
	}
	v.camera.Update()
}

// Resize updates the projection for a new viewport.
func (v *View) Resize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}
	v.width, v.height = width, height
	v.projection.SetAspect(width, height)
}

// Orbit rotates the camera from a drag delta in points.
func (v *View) Orbit(dx, dy float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.camera.HandleDrag(dx, dy)
}

// Pan moves the camera target when panning is enabled.
func (v *View) Pan(dx, dy float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.camera.HandlePan(dx, dy)
}

// Zoom dollies the camera from a wheel delta.
func (v *View) Zoom(delta float32) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.camera.HandleZoom(delta)
}

// pick returns every pickable hit under the pointer, nearest first.
func (v *View) pick(px, py int) []picking.Hit {
	ndcX, ndcY := picking.NDC(float32(px), float32(py), float32(v.width), float32(v.height))
	ray := picking.FromCamera(ndcX, ndcY, v.camera.InverseViewProjection(v.projection), v.camera.Position())
	return picking.NewRaycaster(ray).Intersect(v.scene.Pickable())
}

// PointerMove updates the hover highlight for a pointer position in points.
func (v *View) PointerMove(px, py int) hover.Transition {
	v.mu.Lock()
	defer v.mu.Unlock()

	hit, ok := picking.Nearest(v.pick(px, py))
	name := ""
	if ok {
		name = hit.Object.Name
	}
	return v.highlighter.Update(name, ok)
}

// PointerLeave clears the highlight.
func (v *View) PointerLeave() hover.Transition {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.highlighter.Reset()
}

// Highlighted returns the name of the highlighted object, or "".
func (v *View) Highlighted() string {
	return v.highlighter.Current()
}

// Click returns the node under the pointer if it is the nearest hit.
func (v *View) Click(px, py int) (*Node, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	hit, ok := picking.Nearest(v.pick(px, py))
	if !ok {
		return nil, false
	}
	for _, n := range v.nodes {
		if n.Object != hit.Object {
			continue
		}
		logger.Info("node clicked", zap.String("node", n.Name), zap.String("link", n.Link))
		if v.OnNodeClick != nil {
			v.OnNodeClick(n)
		}
		return n, true
	}
	return nil, false
}

// Render runs draw with the scene and camera state under the view lock.
func (v *View) Render(draw func(sc *scene.Scene, view, projection math.Mat4, eye math.Vec3)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	draw(v.scene, v.camera.ViewMatrix(), v.projection.Projection(), v.camera.Position())
}

// AttachText builds the configured caption from f, bends it around the
// globe and adds it to the scene, replacing any previous caption. It does
// nothing when text is disabled.
func (v *View) AttachText(f *text.Font) error {
	tc := v.cfg.Text
	if !tc.Enabled {
		return nil
	}

	policy, err := geometry.ParseBendPolicy(tc.Policy)
	if err != nil {
		return err
	}
	geo, err := text.Build(f, tc.Content, text.Options{Size: tc.Size, Depth: tc.Depth})
	if err != nil {
		return fmt.Errorf("caption %q: %w", tc.Content, err)
	}
	geo.BendCylinder(geometry.BendOptions{Radius: tc.BendRadius, Width: tc.BendWidth, Policy: policy})

	obj := scene.NewObject(NameCaption, geo, scene.NewMaterial(lighting.White))
	obj.CastShadow = true
	obj.ReceiveShadow = true

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.caption != nil {
		v.scene.Remove(v.caption)
		v.retired = append(v.retired, v.caption.Geometry)
	}
	v.caption = obj
	v.scene.Add(obj)

	logger.Info("caption attached",
		zap.String("content", tc.Content),
		zap.Int("vertices", geo.VertexCount()),
		zap.Stringer("policy", policy),
	)
	return nil
}

// Retired returns and clears the geometries dropped from the scene since
// the last call.
func (v *View) Retired() []*geometry.Geometry {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.retired
	v.retired = nil
	return out
}

// Caption returns the caption object, or nil before AttachText.
func (v *View) Caption() *scene.Object {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.caption
}
