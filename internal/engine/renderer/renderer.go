// Package renderer draws a scene with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/globe-scene/internal/engine/renderer/shaders"
	"github.com/Faultbox/globe-scene/internal/engine/scene"
	"github.com/Faultbox/globe-scene/internal/engine/shader"
	"github.com/Faultbox/globe-scene/internal/engine/shadow"
	"github.com/Faultbox/globe-scene/internal/engine/texture"
	"github.com/Faultbox/globe-scene/internal/logger"
	"github.com/Faultbox/globe-scene/pkg/geometry"
	"github.com/Faultbox/globe-scene/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width            int
	Height           int
	Shadows          bool
	ShadowResolution int32
}

// Frame is the camera state for one draw.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Eye        math.Vec3
}

// Renderer owns the GL programs and the per-geometry GPU caches.
type Renderer struct {
	config Config

	meshProg *shader.Program
	depth    *shader.Program
	shadow   *shadow.Map

	meshes   map[*geometry.Geometry]*gpuMesh
	textures map[*texture.Image]uint32
}

// New creates a renderer. Must be called after the GL context is current.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	r := &Renderer{
		config:   cfg,
		meshes:   make(map[*geometry.Geometry]*gpuMesh),
		textures: make(map[*texture.Image]uint32),
	}

	var err error
	r.meshProg, err = shader.Compile("mesh", shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, err
	}
	r.depth, err = shader.Compile("depth", shaders.DepthVertexShader, shaders.DepthFragmentShader)
	if err != nil {
		r.meshProg.Delete()
		return nil, err
	}

	if cfg.Shadows {
		r.shadow, err = shadow.NewMap(cfg.ShadowResolution)
		if err != nil {
			// Shadows are optional; keep rendering without them.
			logger.Warn("shadows disabled", zap.Error(err))
		}
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	logger.Info("closing renderer", zap.Int("meshes", len(r.meshes)), zap.Int("textures", len(r.textures)))
	for _, m := range r.meshes {
		m.destroy()
	}
	for _, id := range r.textures {
		gl.DeleteTextures(1, &id)
	}
	r.meshes = nil
	r.textures = nil
	if r.shadow != nil {
		r.shadow.Destroy()
	}
	r.meshProg.Delete()
	r.depth.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Forget drops the cached buffers of a geometry that left the scene.
func (r *Renderer) Forget(g *geometry.Geometry) {
	if m, ok := r.meshes[g]; ok {
		m.destroy()
		delete(r.meshes, g)
	}
}

// Render draws the scene: a depth pass for shadow casters, then every
// visible object in draw order.
func (r *Renderer) Render(sc *scene.Scene, f Frame) {
	lightViewProj := math.Identity()
	shadows := r.shadow != nil && sc.Sun.CastShadow
	if shadows {
		lightViewProj = shadow.LightMatrix(sc.Sun.Direction(), sc.Bounds())
		r.renderDepth(sc, lightViewProj)
	}

	bg := sc.Background
	gl.ClearColor(bg.R, bg.G, bg.B, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.meshProg
	p.Use()
	p.SetMat4("uViewProj", f.Projection.Mul(f.View))
	p.SetMat4("uLightViewProj", lightViewProj)
	p.SetVec3("uLightDir", sc.Sun.Direction())
	p.SetVec3("uLightColor", sc.Sun.Radiance().Array())
	p.SetVec3("uAmbient", sc.Ambient.Color.Array())
	p.SetInt("uTexture", 0)
	p.SetInt("uShadowMap", 1)
	if shadows {
		r.shadow.BindTexture(gl.TEXTURE1)
	}

	for _, o := range sc.Sorted(f.Eye) {
		r.drawObject(o, shadows)
	}

	gl.BindVertexArray(0)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

func (r *Renderer) drawObject(o *scene.Object, shadows bool) {
	mat := o.Material
	p := r.meshProg

	p.SetMat4("uModel", o.WorldMatrix())
	p.SetVec3("uColor", mat.Color.Array())
	p.SetVec3("uEmissive", mat.Emissive.Array())
	p.SetFloat("uOpacity", mat.EffectiveOpacity())
	p.SetBool("uUnlit", mat.Unlit)
	p.SetBool("uShadowsEnabled", shadows && o.ReceiveShadow && !mat.Unlit)

	tex := uint32(0)
	if mat.Texture != nil {
		tex = r.texture(mat.Texture)
	}
	p.SetBool("uUseTexture", tex != 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	if mat.Transparent {
		gl.Enable(gl.BLEND)
		gl.DepthMask(false)
	} else {
		gl.Disable(gl.BLEND)
		gl.DepthMask(true)
	}
	if mat.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	applySide(mat.Side)

	r.mesh(o.Geometry).draw()
}

func (r *Renderer) renderDepth(sc *scene.Scene, lightViewProj math.Mat4) {
	r.shadow.Begin()
	defer r.shadow.End()

	r.depth.Use()
	r.depth.SetMat4("uLightViewProj", lightViewProj)
	for _, o := range sc.Pickable() {
		if !o.CastShadow {
			continue
		}
		r.depth.SetMat4("uModel", o.WorldMatrix())
		r.mesh(o.Geometry).draw()
	}
	gl.BindVertexArray(0)
}

func applySide(s scene.Side) {
	switch s {
	case scene.DoubleSide:
		gl.Disable(gl.CULL_FACE)
	case scene.BackSide:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.FRONT)
	default:
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
}
