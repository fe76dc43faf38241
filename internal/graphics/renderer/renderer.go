package renderer

import (
	"errors"
	"fmt"

	"sketchgl/internal/color"
	"sketchgl/internal/config"
	"sketchgl/internal/graphics"
	"sketchgl/internal/profiling"
)

// ErrNoContext is returned after a context reset failed and left the
// renderer without a graphics context.
var ErrNoContext = errors.New("renderer has no graphics context")

// Options configures a new RendererGL
type Options struct {
	Width      int
	Height     int
	Attributes config.Attributes
	Factory    graphics.SurfaceFactory
	// Library defaults to the built-in shaders
	Library *graphics.ShaderLibrary
	// Colors defaults to an RGB 0..255 parser
	Colors *color.Parser
}

// RendererGL is the 3D renderer state machine. It owns the graphics
// context, the shader cache (through the context), the material state,
// the model-view stack and the camera. It must be used from one thread.
type RendererGL struct {
	factory graphics.SurfaceFactory
	library *graphics.ShaderLibrary
	colors  *color.Parser

	ctx    *graphics.RenderContext
	width  int
	height int

	material     graphics.MaterialState
	curShaderKey string
	newShader    bool

	transforms *graphics.TransformStack
	camera     *graphics.CameraState
	lights     lightState

	pixels   []byte
	deferred []func()
}

// New creates the renderer and its graphics context
func New(opts Options) (*RendererGL, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}
	r := &RendererGL{
		factory: opts.Factory,
		library: opts.Library,
		colors:  opts.Colors,
		width:   opts.Width,
		height:  opts.Height,
	}
	if r.library == nil {
		r.library = graphics.NewShaderLibrary()
	}
	if r.colors == nil {
		r.colors = color.NewParser()
	}

	ctx, err := graphics.NewRenderContext(r.factory, opts.Attributes, r.width, r.height, r.library)
	if err != nil {
		return nil, err
	}
	r.ctx = ctx
	r.applyDefaults()
	return r, nil
}

// applyDefaults restores the draw state of a fresh renderer
func (r *RendererGL) applyDefaults() {
	r.material = graphics.DefaultMaterial()
	r.curShaderKey = ""
	r.newShader = false
	r.transforms = graphics.NewTransformStack()
	r.camera = graphics.NewCameraState()
	r.lights.reset()
	r.pixels = nil
}

func (r *RendererGL) Width() int  { return r.width }
func (r *RendererGL) Height() int { return r.height }

// Colors returns the parser used to interpret user color values
func (r *RendererGL) Colors() *color.Parser { return r.colors }

// Context returns the current render context, nil after a failed reset
func (r *RendererGL) Context() *graphics.RenderContext { return r.ctx }

// Attributes returns the attributes of the current context
func (r *RendererGL) Attributes() config.Attributes {
	if r.ctx == nil {
		return config.Attributes{}
	}
	return r.ctx.Attributes
}

func (r *RendererGL) driver() graphics.Driver {
	return r.ctx.Driver()
}

// Resize resizes the drawing buffer and refreshes a default camera
func (r *RendererGL) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	if r.ctx != nil {
		r.ctx.Resize(width, height)
	}
	r.camera.Resize(width, height)
}

// BeginFrame puts the renderer in its starting pose for a new draw cycle:
// the model-view backs off by the default camera distance, light counters
// are cleared and the default camera is installed if none is set.
func (r *RendererGL) BeginFrame() {
	r.transforms.Reset(graphics.CameraDistance(r.height))
	r.lights.reset()
	r.camera.EnsureDefault(r.width, r.height)
}

// Background clears color and depth with c
func (r *RendererGL) Background(c color.Color) {
	r.Clear(c.R, c.G, c.B, c.A)
}

// Clear clears color and depth with normalized components
func (r *RendererGL) Clear(red, green, blue, alpha float32) {
	if r.ctx == nil {
		return
	}
	d := r.driver()
	d.ClearColor(red, green, blue, alpha)
	d.Clear(graphics.ClearColorBuffer | graphics.ClearDepthBuffer)
}

// PrepareDraw binds the program for the current draw mode and uploads the
// matrices and point size. The caller submits geometry afterwards. An error
// means the program is unusable and nothing must be drawn.
func (r *RendererGL) PrepareDraw() (*graphics.Program, error) {
	defer profiling.Track("renderer.PrepareDraw")()
	if r.ctx == nil {
		return nil, ErrNoContext
	}

	key := r.CurrentShaderID()
	p, ok, err := r.ctx.Shaders.Lookup(key)
	if err != nil {
		return nil, err
	}
	if !ok || p == nil {
		return nil, fmt.Errorf("no program resolved for %q", key)
	}

	p.Use()
	p.SetMatrix4(graphics.UniformProjectionMatrix, r.camera.Projection())
	p.SetMatrix4(graphics.UniformModelViewMatrix, r.transforms.ModelView)
	p.SetFloat(graphics.UniformPointSize, r.material.PointSize)
	if !p.Immediate {
		p.SetMatrix3(graphics.UniformNormalMatrix, r.transforms.NormalMatrix())
		r.driver().BindTexture2D(r.ctx.EmptyTexture())
		p.SetInt(graphics.UniformSampler, 0)
	}
	profiling.Count("renderer.uniformUploads")
	r.newShader = false
	return p, nil
}

// SetUniform1f uploads a float uniform to a cached program
func (r *RendererGL) SetUniform1f(shaderKey, name string, value float32) error {
	if r.ctx == nil {
		return ErrNoContext
	}
	p, ok, err := r.ctx.Shaders.Lookup(shaderKey)
	if err != nil {
		return err
	}
	if !ok || p == nil {
		return fmt.Errorf("shader %q not in cache", shaderKey)
	}
	p.Use()
	p.SetFloat(name, value)
	return nil
}

// Dispose releases the graphics context
func (r *RendererGL) Dispose() {
	if r.ctx != nil {
		r.ctx.Destroy()
		r.ctx = nil
	}
}
