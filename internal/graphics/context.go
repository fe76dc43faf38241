package graphics

import (
	"fmt"

	"sketchgl/internal/config"
)

// ContextCreationError reports that no graphics context could be created
type ContextCreationError struct {
	Err error
}

func (e *ContextCreationError) Error() string {
	return fmt.Sprintf("error creating gl context: %v", e.Err)
}

func (e *ContextCreationError) Unwrap() error { return e.Err }

// RenderContext owns a surface, its driver and every GPU resource created
// on it. It is replaced wholesale when attributes change.
type RenderContext struct {
	Attributes config.Attributes
	Width      int
	Height     int
	Shaders    *ShaderCache

	surface      Surface
	driver       Driver
	emptyTexture uint32
}

// NewRenderContext creates a surface and configures depth testing, shader point
// size and the viewport
func NewRenderContext(factory SurfaceFactory, attrs config.Attributes, width, height int, lib *ShaderLibrary) (*RenderContext, error) {
	if factory == nil {
		return nil, &ContextCreationError{Err: fmt.Errorf("no surface factory")}
	}
	surface, err := factory(attrs, width, height)
	if err != nil {
		return nil, &ContextCreationError{Err: err}
	}
	if surface == nil || surface.Driver() == nil {
		return nil, &ContextCreationError{Err: fmt.Errorf("surface has no driver")}
	}

	d := surface.Driver()
	ctx := &RenderContext{
		Attributes: attrs,
		Width:      width,
		Height:     height,
		surface:    surface,
		driver:     d,
	}
	ctx.Shaders = NewShaderCache(d, lib)
	ctx.Shaders.OnCreate = func(*Program) { ctx.ensureEmptyTexture() }

	d.Enable(CapDepthTest)
	d.Enable(CapProgramPointSize)
	d.DepthFuncLessEqual()
	ctx.updateViewport()

	Logger().Info("enabled gl context", "width", width, "height", height, "attributes", attrs.Map())
	return ctx, nil
}

// Driver returns the graphics API of the context
func (c *RenderContext) Driver() Driver { return c.driver }

// Resize resizes the surface and resets the viewport to the drawing buffer
func (c *RenderContext) Resize(width, height int) {
	c.Width, c.Height = width, height
	c.surface.Resize(width, height)
	c.updateViewport()
}

func (c *RenderContext) updateViewport() {
	w, h := c.driver.DrawingBufferSize()
	c.driver.Viewport(0, 0, w, h)
}

// EmptyTexture returns the 1x1 white texture bound when no image is used.
// It is zero until the first program is created.
func (c *RenderContext) EmptyTexture() uint32 { return c.emptyTexture }

func (c *RenderContext) ensureEmptyTexture() {
	if c.emptyTexture != 0 {
		return
	}
	c.emptyTexture = c.driver.CreateTexture()
	c.driver.BindTexture2D(c.emptyTexture)
	c.driver.TexImage2DRGBA(1, 1, []byte{255, 255, 255, 255})
}

// Destroy releases the programs, the empty texture and the surface
func (c *RenderContext) Destroy() {
	c.Shaders.Dispose()
	if c.emptyTexture != 0 {
		c.driver.DeleteTexture(c.emptyTexture)
		c.emptyTexture = 0
	}
	c.surface.Destroy()
	Logger().Info("destroyed gl context")
}
