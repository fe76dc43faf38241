package renderer

import (
	"sketchgl/internal/color"
	"sketchgl/internal/graphics"
)

// Fill sets the fill color and switches to filled drawing. Retained
// drawing uploads the color as a uniform right away; immediate drawing
// takes colors from the vertices instead.
func (r *RendererGL) Fill(c color.Color) {
	r.material.Fill = c
	r.material.Mode = graphics.DrawFill
	if r.ctx == nil {
		return
	}
	r.applyColorBlend(c)

	p, err := r.useShader(graphics.SelectShader(graphics.DrawFill, r.material.Immediate))
	if err != nil || r.material.Immediate {
		return
	}
	p.SetVector4(graphics.UniformMaterialColor, c.Array())
}

// NoFill switches to wireframe drawing with alpha blending and the
// current stroke color as material color.
func (r *RendererGL) NoFill() {
	r.material.Mode = graphics.DrawWireframe
	if r.ctx == nil {
		return
	}
	_, err := r.useShader(graphics.SelectShader(graphics.DrawWireframe, r.material.Immediate))
	d := r.driver()
	d.Enable(graphics.CapBlend)
	d.BlendFunc(graphics.BlendSrcAlpha, graphics.BlendOneMinusSrcAlpha)
	if err == nil {
		r.uploadStrokeColor()
	}
}

// Stroke sets the stroke color. In wireframe mode it becomes the material
// color immediately.
func (r *RendererGL) Stroke(c color.Color) {
	r.material.Stroke = c
	if r.ctx != nil && r.material.Mode == graphics.DrawWireframe {
		r.uploadStrokeColor()
	}
}

// StrokeWeight sets the point size used at draw time
func (r *RendererGL) StrokeWeight(size float32) {
	r.material.PointSize = size
}

// SetImmediateMode marks whether vertices carry their own colors
func (r *RendererGL) SetImmediateMode(on bool) {
	r.material.Immediate = on
}

// Material returns a copy of the current material state
func (r *RendererGL) Material() graphics.MaterialState { return r.material }

// CurrentShaderID resolves the shader key used by the next draw. Without
// any fill or stroke call it falls back to the normal material shader.
// Repeated calls return the same key and never recompile.
func (r *RendererGL) CurrentShaderID() string {
	if r.ctx == nil {
		return r.curShaderKey
	}
	switch {
	case r.material.Mode != graphics.DrawFill && r.curShaderKey == "":
		r.useShader(graphics.NormalMaterialShader)
	case r.material.Immediate && r.material.Mode == graphics.DrawFill:
		r.useShader(graphics.VertexColorShader)
	}
	return r.curShaderKey
}

// NewShader reports whether a program was compiled since the last draw preparation
func (r *RendererGL) NewShader() bool { return r.newShader }

// useShader resolves and binds a program and makes it current. The key is
// recorded even when the program failed, so later draws see the failure.
func (r *RendererGL) useShader(pair graphics.ShaderPair) (*graphics.Program, error) {
	cache := r.ctx.Shaders
	key := pair.Key()
	if !cache.Contains(key) {
		r.newShader = true
	}
	r.curShaderKey = key
	return cache.Resolve(pair.Vert, pair.Frag, pair.Immediate)
}

// uploadStrokeColor sends the stroke color to the current program as
// material color. Only the uniform-color program takes one; the normal
// material fallback is left alone.
func (r *RendererGL) uploadStrokeColor() {
	if r.curShaderKey != graphics.UniformColorShader.Key() {
		return
	}
	p, _, err := r.ctx.Shaders.Lookup(r.curShaderKey)
	if err != nil || p == nil {
		return
	}
	p.Use()
	p.SetVector4(graphics.UniformMaterialColor, r.material.Stroke.Array())
}

// applyColorBlend turns on over-compositing for translucent colors and
// stops depth writes so objects behind stay visible.
func (r *RendererGL) applyColorBlend(c color.Color) {
	d := r.driver()
	if !c.Opaque() {
		d.DepthMask(false)
		d.Enable(graphics.CapBlend)
		d.BlendEquationAdd()
		d.BlendFunc(graphics.BlendSrcAlpha, graphics.BlendOneMinusSrcAlpha)
		return
	}
	d.DepthMask(true)
	d.Disable(graphics.CapBlend)
}
