// Package gldriver implements graphics.Driver on OpenGL 4.1 core.
// All calls must happen on the thread owning the current context.
package gldriver

import (
	"strings"

	"sketchgl/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Driver forwards every call straight to OpenGL
type Driver struct {
	framebufferSize func() (int, int)
}

// New loads the OpenGL function pointers for the current context.
// framebufferSize reports the drawing buffer size in pixels.
func New(framebufferSize func() (int, int)) (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Driver{framebufferSize: framebufferSize}, nil
}

// Version returns the GL version string of the current context
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

var _ graphics.Driver = (*Driver)(nil)

func (d *Driver) CreateShader(stage graphics.ShaderStage) uint32 {
	if stage == graphics.StageVertex {
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
	return gl.CreateShader(gl.FRAGMENT_SHADER)
}

func (d *Driver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (d *Driver) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Driver) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (d *Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (d *Driver) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Driver) UseProgram(program uint32) { gl.UseProgram(program) }

func (d *Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Driver) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (d *Driver) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (d *Driver) Uniform4f(location int32, x, y, z, w float32) { gl.Uniform4f(location, x, y, z, w) }

func (d *Driver) UniformMatrix3fv(location int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (d *Driver) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Driver) CreateTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (d *Driver) BindTexture2D(texture uint32) { gl.BindTexture(gl.TEXTURE_2D, texture) }

func (d *Driver) TexImage2DRGBA(width, height int, pixels []byte) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (d *Driver) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func capability(c graphics.Capability) uint32 {
	switch c {
	case graphics.CapBlend:
		return gl.BLEND
	case graphics.CapCullFace:
		return gl.CULL_FACE
	case graphics.CapProgramPointSize:
		return gl.PROGRAM_POINT_SIZE
	}
	return gl.DEPTH_TEST
}

func (d *Driver) Enable(c graphics.Capability) { gl.Enable(capability(c)) }

func (d *Driver) Disable(c graphics.Capability) { gl.Disable(capability(c)) }

func (d *Driver) DepthFuncLessEqual() { gl.DepthFunc(gl.LEQUAL) }

func (d *Driver) DepthMask(write bool) { gl.DepthMask(write) }

func (d *Driver) BlendEquationAdd() { gl.BlendEquation(gl.FUNC_ADD) }

func blendFactor(f graphics.BlendFactor) uint32 {
	switch f {
	case graphics.BlendZero:
		return gl.ZERO
	case graphics.BlendSrcAlpha:
		return gl.SRC_ALPHA
	case graphics.BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	}
	return gl.ONE
}

func (d *Driver) BlendFunc(src, dst graphics.BlendFactor) {
	gl.BlendFunc(blendFactor(src), blendFactor(dst))
}

func (d *Driver) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (d *Driver) Clear(mask graphics.ClearMask) {
	var bits uint32
	if mask&graphics.ClearColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&graphics.ClearDepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	if mask&graphics.ClearStencilBuffer != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (d *Driver) ReadPixels(x, y, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (d *Driver) DrawingBufferSize() (int, int) {
	return d.framebufferSize()
}
