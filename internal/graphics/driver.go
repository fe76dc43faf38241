package graphics

import (
	"sketchgl/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// ShaderStage identifies a programmable pipeline stage
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

// Capability is a server-side feature toggled with Enable/Disable
type Capability int

const (
	CapDepthTest Capability = iota
	CapBlend
	CapCullFace
	// CapProgramPointSize lets vertex shaders set gl_PointSize
	CapProgramPointSize
)

// BlendFactor is a source or destination blend factor
type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

// ClearMask selects the buffers cleared by Clear
type ClearMask int

const (
	ClearColorBuffer ClearMask = 1 << iota
	ClearDepthBuffer
	ClearStencilBuffer
)

// NoLocation is the location returned for uniforms a program does not use.
// Uploads to it are ignored by the driver.
const NoLocation int32 = -1

// Driver is the immediate-submission graphics API the renderer talks to.
// Every call executes in order on the current context; nothing is buffered.
type Driver interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix3fv(location int32, m mgl32.Mat3)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	CreateTexture() uint32
	BindTexture2D(texture uint32)
	TexImage2DRGBA(width, height int, pixels []byte)
	DeleteTexture(texture uint32)

	Enable(c Capability)
	Disable(c Capability)
	DepthFuncLessEqual()
	DepthMask(write bool)
	BlendEquationAdd()
	BlendFunc(src, dst BlendFactor)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)

	// ReadPixels returns width*height RGBA bytes, bottom row first.
	ReadPixels(x, y, width, height int) []byte
	// DrawingBufferSize is the framebuffer size in pixels.
	DrawingBufferSize() (width, height int)
}

// Surface is a drawable target with its own graphics context
type Surface interface {
	Driver() Driver
	Resize(width, height int)
	Destroy()
}

// SurfaceFactory creates a surface honouring the given attributes
type SurfaceFactory func(attrs config.Attributes, width, height int) (Surface, error)
