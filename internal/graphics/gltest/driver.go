// Package gltest provides an in-memory graphics.Driver that records state
// and uploads so renderer behaviour can be checked without a display.
package gltest

import (
	"fmt"

	"sketchgl/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

type shader struct {
	stage    graphics.ShaderStage
	source   string
	compiled bool
	log      string
}

type program struct {
	shaders   []uint32
	linked    bool
	log       string
	deleted   bool
	locations map[string]int32
	values    map[string]any
}

type location struct {
	program uint32
	name    string
}

// Driver is a recording graphics.Driver. Fields are exported for assertions.
type Driver struct {
	// Width and Height are the drawing buffer size in pixels
	Width, Height int

	// FailCompile returns a non-empty log to make a shader fail to compile
	FailCompile func(stage graphics.ShaderStage, source string) string
	// FailLink returns a non-empty log to make a program fail to link
	FailLink func(vertexSource, fragmentSource string) string

	CompileCalls int
	LinkCalls    int
	UseCalls     int

	CurrentProgram uint32
	Enabled        map[graphics.Capability]bool
	DepthLessEqual bool
	DepthWrite     bool
	BlendAdd       bool
	Blend          [2]graphics.BlendFactor
	ViewportRect   [4]int
	ClearRGBA      [4]float32
	Clears         []graphics.ClearMask

	BoundTexture uint32
	Textures     map[uint32][]byte

	// Pixels is the framebuffer, RGBA, bottom row first
	Pixels []byte

	// Errors collects misuse the real API would flag, such as uploading
	// to a location of a program that is not bound
	Errors []string

	nextID    uint32
	nextLoc   int32
	shaders   map[uint32]*shader
	programs  map[uint32]*program
	locations map[int32]location
}

// NewDriver returns a driver with a cleared framebuffer of the given size
func NewDriver(width, height int) *Driver {
	return &Driver{
		Width:      width,
		Height:     height,
		Enabled:    make(map[graphics.Capability]bool),
		DepthWrite: true,
		Textures:   make(map[uint32][]byte),
		Pixels:     make([]byte, width*height*4),
		shaders:    make(map[uint32]*shader),
		programs:   make(map[uint32]*program),
		locations:  make(map[int32]location),
	}
}

var _ graphics.Driver = (*Driver)(nil)

func (d *Driver) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Driver) errorf(format string, args ...any) {
	d.Errors = append(d.Errors, fmt.Sprintf(format, args...))
}

func (d *Driver) CreateShader(stage graphics.ShaderStage) uint32 {
	id := d.id()
	d.shaders[id] = &shader{stage: stage}
	return id
}

func (d *Driver) ShaderSource(id uint32, source string) {
	if s, ok := d.shaders[id]; ok {
		s.source = source
	}
}

func (d *Driver) CompileShader(id uint32) {
	d.CompileCalls++
	s, ok := d.shaders[id]
	if !ok {
		d.errorf("compile of unknown shader %d", id)
		return
	}
	s.compiled = true
	if d.FailCompile != nil {
		if log := d.FailCompile(s.stage, s.source); log != "" {
			s.compiled = false
			s.log = log
		}
	}
}

func (d *Driver) ShaderCompiled(id uint32) bool {
	s, ok := d.shaders[id]
	return ok && s.compiled
}

func (d *Driver) ShaderInfoLog(id uint32) string {
	if s, ok := d.shaders[id]; ok {
		return s.log
	}
	return ""
}

func (d *Driver) DeleteShader(id uint32) {}

func (d *Driver) CreateProgram() uint32 {
	id := d.id()
	d.programs[id] = &program{
		locations: make(map[string]int32),
		values:    make(map[string]any),
	}
	return id
}

func (d *Driver) AttachShader(prog, sh uint32) {
	if p, ok := d.programs[prog]; ok {
		p.shaders = append(p.shaders, sh)
	}
}

func (d *Driver) LinkProgram(prog uint32) {
	d.LinkCalls++
	p, ok := d.programs[prog]
	if !ok {
		d.errorf("link of unknown program %d", prog)
		return
	}
	p.linked = true
	if d.FailLink == nil {
		return
	}
	var vert, frag string
	for _, sh := range p.shaders {
		s := d.shaders[sh]
		if s.stage == graphics.StageVertex {
			vert = s.source
		} else {
			frag = s.source
		}
	}
	if log := d.FailLink(vert, frag); log != "" {
		p.linked = false
		p.log = log
	}
}

func (d *Driver) ProgramLinked(prog uint32) bool {
	p, ok := d.programs[prog]
	return ok && p.linked
}

func (d *Driver) ProgramInfoLog(prog uint32) string {
	if p, ok := d.programs[prog]; ok {
		return p.log
	}
	return ""
}

func (d *Driver) UseProgram(prog uint32) {
	d.UseCalls++
	if p, ok := d.programs[prog]; !ok || p.deleted || !p.linked {
		d.errorf("use of invalid program %d", prog)
	}
	d.CurrentProgram = prog
}

func (d *Driver) DeleteProgram(prog uint32) {
	if p, ok := d.programs[prog]; ok {
		p.deleted = true
	}
}

// ProgramDeleted reports whether DeleteProgram was called for prog
func (d *Driver) ProgramDeleted(prog uint32) bool {
	p, ok := d.programs[prog]
	return ok && p.deleted
}

func (d *Driver) GetUniformLocation(prog uint32, name string) int32 {
	p, ok := d.programs[prog]
	if !ok || !p.linked {
		return graphics.NoLocation
	}
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := d.nextLoc
	d.nextLoc++
	p.locations[name] = loc
	d.locations[loc] = location{program: prog, name: name}
	return loc
}

func (d *Driver) upload(loc int32, v any) {
	if loc == graphics.NoLocation {
		return
	}
	l, ok := d.locations[loc]
	if !ok {
		d.errorf("upload to unknown location %d", loc)
		return
	}
	if l.program != d.CurrentProgram {
		d.errorf("upload of %s to program %d while %d is bound", l.name, l.program, d.CurrentProgram)
		return
	}
	d.programs[l.program].values[l.name] = v
}

func (d *Driver) Uniform1i(loc int32, v int32)             { d.upload(loc, v) }
func (d *Driver) Uniform1f(loc int32, v float32)           { d.upload(loc, v) }
func (d *Driver) Uniform4f(loc int32, x, y, z, w float32)  { d.upload(loc, [4]float32{x, y, z, w}) }
func (d *Driver) UniformMatrix3fv(loc int32, m mgl32.Mat3) { d.upload(loc, m) }
func (d *Driver) UniformMatrix4fv(loc int32, m mgl32.Mat4) { d.upload(loc, m) }

// Uniform returns the last value uploaded to a named uniform of prog
func (d *Driver) Uniform(prog uint32, name string) (any, bool) {
	p, ok := d.programs[prog]
	if !ok {
		return nil, false
	}
	v, ok := p.values[name]
	return v, ok
}

// Vec4 returns a vec4 uniform, or false if none was uploaded
func (d *Driver) Vec4(prog uint32, name string) ([4]float32, bool) {
	v, ok := d.Uniform(prog, name)
	if !ok {
		return [4]float32{}, false
	}
	vec, ok := v.([4]float32)
	return vec, ok
}

// Mat4 returns a 4x4 matrix uniform, or false if none was uploaded
func (d *Driver) Mat4(prog uint32, name string) (mgl32.Mat4, bool) {
	v, ok := d.Uniform(prog, name)
	if !ok {
		return mgl32.Mat4{}, false
	}
	m, ok := v.(mgl32.Mat4)
	return m, ok
}

func (d *Driver) CreateTexture() uint32 { return d.id() }

func (d *Driver) BindTexture2D(tex uint32) { d.BoundTexture = tex }

func (d *Driver) TexImage2DRGBA(width, height int, pixels []byte) {
	if d.BoundTexture == 0 {
		d.errorf("texture upload with no texture bound")
		return
	}
	d.Textures[d.BoundTexture] = append([]byte(nil), pixels...)
}

func (d *Driver) DeleteTexture(tex uint32) { delete(d.Textures, tex) }

func (d *Driver) Enable(c graphics.Capability)  { d.Enabled[c] = true }
func (d *Driver) Disable(c graphics.Capability) { d.Enabled[c] = false }
func (d *Driver) DepthFuncLessEqual()           { d.DepthLessEqual = true }
func (d *Driver) DepthMask(write bool)          { d.DepthWrite = write }
func (d *Driver) BlendEquationAdd()             { d.BlendAdd = true }

func (d *Driver) BlendFunc(src, dst graphics.BlendFactor) {
	d.Blend = [2]graphics.BlendFactor{src, dst}
}

func (d *Driver) Viewport(x, y, width, height int) {
	d.ViewportRect = [4]int{x, y, width, height}
}

func (d *Driver) ClearColor(r, g, b, a float32) { d.ClearRGBA = [4]float32{r, g, b, a} }

func (d *Driver) Clear(mask graphics.ClearMask) {
	d.Clears = append(d.Clears, mask)
	if mask&graphics.ClearColorBuffer == 0 {
		return
	}
	px := [4]byte{}
	for i, c := range d.ClearRGBA {
		px[i] = byte(c*255 + 0.5)
	}
	for i := 0; i < len(d.Pixels); i += 4 {
		copy(d.Pixels[i:i+4], px[:])
	}
}

// SetPixel writes one framebuffer pixel; y counts from the bottom row
func (d *Driver) SetPixel(x, y int, rgba [4]byte) {
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return
	}
	i := (y*d.Width + x) * 4
	copy(d.Pixels[i:i+4], rgba[:])
}

func (d *Driver) ReadPixels(x, y, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	out := make([]byte, width*height*4)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			sx, sy := x+col, y+row
			if sx < 0 || sy < 0 || sx >= d.Width || sy >= d.Height {
				continue
			}
			src := (sy*d.Width + sx) * 4
			dst := (row*width + col) * 4
			copy(out[dst:dst+4], d.Pixels[src:src+4])
		}
	}
	return out
}

func (d *Driver) DrawingBufferSize() (int, int) { return d.Width, d.Height }
