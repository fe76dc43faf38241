package graphics

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Standard uniform names shared by the built-in shaders
const (
	UniformProjectionMatrix = "uProjectionMatrix"
	UniformModelViewMatrix  = "uModelViewMatrix"
	UniformNormalMatrix     = "uNormalMatrix"
	UniformSampler          = "uSampler"
	UniformMaterialColor    = "uMaterialColor"
	UniformPointSize        = "uPointSize"
)

// ShaderCompileError reports a stage that failed to compile
type ShaderCompileError struct {
	Stage      ShaderStage
	VertexID   string
	FragmentID string
	Log        string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader for %s|%s: %s",
		e.Stage, e.VertexID, e.FragmentID, strings.TrimRight(e.Log, "\x00\n "))
}

// ShaderLinkError reports a program that failed to link
type ShaderLinkError struct {
	VertexID   string
	FragmentID string
	Log        string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("failed to link program %s|%s: %s",
		e.VertexID, e.FragmentID, strings.TrimRight(e.Log, "\x00\n "))
}

// Program is a linked shader program with its resolved uniform locations.
// It is immutable once created.
type Program struct {
	Key        string
	VertexID   string
	FragmentID string
	ID         uint32
	Immediate  bool

	driver    Driver
	locations map[string]int32
}

// Use activates the program
func (p *Program) Use() {
	p.driver.UseProgram(p.ID)
}

// Location returns the cached location of a standard uniform
func (p *Program) Location(name string) (int32, bool) {
	loc, ok := p.locations[name]
	return loc, ok
}

// Locations returns a copy of the resolved uniform locations
func (p *Program) Locations() map[string]int32 {
	out := make(map[string]int32, len(p.locations))
	for k, v := range p.locations {
		out[k] = v
	}
	return out
}

// location falls back to a driver lookup for uniforms outside the standard set
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return p.driver.GetUniformLocation(p.ID, name)
}

// SetInt sets an integer uniform
func (p *Program) SetInt(name string, value int32) {
	p.driver.Uniform1i(p.location(name), value)
}

// SetFloat sets a float uniform
func (p *Program) SetFloat(name string, value float32) {
	p.driver.Uniform1f(p.location(name), value)
}

// SetVector4 sets a vec4 uniform
func (p *Program) SetVector4(name string, v [4]float32) {
	p.driver.Uniform4f(p.location(name), v[0], v[1], v[2], v[3])
}

// SetMatrix3 sets a 3x3 matrix uniform
func (p *Program) SetMatrix3(name string, m mgl32.Mat3) {
	p.driver.UniformMatrix3fv(p.location(name), m)
}

// SetMatrix4 sets a 4x4 matrix uniform
func (p *Program) SetMatrix4(name string, m mgl32.Mat4) {
	p.driver.UniformMatrix4fv(p.location(name), m)
}

// standardUniforms lists the locations resolved at link time.
// Immediate-mode programs carry per-vertex color and no normals or textures.
func standardUniforms(immediate bool) []string {
	if immediate {
		return []string{UniformProjectionMatrix, UniformModelViewMatrix, UniformPointSize}
	}
	return []string{
		UniformProjectionMatrix,
		UniformModelViewMatrix,
		UniformNormalMatrix,
		UniformSampler,
		UniformMaterialColor,
		UniformPointSize,
	}
}

func newProgram(d Driver, vertID, fragID string, vertSrc, fragSrc string, immediate bool) (*Program, error) {
	id, err := compileProgram(d, vertSrc, fragSrc)
	if err != nil {
		switch e := err.(type) {
		case *ShaderCompileError:
			e.VertexID, e.FragmentID = vertID, fragID
		case *ShaderLinkError:
			e.VertexID, e.FragmentID = vertID, fragID
		}
		return nil, err
	}

	p := &Program{
		Key:        ShaderKey(vertID, fragID),
		VertexID:   vertID,
		FragmentID: fragID,
		ID:         id,
		Immediate:  immediate,
		driver:     d,
		locations:  make(map[string]int32),
	}
	d.UseProgram(id)
	for _, name := range standardUniforms(immediate) {
		p.locations[name] = d.GetUniformLocation(id, name)
	}
	return p, nil
}

// Helper functions
func compileProgram(d Driver, vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(d, vertexSrc, StageVertex)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(d, fragmentSrc, StageFragment)
	if err != nil {
		d.DeleteShader(vertexShader)
		return 0, err
	}

	program := d.CreateProgram()
	d.AttachShader(program, vertexShader)
	d.AttachShader(program, fragmentShader)
	d.LinkProgram(program)
	d.DeleteShader(vertexShader)
	d.DeleteShader(fragmentShader)

	if !d.ProgramLinked(program) {
		log := d.ProgramInfoLog(program)
		d.DeleteProgram(program)
		return 0, &ShaderLinkError{Log: log}
	}
	return program, nil
}

func compileShader(d Driver, source string, stage ShaderStage) (uint32, error) {
	shader := d.CreateShader(stage)
	d.ShaderSource(shader, source)
	d.CompileShader(shader)

	if !d.ShaderCompiled(shader) {
		log := d.ShaderInfoLog(shader)
		d.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}
