package graphics

import (
	"embed"
	"fmt"
	"path"
)

// Built-in shader identifiers
const (
	NormalVert      = "normalVert"
	NormalFrag      = "normalFrag"
	BasicFrag       = "basicFrag"
	ImmediateVert   = "immediateVert"
	VertexColorFrag = "vertexColorFrag"
)

// Shader file paths inside the embedded filesystem
const shadersDir = "shaders"

var builtinFiles = map[string]string{
	NormalVert:      "normal.vert",
	NormalFrag:      "normal.frag",
	BasicFrag:       "basic.frag",
	ImmediateVert:   "immediate.vert",
	VertexColorFrag: "vertex_color.frag",
}

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// UnknownShaderError is returned when a shader id has no registered source
type UnknownShaderError struct {
	ID string
}

func (e *UnknownShaderError) Error() string {
	return fmt.Sprintf("no shader source registered for %q", e.ID)
}

// ShaderLibrary maps shader identifiers to GLSL source
type ShaderLibrary struct {
	sources map[string]string
}

// NewShaderLibrary returns a library holding the built-in shaders
func NewShaderLibrary() *ShaderLibrary {
	lib := &ShaderLibrary{sources: make(map[string]string, len(builtinFiles))}
	for id, file := range builtinFiles {
		src, err := shaderFS.ReadFile(path.Join(shadersDir, file))
		if err != nil {
			// embedded files are fixed at build time
			panic(fmt.Sprintf("missing embedded shader %s: %v", file, err))
		}
		lib.sources[id] = string(src)
	}
	return lib
}

// Register adds or replaces the source for an id
func (l *ShaderLibrary) Register(id, source string) {
	l.sources[id] = source
}

// Source returns the GLSL source for an id
func (l *ShaderLibrary) Source(id string) (string, error) {
	src, ok := l.sources[id]
	if !ok {
		return "", &UnknownShaderError{ID: id}
	}
	return src, nil
}
