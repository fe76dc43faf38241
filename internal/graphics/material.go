package graphics

import "sketchgl/internal/color"

// DrawMode selects how geometry is shaded
type DrawMode int

const (
	// DrawWireframe draws edges with the stroke color only
	DrawWireframe DrawMode = iota
	// DrawFill shades faces with the fill color
	DrawFill
)

func (m DrawMode) String() string {
	if m == DrawFill {
		return "fill"
	}
	return "wireframe"
}

// DefaultPointSize is the point and stroke size before any strokeWeight call
const DefaultPointSize = 5.0

// MaterialState is the fill/stroke state read at draw time
type MaterialState struct {
	Fill      color.Color
	Stroke    color.Color
	PointSize float32
	Mode      DrawMode
	// Immediate is set while vertices carry their own colors
	Immediate bool
}

// DefaultMaterial returns the state of a freshly created renderer
func DefaultMaterial() MaterialState {
	gray := color.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	return MaterialState{
		Fill:      gray,
		Stroke:    gray,
		PointSize: DefaultPointSize,
		Mode:      DrawWireframe,
	}
}

// ShaderPair names the vertex and fragment shaders of a program
type ShaderPair struct {
	Vert      string
	Frag      string
	Immediate bool
}

// Key returns the shader cache key of the pair
func (p ShaderPair) Key() string { return ShaderKey(p.Vert, p.Frag) }

var (
	// UniformColorShader takes its color from uMaterialColor
	UniformColorShader = ShaderPair{Vert: NormalVert, Frag: BasicFrag}
	// VertexColorShader takes its color from each vertex
	VertexColorShader = ShaderPair{Vert: ImmediateVert, Frag: VertexColorFrag, Immediate: true}
	// NormalMaterialShader colors surfaces by their normals
	NormalMaterialShader = ShaderPair{Vert: NormalVert, Frag: NormalFrag}
)

// SelectShader picks the program for a draw mode
func SelectShader(mode DrawMode, immediate bool) ShaderPair {
	if mode == DrawFill && immediate {
		return VertexColorShader
	}
	return UniformColorShader
}
