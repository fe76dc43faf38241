package renderer

import (
	"image"

	"sketchgl/internal/color"
	"sketchgl/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderer is the contract shared by every canvas renderer
type Renderer interface {
	Width() int
	Height() int
	Resize(width, height int)

	Background(c color.Color)
	Clear(r, g, b, a float32)

	Fill(c color.Color)
	NoFill()
	Stroke(c color.Color)
	StrokeWeight(size float32)

	Push()
	Pop() error
	ResetMatrix()

	LoadPixels(x, y, width, height int) error
	Get(rect image.Rectangle) (*image.RGBA, error)

	Dispose()
}

// Renderer3D adds the camera, lights and the model-view stack
type Renderer3D interface {
	Renderer

	Translate(x, y, z float32)
	Scale(x, y, z float32)
	Rotate(angle float32, axis mgl32.Vec3)
	RotateX(angle float32)
	RotateY(angle float32)
	RotateZ(angle float32)

	Perspective(fovy, aspect, near, far float32)
	Ortho(left, right, bottom, top, near, far float32)

	AmbientLight(c color.Color)
	DirectionalLight(c color.Color, direction mgl32.Vec3)
	PointLight(c color.Color, position mgl32.Vec3)

	SetAttribute(name string, value bool) error
	SetAttributes(values map[string]bool) error

	// PrepareDraw binds the program for the next draw call
	PrepareDraw() (*graphics.Program, error)
}

// Renderable is a drawing layer driven once per frame
type Renderable interface {
	Init(r Renderer3D) error
	Render(r Renderer3D, dt float64)
	Dispose()
}

var _ Renderer3D = (*RendererGL)(nil)
