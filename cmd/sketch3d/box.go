package main

import (
	"sketchgl/internal/color"
	"sketchgl/internal/graphics"
	"sketchgl/internal/graphics/renderer"
	"sketchgl/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Box draws a spinning cube, filled or as a wireframe
type Box struct {
	Filled bool
	Size   float32
	Speed  float32

	angle    float32
	faceVAO  uint32
	faceVBO  uint32
	lineVAO  uint32
	lineVBO  uint32
	faceVert int32
	lineVert int32
}

// NewBox creates a new box renderable
func NewBox() *Box {
	return &Box{Filled: true, Size: 200, Speed: 0.8}
}

// Init uploads the cube geometry to the current context
func (b *Box) Init(r renderer.Renderer3D) error {
	faces := cubeFaces()
	b.faceVAO, b.faceVBO = upload(faces, 6)
	b.faceVert = int32(len(faces) / 6)

	lines := cubeEdges()
	b.lineVAO, b.lineVBO = upload(lines, 3)
	b.lineVert = int32(len(lines) / 3)
	return nil
}

// Render draws the box for one frame
func (b *Box) Render(r renderer.Renderer3D, dt float64) {
	if b.faceVAO == 0 {
		return
	}
	defer profiling.Track("box.Render")()

	b.angle += b.Speed * float32(dt)

	r.Background(color.RGBA(0.12, 0.12, 0.14, 1))
	r.AmbientLight(color.RGBA(0.4, 0.4, 0.4, 1))
	r.DirectionalLight(color.RGBA(1, 1, 1, 1), mgl32.Vec3{0, 0, -1})

	r.Push()
	defer popFrame(r)
	r.RotateX(b.angle * 0.7)
	r.RotateY(b.angle)
	r.Scale(b.Size, b.Size, b.Size)

	if b.Filled {
		r.Fill(color.RGBA(0.9, 0.55, 0.2, 1))
		if _, err := r.PrepareDraw(); err != nil {
			return
		}
		gl.BindVertexArray(b.faceVAO)
		gl.DrawArrays(gl.TRIANGLES, 0, b.faceVert)
		return
	}

	r.NoFill()
	r.Stroke(color.RGBA(1, 1, 1, 1))
	if _, err := r.PrepareDraw(); err != nil {
		return
	}
	gl.BindVertexArray(b.lineVAO)
	gl.DrawArrays(gl.LINES, 0, b.lineVert)
}

// popFrame closes the push of a frame and reports an unbalanced stack
func popFrame(r renderer.Renderer) {
	if err := r.Pop(); err != nil {
		graphics.Logger().Error("unbalanced frame", "error", err)
	}
}

// Dispose releases the geometry. Safe to call twice.
func (b *Box) Dispose() {
	for _, vao := range []*uint32{&b.faceVAO, &b.lineVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, vbo := range []*uint32{&b.faceVBO, &b.lineVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
			*vbo = 0
		}
	}
}

// upload creates a VAO with position at location 0 and, for a stride of 6,
// normals at location 1.
func upload(data []float32, stride int32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride*4, 0)
	gl.EnableVertexAttribArray(0)
	if stride == 6 {
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride*4, 3*4)
		gl.EnableVertexAttribArray(1)
	}

	gl.BindVertexArray(0)
	return vao, vbo
}

var cubeCorners = [8]mgl32.Vec3{
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
}

// cubeFaces returns two triangles per face as interleaved position/normal
func cubeFaces() []float32 {
	quads := []struct {
		idx    [4]int
		normal mgl32.Vec3
	}{
		{[4]int{0, 1, 2, 3}, mgl32.Vec3{0, 0, 1}},
		{[4]int{5, 4, 7, 6}, mgl32.Vec3{0, 0, -1}},
		{[4]int{4, 0, 3, 7}, mgl32.Vec3{-1, 0, 0}},
		{[4]int{1, 5, 6, 2}, mgl32.Vec3{1, 0, 0}},
		{[4]int{3, 2, 6, 7}, mgl32.Vec3{0, 1, 0}},
		{[4]int{4, 5, 1, 0}, mgl32.Vec3{0, -1, 0}},
	}
	out := make([]float32, 0, 6*6*6)
	for _, q := range quads {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			p := cubeCorners[q.idx[i]]
			out = append(out, p[0], p[1], p[2], q.normal[0], q.normal[1], q.normal[2])
		}
	}
	return out
}

// cubeEdges returns the twelve edges as line segments
func cubeEdges() []float32 {
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	out := make([]float32, 0, 12*2*3)
	for _, e := range edges {
		for _, i := range e {
			p := cubeCorners[i]
			out = append(out, p[0], p[1], p[2])
		}
	}
	return out
}
