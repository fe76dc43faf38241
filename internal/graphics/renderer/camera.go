package renderer

import (
	"sketchgl/internal/color"
	"sketchgl/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Perspective installs a user perspective projection; fovy is in radians.
// Resizing no longer touches the projection.
func (r *RendererGL) Perspective(fovy, aspect, near, far float32) {
	r.camera.SetUser(mgl32.Perspective(fovy, aspect, near, far))
}

// Ortho installs a user orthographic projection
func (r *RendererGL) Ortho(left, right, bottom, top, near, far float32) {
	r.camera.SetUser(mgl32.Ortho(left, right, bottom, top, near, far))
}

// CameraMode reports whether the projection is unset, default or user supplied
func (r *RendererGL) CameraMode() graphics.CameraMode { return r.camera.Mode() }

// Projection returns the current projection matrix
func (r *RendererGL) Projection() mgl32.Mat4 { return r.camera.Projection() }

// LightKind distinguishes the light types counted per frame
type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
	LightPoint
)

// Light is a light registered during the current frame
type Light struct {
	Kind  LightKind
	Color color.Color
	// Vector is the direction of a directional light or the position of a point light
	Vector mgl32.Vec3
}

// LightCounts holds the number of lights of each kind in the current frame
type LightCounts struct {
	Ambient     int
	Directional int
	Point       int
}

type lightState struct {
	counts LightCounts
	lights []Light
}

func (l *lightState) reset() {
	l.counts = LightCounts{}
	l.lights = l.lights[:0]
}

func (l *lightState) add(light Light) {
	switch light.Kind {
	case LightAmbient:
		l.counts.Ambient++
	case LightDirectional:
		l.counts.Directional++
	case LightPoint:
		l.counts.Point++
	}
	l.lights = append(l.lights, light)
}

func (r *RendererGL) AmbientLight(c color.Color) {
	r.lights.add(Light{Kind: LightAmbient, Color: c})
}

// DirectionalLight adds a light shining along direction. A zero direction is ignored.
func (r *RendererGL) DirectionalLight(c color.Color, direction mgl32.Vec3) {
	if direction.Len() == 0 {
		return
	}
	r.lights.add(Light{Kind: LightDirectional, Color: c, Vector: direction.Normalize()})
}

func (r *RendererGL) PointLight(c color.Color, position mgl32.Vec3) {
	r.lights.add(Light{Kind: LightPoint, Color: c, Vector: position})
}

// LightCounts returns the per-kind light counters of the current frame
func (r *RendererGL) LightCounts() LightCounts { return r.lights.counts }

// Lights returns a copy of the lights registered this frame
func (r *RendererGL) Lights() []Light {
	return append([]Light(nil), r.lights.lights...)
}
