// Package host creates glfw windows for the renderer and drives the frame loop.
package host

import (
	"fmt"

	"sketchgl/internal/config"
	"sketchgl/internal/graphics"
	"sketchgl/internal/graphics/gldriver"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is a glfw window with a current OpenGL 4.1 core context
type Window struct {
	win    *glfw.Window
	driver *gldriver.Driver
	owner  *Factory
}

func (w *Window) Driver() graphics.Driver { return w.driver }

// GLFW returns the underlying window
func (w *Window) GLFW() *glfw.Window { return w.win }

func (w *Window) Resize(width, height int) {
	if cw, ch := w.win.GetSize(); cw == width && ch == height {
		return
	}
	w.win.SetSize(width, height)
}

func (w *Window) Destroy() {
	w.win.Destroy()
	if w.owner != nil && w.owner.current == w {
		w.owner.current = nil
	}
}

// Hints maps context attributes onto glfw window hints
func Hints(attrs config.Attributes) map[glfw.Hint]int {
	bits := func(on bool, n int) int {
		if on {
			return n
		}
		return 0
	}
	samples := 0
	if attrs.Antialias {
		samples = config.GetMSAASamples()
	}
	return map[glfw.Hint]int{
		glfw.ContextVersionMajor:     4,
		glfw.ContextVersionMinor:     1,
		glfw.OpenGLForwardCompatible: glfw.True,
		glfw.OpenGLProfile:           glfw.OpenGLCoreProfile,
		glfw.AlphaBits:               bits(attrs.Alpha, 8),
		glfw.DepthBits:               bits(attrs.Depth, 24),
		glfw.StencilBits:             bits(attrs.Stencil, 8),
		glfw.Samples:                 samples,
		glfw.TransparentFramebuffer:  bits(attrs.PremultipliedAlpha, glfw.True),
	}
}

// Factory creates windows on demand. glfw must be initialized and every
// call must come from the main thread.
type Factory struct {
	Title     string
	Resizable bool

	// OnResize is installed on every window
	OnResize func(width, height int)
	// OnKey is installed on every window
	OnKey func(key glfw.Key, action glfw.Action)

	current *Window
}

// Current returns the live window, nil before the first one or after it
// was destroyed
func (f *Factory) Current() *Window { return f.current }

// New implements graphics.SurfaceFactory
func (f *Factory) New(attrs config.Attributes, width, height int) (graphics.Surface, error) {
	glfw.DefaultWindowHints()
	for hint, value := range Hints(attrs) {
		glfw.WindowHint(hint, value)
	}
	resizable := glfw.False
	if f.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)

	win, err := glfw.CreateWindow(width, height, f.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(config.GetSwapInterval())

	d, err := gldriver.New(win.GetFramebufferSize)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("load gl: %w", err)
	}
	graphics.Logger().Info("created window", "gl", gldriver.Version(), "width", width, "height", height)

	if f.OnResize != nil {
		cb := f.OnResize
		win.SetSizeCallback(func(_ *glfw.Window, w, h int) { cb(w, h) })
	}
	if f.OnKey != nil {
		cb := f.OnKey
		win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
			cb(key, action)
		})
	}

	f.current = &Window{win: win, driver: d, owner: f}
	return f.current, nil
}
