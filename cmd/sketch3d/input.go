package main

import (
	"fmt"
	"os"
	"time"

	"sketchgl/internal/config"
	"sketchgl/internal/graphics"
	"sketchgl/internal/graphics/renderer"
	"sketchgl/internal/host"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// setupInputHandlers wires keys and window resizes. Anything touching the
// context is deferred to the next tick so it never runs inside a glfw callback.
func setupInputHandlers(f *host.Factory, r *renderer.RendererGL, box *Box) {
	f.OnResize = func(width, height int) {
		if width > 0 && height > 0 {
			r.Resize(width, height)
		}
	}
	f.OnKey = func(key glfw.Key, action glfw.Action) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			if w := f.Current(); w != nil {
				w.GLFW().SetShouldClose(true)
			}
		case glfw.KeyF:
			box.Filled = !box.Filled
		case glfw.KeyA:
			r.Defer(func() { toggleAttribute(r, box, config.AttrAntialias) })
		case glfw.KeyP:
			r.Defer(func() { toggleAttribute(r, box, config.AttrPreserveDrawingBuffer) })
		case glfw.KeyS:
			r.Defer(func() { saveFrame(r) })
		}
	}
}

// toggleAttribute flips one attribute. The box geometry belongs to the old
// context, so it is released first and rebuilt once the new one is up.
func toggleAttribute(r *renderer.RendererGL, box *Box, name string) {
	attrs := r.Attributes()
	current, err := attrs.Get(name)
	if err != nil {
		graphics.Logger().Warn("toggle attribute", "error", err)
		return
	}
	next, err := attrs.Merge(map[string]bool{name: !current})
	if err != nil {
		graphics.Logger().Warn("toggle attribute", "error", err)
		return
	}

	box.Dispose()
	err = r.ResetContext(next, func(r *renderer.RendererGL) {
		if err := box.Init(r); err != nil {
			graphics.Logger().Error("rebuild box", "error", err)
		}
	})
	if err != nil {
		graphics.Logger().Error("reset context", "error", err)
		return
	}
	graphics.Logger().Info("context rebuilt", name, !current)
}

func saveFrame(r *renderer.RendererGL) {
	name := fmt.Sprintf("sketch-%s.png", time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		graphics.Logger().Error("save frame", "error", err)
		return
	}
	defer f.Close()

	if err := r.SaveFrame(f, "png"); err != nil {
		graphics.Logger().Error("save frame", "error", err)
		return
	}
	graphics.Logger().Info("saved frame", "file", name, "density", r.PixelDensity())
}
