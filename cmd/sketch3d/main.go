package main

import (
	"os"
	"runtime"

	"sketchgl/internal/config"
	"sketchgl/internal/graphics"
	"sketchgl/internal/graphics/renderer"
	"sketchgl/internal/host"
	"sketchgl/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := parseFlags()
	graphics.SetLogger(newLogger(os.Stderr, opts.verbose))
	config.SetSwapInterval(opts.swapInterval)
	config.SetMSAASamples(opts.samples)
	config.SetFrameRate(opts.frameRate)

	// GL state lives on this thread; closer only reports on the way out.
	defer closer.Close()
	closer.Bind(func() {
		graphics.Logger().Info("exiting", "top", profiling.TopN(5))
	})

	if err := glfw.Init(); err != nil {
		closer.Fatalln(err)
	}

	factory := &host.Factory{Title: "sketch3d", Resizable: true}
	r, err := renderer.New(renderer.Options{
		Width:      opts.width,
		Height:     opts.height,
		Attributes: opts.attributes(),
		Factory:    factory.New,
	})
	if err != nil {
		glfw.Terminate()
		closer.Fatalln(err)
	}

	box := NewBox()
	p, err := renderer.NewPipeline(r, box)
	if err != nil {
		r.Dispose()
		glfw.Terminate()
		closer.Fatalln(err)
	}

	setupInputHandlers(factory, r, box)

	host.Run(factory, p)

	p.Dispose()
	glfw.Terminate()
}
