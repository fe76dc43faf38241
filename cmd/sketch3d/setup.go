package main

import (
	"flag"
	"io"
	"log/slog"

	"sketchgl/internal/config"
)

type options struct {
	width, height int
	samples       int
	swapInterval  int
	frameRate     int
	antialias     bool
	alpha         bool
	preserve      bool
	verbose       bool
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.width, "width", 900, "canvas width")
	flag.IntVar(&o.height, "height", 600, "canvas height")
	flag.IntVar(&o.samples, "samples", config.GetMSAASamples(), "MSAA samples when antialiasing")
	flag.IntVar(&o.swapInterval, "vsync", config.GetSwapInterval(), "swap interval, 0 disables vsync")
	flag.IntVar(&o.frameRate, "fps", config.GetFrameRate(), "frame rate cap, 0 for none")
	flag.BoolVar(&o.antialias, "antialias", false, "request a multisampled drawing buffer")
	flag.BoolVar(&o.alpha, "alpha", true, "request an alpha channel")
	flag.BoolVar(&o.preserve, "preserve", true, "preserve the drawing buffer for pixel read-back")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()
	return o
}

func (o options) attributes() config.Attributes {
	a := config.DefaultAttributes()
	a.Antialias = o.antialias
	a.Alpha = o.alpha
	a.PreserveDrawingBuffer = o.preserve
	return a
}

// newLogger reports warnings and errors, shader failures included; verbose
// adds the debug trace of cache hits and uniform uploads.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
