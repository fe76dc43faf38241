package gltest

import (
	"errors"

	"sketchgl/internal/config"
	"sketchgl/internal/graphics"
)

// Surface is an in-memory graphics.Surface backed by a Driver
type Surface struct {
	D          *Driver
	Attributes config.Attributes
	Density    int
	Width      int
	Height     int
	Destroyed  bool
}

func (s *Surface) Driver() graphics.Driver { return s.D }

func (s *Surface) Resize(width, height int) {
	s.Width, s.Height = width, height
	s.D.Width, s.D.Height = width*s.Density, height*s.Density
	s.D.Pixels = make([]byte, s.D.Width*s.D.Height*4)
}

func (s *Surface) Destroy() { s.Destroyed = true }

// ErrNoContext is returned by a Factory with Fail set
var ErrNoContext = errors.New("gl context unavailable")

// Factory creates Surfaces and remembers each one
type Factory struct {
	// Density is the framebuffer pixels per canvas unit, 1 if zero
	Density int
	// Fail makes the next creations return ErrNoContext
	Fail bool
	// Configure runs on every new driver before it is handed out
	Configure func(d *Driver)

	Surfaces []*Surface
}

// New implements graphics.SurfaceFactory
func (f *Factory) New(attrs config.Attributes, width, height int) (graphics.Surface, error) {
	if f.Fail {
		return nil, ErrNoContext
	}
	density := f.Density
	if density < 1 {
		density = 1
	}
	s := &Surface{
		D:          NewDriver(width*density, height*density),
		Attributes: attrs,
		Density:    density,
		Width:      width,
		Height:     height,
	}
	if f.Configure != nil {
		f.Configure(s.D)
	}
	f.Surfaces = append(f.Surfaces, s)
	return s, nil
}

// Last returns the most recently created surface
func (f *Factory) Last() *Surface {
	if len(f.Surfaces) == 0 {
		return nil
	}
	return f.Surfaces[len(f.Surfaces)-1]
}
