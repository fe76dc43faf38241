package renderer

import (
	"sketchgl/internal/profiling"
)

// Pipeline drives a renderer and its renderables once per tick
type Pipeline struct {
	renderables []Renderable
	gl          *RendererGL
}

// NewPipeline initializes every renderable against r
func NewPipeline(r *RendererGL, rs ...Renderable) (*Pipeline, error) {
	p := &Pipeline{renderables: rs, gl: r}

	// Initialize all renderables
	for i, rd := range rs {
		if err := rd.Init(r); err != nil {
			// Dispose the ones already initialized
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}

	return p, nil
}

// Frame runs one tick: continuations queued during the previous tick,
// the per-frame reset, then every renderable in order.
func (p *Pipeline) Frame(dt float64) {
	defer profiling.Track("renderer.Frame")()

	p.gl.RunDeferred()
	p.gl.BeginFrame()

	// Render all features
	for _, rd := range p.renderables {
		rd.Render(p.gl, dt)
	}
}

// Renderer returns the driven renderer
func (p *Pipeline) Renderer() *RendererGL { return p.gl }

// Dispose cleans up all renderables in reverse order, then the renderer
func (p *Pipeline) Dispose() {
	for i := len(p.renderables) - 1; i >= 0; i-- {
		p.renderables[i].Dispose()
	}
	p.gl.Dispose()
}
