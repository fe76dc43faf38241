package renderer

import (
	"sketchgl/internal/config"
	"sketchgl/internal/graphics"
)

// SetAttribute changes one context attribute and rebuilds the context
func (r *RendererGL) SetAttribute(name string, value bool) error {
	return r.SetAttributes(map[string]bool{name: value})
}

// SetAttributes merges values into the current attributes and rebuilds
// the context. Unknown names leave the renderer untouched.
func (r *RendererGL) SetAttributes(values map[string]bool) error {
	attrs, err := r.baseAttributes().Merge(values)
	if err != nil {
		graphics.Logger().Warn("setAttributes rejected", "error", err)
		return err
	}
	return r.ResetContext(attrs, nil)
}

func (r *RendererGL) baseAttributes() config.Attributes {
	if r.ctx == nil {
		return config.DefaultAttributes()
	}
	return r.ctx.Attributes
}

// ResetContext destroys the current context with every program and
// texture on it, then builds a new one with attrs at the same size and
// restores the default draw state. cont, if not nil, runs on the next
// tick (see RunDeferred) once the switch is complete. Draws must not be
// interleaved with a reset.
func (r *RendererGL) ResetContext(attrs config.Attributes, cont func(*RendererGL)) error {
	if r.ctx != nil {
		r.ctx.Destroy()
		r.ctx = nil
	}

	ctx, err := graphics.NewRenderContext(r.factory, attrs, r.width, r.height, r.library)
	if err != nil {
		return err
	}
	r.ctx = ctx
	r.ctx.Resize(r.width, r.height)
	r.applyDefaults()

	if cont != nil {
		r.deferred = append(r.deferred, func() { cont(r) })
	}
	return nil
}

// Defer queues fn for the next tick
func (r *RendererGL) Defer(fn func()) {
	r.deferred = append(r.deferred, fn)
}

// RunDeferred runs the continuations queued before this call. Anything
// they queue waits for the following tick.
func (r *RendererGL) RunDeferred() int {
	pending := r.deferred
	r.deferred = nil
	for _, fn := range pending {
		fn()
	}
	return len(pending)
}

// Pending returns the number of queued continuations
func (r *RendererGL) Pending() int { return len(r.deferred) }
