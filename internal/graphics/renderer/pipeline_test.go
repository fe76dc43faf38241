package renderer

import (
	"errors"
	"testing"

	"sketchgl/internal/color"
	"sketchgl/internal/graphics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderable struct {
	name    string
	log     *[]string
	initErr error
	frames  int
}

func (r *recordingRenderable) Init(Renderer3D) error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recordingRenderable) Render(rd Renderer3D, dt float64) {
	r.frames++
	*r.log = append(*r.log, "render "+r.name)
	rd.Fill(color.RGBA(1, 0, 0, 1))
}

func (r *recordingRenderable) Dispose() {
	*r.log = append(*r.log, "dispose "+r.name)
}

func TestPipelineOrder(t *testing.T) {
	r, f := newTestRenderer(t, 100, 100)
	var log []string
	a := &recordingRenderable{name: "a", log: &log}
	b := &recordingRenderable{name: "b", log: &log}

	p, err := NewPipeline(r, a, b)
	require.NoError(t, err)

	r.Defer(func() { log = append(log, "deferred") })
	r.Translate(50, 50, 50)
	p.Frame(1.0 / 60)

	assert.Equal(t, []string{"init a", "init b", "deferred", "render a", "render b"}, log)
	assert.Equal(t, graphics.CameraDefault, r.CameraMode())

	p.Dispose()
	assert.Equal(t, []string{"dispose b", "dispose a"}, log[len(log)-2:])
	assert.True(t, f.Last().Destroyed)
}

func TestPipelineInitFailure(t *testing.T) {
	r, _ := newTestRenderer(t, 100, 100)
	var log []string
	boom := errors.New("boom")
	a := &recordingRenderable{name: "a", log: &log}
	b := &recordingRenderable{name: "b", log: &log, initErr: boom}

	_, err := NewPipeline(r, a, b)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init a", "init b", "dispose a"}, log)
}
