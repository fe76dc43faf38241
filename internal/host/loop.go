package host

import (
	"log/slog"
	"time"

	"sketchgl/internal/graphics"
	"sketchgl/internal/graphics/renderer"
	"sketchgl/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// SlowFrame is the frame time above which the loop logs its top tasks
const SlowFrame = 50 * time.Millisecond

// Run drives p until the current window is closed. Each tick polls events,
// runs the pipeline and swaps. A context reset during a tick is picked up
// on the next one.
func Run(f *Factory, p *renderer.Pipeline) {
	limiter := NewFrameLimiter()
	last := time.Now()
	for {
		w := f.Current()
		if w == nil || w.win.ShouldClose() {
			return
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		profiling.ResetFrame()
		glfw.PollEvents()
		p.Frame(dt)

		if w = f.Current(); w == nil {
			return
		}
		w.win.SwapBuffers()

		if d := time.Since(now); d > SlowFrame {
			graphics.Logger().Debug("slow frame", slog.Duration("took", d), slog.String("top", profiling.TopN(5)))
		}
		limiter.Wait()
	}
}
