package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Per-frame timings and counters for renderer operations.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	frameCounts = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under name
// and bumps its counter.
// Usage: defer profiling.Track("renderer.PrepareDraw")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		frameCounts[name]++
		mu.Unlock()
	}
}

// Count bumps a counter without timing, e.g. uniform uploads.
func Count(name string) {
	mu.Lock()
	frameCounts[name]++
	mu.Unlock()
}

// ResetFrame clears the current per-frame totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	clear(frameCounts)
	mu.Unlock()
}

// Snapshot returns a copy of the current per-frame durations.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// Counts returns a copy of the current per-frame counters.
func Counts() map[string]int {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]int, len(frameCounts))
	for k, v := range frameCounts {
		out[k] = v
	}
	return out
}

// TopN formats the n slowest entries of the current frame.
// Example: "shader.compile:4.2ms(1), renderer.PrepareDraw:0.3ms(12)"
func TopN(n int) string {
	ss := Snapshot()
	counts := Counts()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]] == ss[names[j]] {
			return names[i] < names[j]
		}
		return ss[names[i]] > ss[names[j]]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		ms := float64(ss[name].Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms(%d)", name, ms, counts[name]))
	}
	return strings.Join(parts, ", ")
}
