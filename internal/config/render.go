package config

import "sync"

// RenderSettings holds host-level render configuration
type RenderSettings struct {
	mu           sync.RWMutex
	swapInterval int
	msaaSamples  int
	frameRate    int
}

var globalRenderSettings = &RenderSettings{
	swapInterval: 1, // vsync on
	msaaSamples:  4, // used when the antialias attribute is set
	frameRate:    0, // unlimited
}

// GetMSAASamples returns the sample count requested for antialiased contexts
func GetMSAASamples() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.msaaSamples
}

// SetMSAASamples sets the sample count, rounded down to a power of two
func SetMSAASamples(samples int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if samples < 1 {
		samples = 1
	}
	if samples > 16 {
		samples = 16
	}
	pow := 1
	for pow*2 <= samples {
		pow *= 2
	}

	globalRenderSettings.msaaSamples = pow
}

// GetSwapInterval returns the buffer swap interval (0 disables vsync)
func GetSwapInterval() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.swapInterval
}

// SetSwapInterval sets the buffer swap interval
func SetSwapInterval(interval int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if interval < 0 {
		interval = 0
	}
	if interval > 4 {
		interval = 4
	}

	globalRenderSettings.swapInterval = interval
}

// GetFrameRate returns the frame rate cap (0 means uncapped)
func GetFrameRate() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.frameRate
}

// SetFrameRate caps the frame loop. Values <= 0 remove the cap.
func SetFrameRate(fps int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if fps < 0 {
		fps = 0
	}
	if fps > 1000 {
		fps = 1000
	}

	globalRenderSettings.frameRate = fps
}
