package host

import (
	"testing"

	"sketchgl/internal/config"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestHintsFromDefaults(t *testing.T) {
	h := Hints(config.DefaultAttributes())
	assert.Equal(t, 8, h[glfw.AlphaBits])
	assert.Equal(t, 24, h[glfw.DepthBits])
	assert.Equal(t, 8, h[glfw.StencilBits])
	assert.Equal(t, 0, h[glfw.Samples])
	assert.Equal(t, 0, h[glfw.TransparentFramebuffer])
	assert.Equal(t, glfw.OpenGLCoreProfile, h[glfw.OpenGLProfile])
}

func TestHintsFromAttributes(t *testing.T) {
	defer config.SetMSAASamples(config.GetMSAASamples())
	config.SetMSAASamples(8)

	h := Hints(config.Attributes{Antialias: true, PremultipliedAlpha: true})
	assert.Equal(t, 0, h[glfw.AlphaBits])
	assert.Equal(t, 0, h[glfw.DepthBits])
	assert.Equal(t, 0, h[glfw.StencilBits])
	assert.Equal(t, 8, h[glfw.Samples])
	assert.Equal(t, glfw.True, h[glfw.TransparentFramebuffer])
}
