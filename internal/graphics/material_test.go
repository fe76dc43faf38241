package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectShader(t *testing.T) {
	assert.Equal(t, UniformColorShader, SelectShader(DrawFill, false))
	assert.Equal(t, VertexColorShader, SelectShader(DrawFill, true))
	assert.Equal(t, UniformColorShader, SelectShader(DrawWireframe, false))
	assert.Equal(t, UniformColorShader, SelectShader(DrawWireframe, true))
}

func TestDefaultMaterial(t *testing.T) {
	m := DefaultMaterial()
	assert.Equal(t, DrawWireframe, m.Mode)
	assert.Equal(t, float32(5), m.PointSize)
	assert.Equal(t, [4]float32{0.5, 0.5, 0.5, 1}, m.Fill.Array())
	assert.Equal(t, m.Fill, m.Stroke)
	assert.False(t, m.Immediate)
}

func TestShaderPairKeys(t *testing.T) {
	assert.Equal(t, "normalVert|basicFrag", UniformColorShader.Key())
	assert.Equal(t, "immediateVert|vertexColorFrag", VertexColorShader.Key())
	assert.Equal(t, "normalVert|normalFrag", NormalMaterialShader.Key())
}

func TestBuiltinShadersEmbedded(t *testing.T) {
	lib := NewShaderLibrary()
	for id := range builtinFiles {
		src, err := lib.Source(id)
		assert.NoError(t, err, id)
		assert.Contains(t, src, "#version 410 core", id)
	}
}
