package color

import (
	stdcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func assertColor(t *testing.T, want, got Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, eps, "red")
	assert.InDelta(t, want.G, got.G, eps, "green")
	assert.InDelta(t, want.B, got.B, eps, "blue")
	assert.InDelta(t, want.A, got.A, eps, "alpha")
}

func TestRGBValues(t *testing.T) {
	p := NewParser()
	assertColor(t, Color{1, 0, 0, 1}, p.Values(255, 0, 0))
	assertColor(t, Color{0, 0.5, 1, 0.5}, p.ValuesAlpha(0, 127.5, 255, 127.5))
}

func TestValuesClampToRange(t *testing.T) {
	p := NewParser()
	assertColor(t, Color{1, 0, 1, 1}, p.Values(400, -20, 255))
}

func TestGray(t *testing.T) {
	p := NewParser()
	assertColor(t, Color{0.2, 0.2, 0.2, 1}, p.Gray(51))
	assertColor(t, Color{0.2, 0.2, 0.2, 0}, p.GrayAlpha(51, 0))
}

func TestHSBMode(t *testing.T) {
	p := NewParser()
	p.SetMode(ModeHSB)

	assertColor(t, Color{1, 0, 0, 1}, p.Values(0, 100, 100))
	assertColor(t, Color{0, 1, 0, 1}, p.Values(120, 100, 100))
	assertColor(t, Color{0, 0, 1, 0.5}, p.ValuesAlpha(240, 100, 100, 0.5))
	assertColor(t, Color{0.5, 0.5, 0.5, 1}, p.Gray(50))
	assertColor(t, Color{1, 0, 0, 1}, p.Values(360, 100, 100))
}

func TestHSLMode(t *testing.T) {
	p := NewParser()
	p.SetMode(ModeHSL)

	assertColor(t, Color{1, 0, 0, 1}, p.Values(0, 100, 50))
	assertColor(t, Color{1, 1, 1, 1}, p.Values(200, 100, 100))
}

func TestSetMaxes(t *testing.T) {
	p := NewParser()
	p.SetMaxes(ModeRGB, Maxes{1, 1, 1, 0})
	assertColor(t, Color{0.25, 0.5, 1, 1}, p.ValuesAlpha(0.25, 0.5, 1, 255))
}

func TestNamedColors(t *testing.T) {
	p := NewParser()

	c, err := p.Named("Red")
	require.NoError(t, err)
	assertColor(t, Color{1, 0, 0, 1}, c)

	c, err = p.Named("#0f08")
	require.NoError(t, err)
	assertColor(t, Color{0, 1, 0, float32(0x88) / 255}, c)

	c, err = p.Named("#336699")
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{0x33, 0x66, 0x99, 0xff}, c.Levels())

	c, err = p.Named("#FF000080")
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{0xff, 0, 0, 0x80}, c.Levels())

	_, err = p.Named("not-a-color")
	assert.Error(t, err)
	_, err = p.Named("#12345")
	assert.Error(t, err)
	_, err = p.Named("#zzz")
	assert.Error(t, err)
}

func TestFromStdAndBack(t *testing.T) {
	c := FromStd(stdcolor.NRGBA{R: 255, G: 128, B: 0, A: 255})
	assert.True(t, c.Opaque())
	assert.Equal(t, stdcolor.NRGBA{R: 255, G: 128, B: 0, A: 255}, c.Std())
}

func TestRGBAClamps(t *testing.T) {
	assert.Equal(t, [4]float32{1, 0, 0.5, 1}, RGBA(2, -1, 0.5, 1).Array())
}
