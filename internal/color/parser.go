package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Mode selects how the three color values are interpreted.
type Mode int

const (
	ModeRGB Mode = iota
	ModeHSB
	ModeHSL
)

func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeHSB:
		return "hsb"
	case ModeHSL:
		return "hsl"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Maxes holds the upper bound of each value in a mode: three channels then alpha.
type Maxes [4]float64

var defaultMaxes = map[Mode]Maxes{
	ModeRGB: {255, 255, 255, 255},
	ModeHSB: {360, 100, 100, 1},
	ModeHSL: {360, 100, 100, 1},
}

// Parser converts values expressed in the current color mode.
// The zero value is not usable; call NewParser.
type Parser struct {
	mode  Mode
	maxes map[Mode]Maxes
}

// NewParser returns a parser in RGB mode with 0..255 ranges.
func NewParser() *Parser {
	p := &Parser{mode: ModeRGB, maxes: make(map[Mode]Maxes, len(defaultMaxes))}
	for m, mx := range defaultMaxes {
		p.maxes[m] = mx
	}
	return p
}

// Mode returns the active color mode.
func (p *Parser) Mode() Mode { return p.mode }

// SetMode switches the active color mode keeping that mode's ranges.
func (p *Parser) SetMode(m Mode) {
	p.mode = m
}

// SetMaxes replaces the ranges of a mode. Non-positive entries keep the previous value.
func (p *Parser) SetMaxes(m Mode, mx Maxes) {
	cur := p.maxes[m]
	for i, v := range mx {
		if v > 0 {
			cur[i] = v
		}
	}
	p.maxes[m] = cur
}

// Gray returns an opaque gray. v is measured against the mode's third range
// (red/blue in RGB, brightness in HSB, lightness in HSL).
func (p *Parser) Gray(v float64) Color {
	mx := p.maxes[p.mode]
	return p.GrayAlpha(v, mx[3])
}

// GrayAlpha returns a gray with the given alpha.
func (p *Parser) GrayAlpha(v, a float64) Color {
	mx := p.maxes[p.mode]
	g := float32(norm(v, mx[2]))
	return Color{R: g, G: g, B: g, A: float32(norm(a, mx[3]))}
}

// Values returns an opaque color from three values in the current mode.
func (p *Parser) Values(v1, v2, v3 float64) Color {
	mx := p.maxes[p.mode]
	return p.ValuesAlpha(v1, v2, v3, mx[3])
}

// ValuesAlpha returns a color from three values and alpha in the current mode.
func (p *Parser) ValuesAlpha(v1, v2, v3, a float64) Color {
	mx := p.maxes[p.mode]
	n1, n2, n3 := norm(v1, mx[0]), norm(v2, mx[1]), norm(v3, mx[2])
	alpha := norm(a, mx[3])

	// hue wraps so that the top of the range is red again
	hue := math.Mod(n1, 1) * 360
	switch p.mode {
	case ModeHSB:
		return fromColorful(colorful.Hsv(hue, n2, n3), alpha)
	case ModeHSL:
		return fromColorful(colorful.Hsl(hue, n2, n3), alpha)
	}
	return Color{R: float32(n1), G: float32(n2), B: float32(n3), A: float32(alpha)}
}

// Named parses a CSS color keyword or a hex string (#rgb, #rgba, #rrggbb, #rrggbbaa).
func (p *Parser) Named(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromStd(c), nil
	}
	return Color{}, fmt.Errorf("unrecognised color %q", s)
}

// parseHex splits off the alpha digits colorful does not read
func parseHex(s string) (Color, error) {
	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, fmt.Errorf("invalid hex color %s", s)
		}
	}

	rgb, alpha := digits, ""
	switch len(digits) {
	case 3, 6:
	case 4, 8:
		n := len(digits) / 4
		rgb, alpha = digits[:3*n], digits[3*n:]
	default:
		return Color{}, fmt.Errorf("invalid hex color length %s", s)
	}

	c, err := colorful.Hex("#" + rgb)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %s: %w", s, err)
	}
	a := 1.0
	if alpha != "" {
		if len(alpha) == 1 {
			alpha += alpha
		}
		v, err := strconv.ParseUint(alpha, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex alpha %s: %w", s, err)
		}
		a = float64(v) / 255
	}
	return fromColorful(c, a), nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func fromColorful(c colorful.Color, alpha float64) Color {
	c = c.Clamped()
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(alpha)}
}

func norm(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, v/max))
}
