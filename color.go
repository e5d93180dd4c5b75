package ui

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGBA color with components in [0, 1].
// The zero value is transparent black.
type Color struct {
	R, G, B, A float32
}

var (
	Black       = Color{A: 1}
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Transparent = Color{}
)

// RGB returns an opaque Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255, A: 1}
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("invalid color %q: missing '#'", s)
	}

	alpha := float32(1)
	switch len(hex) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float32(a) / 255
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("invalid color %q: want 3, 6 or 8 hex digits", s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: alpha}, nil
}

// MustParseHex is like ParseHex but panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic("ui: " + err.Error())
	}
	return c
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func (c Color) Hex() string {
	hex := c.colorful().Clamped().Hex()
	if c.A >= 1 {
		return hex
	}
	_, _, _, a := c.RGBA8()
	return fmt.Sprintf("%s%02x", hex, a)
}

// Mix blends c toward other by t in [0, 1]. RGB is blended in CIE-L*a*b*
// space so midpoints stay perceptually even; alpha is blended linearly.
func (c Color) Mix(other Color, t float32) Color {
	t = clamp01(t)
	m := c.colorful().BlendLab(other.colorful(), float64(t)).Clamped()
	return Color{
		R: float32(m.R),
		G: float32(m.G),
		B: float32(m.B),
		A: c.A + (other.A-c.A)*t,
	}
}

// RGBA8 returns the 8-bit components of c, clamped to range.
func (c Color) RGBA8() (r, g, b, a uint8) {
	r, g, b = c.colorful().Clamped().RGB255()
	a = uint8(clamp01(c.A)*255 + 0.5)
	return r, g, b, a
}

// Packed returns c as 0xAABBGGRR, the vertex color layout used by the GPU
// backend.
func (c Color) Packed() uint32 {
	r, g, b, a := c.RGBA8()
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// IsTransparent reports whether c has zero alpha.
func (c Color) IsTransparent() bool {
	return c.A <= 0
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
