package gpu

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas is a single-channel glyph texture cut from a fixed-width bitmap font.
// Font sizes are line heights in pixels; glyphs are scaled from the face's
// native cell height.
type Atlas struct {
	face   *basicfont.Face
	pix    *image.Alpha
	glyphs map[rune][4]float32
}

// NewAtlas copies the glyph mask of face into an alpha texture.
func NewAtlas(face *basicfont.Face) *Atlas {
	b := face.Mask.Bounds()
	pix := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pix, pix.Bounds(), face.Mask, b.Min, draw.Src)
	return &Atlas{face: face, pix: pix, glyphs: make(map[rune][4]float32)}
}

// DefaultAtlas returns an atlas of the 7x13 fixed font.
func DefaultAtlas() *Atlas {
	return NewAtlas(basicfont.Face7x13)
}

// Image returns the texture. Pixel rows are tightly packed.
func (a *Atlas) Image() *image.Alpha {
	return a.pix
}

// scale converts a line height in pixels into a factor over the native face.
func (a *Atlas) scale(size float32) float32 {
	return size / float32(a.face.Height)
}

// Advance returns the horizontal distance between glyph origins.
func (a *Atlas) Advance(size float32) float32 {
	return float32(a.face.Advance) * a.scale(size)
}

// LineHeight returns the height of one line of text. It equals size.
func (a *Atlas) LineHeight(size float32) float32 {
	return float32(a.face.Height) * a.scale(size)
}

// Measure returns the width of a single line of text.
func (a *Atlas) Measure(line string, size float32) float32 {
	n := 0
	for range line {
		n++
	}
	return float32(n) * a.Advance(size)
}

// uv returns the texture rectangle of r. Runes the face lacks fall back to
// its replacement glyph; ok is false when even that is missing.
func (a *Atlas) uv(r rune) ([4]float32, bool) {
	if uv, ok := a.glyphs[r]; ok {
		return uv, true
	}
	_, _, maskp, _, ok := a.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return [4]float32{}, false
	}
	w, h := float32(a.pix.Rect.Dx()), float32(a.pix.Rect.Dy())
	uv := [4]float32{
		float32(maskp.X) / w,
		float32(maskp.Y) / h,
		float32(maskp.X+a.face.Width) / w,
		float32(maskp.Y+a.face.Height) / h,
	}
	a.glyphs[r] = uv
	return uv, true
}

// AppendQuads appends one quad per glyph of line, with the line's top-left
// corner at (x, y).
func (a *Atlas) AppendQuads(dst []GlyphQuad, line string, x, y, size float32) []GlyphQuad {
	s := a.scale(size)
	advance := a.Advance(size)
	width := float32(a.face.Width) * s
	height := float32(a.face.Height) * s
	left := float32(a.face.Left) * s

	pen := x
	for _, r := range line {
		if uv, ok := a.uv(r); ok && r != ' ' {
			dst = append(dst, GlyphQuad{
				X0: pen + left, Y0: y,
				X1: pen + left + width, Y1: y + height,
				U0: uv[0], V0: uv[1],
				U1: uv[2], V1: uv[3],
			})
		}
		pen += advance
	}
	return dst
}
