package gpu

import (
	"strings"

	ui "github.com/grindlemire/go-ui"
)

const circleSegments = 32

// Canvas draws ui widgets into a DrawList. Layout units are pixels.
type Canvas struct {
	dl          *DrawList
	atlas       *Atlas
	fontTexture uint32
	theme       Theme
	quads       []GlyphQuad
}

var (
	_ ui.RadioRenderer    = (*Canvas)(nil)
	_ ui.CheckboxRenderer = (*Canvas)(nil)
)

// NewCanvas creates a Canvas. fontTexture is the device handle of atlas's
// image and is recorded on every text command.
func NewCanvas(dl *DrawList, atlas *Atlas, fontTexture uint32, theme Theme) *Canvas {
	return &Canvas{dl: dl, atlas: atlas, fontTexture: fontTexture, theme: theme}
}

// DrawList returns the target list.
func (c *Canvas) DrawList() *DrawList {
	return c.dl
}

// MeasureText returns the pixel size of content, wrapped to a defined bounds
// width.
func (c *Canvas) MeasureText(content string, size float32, bounds ui.Size[ui.Number]) ui.Size[float32] {
	lines := c.wrap(content, size, bounds.Width)
	var width float32
	for _, line := range lines {
		width = max(width, c.atlas.Measure(line, size))
	}
	return ui.Size[float32]{Width: width, Height: float32(len(lines)) * c.atlas.LineHeight(size)}
}

// DrawText draws content aligned inside bounds and clipped to it.
func (c *Canvas) DrawText(content string, bounds ui.Rectangle, size float32, color ui.Color, h ui.HorizontalAlignment, v ui.VerticalAlignment) {
	if bounds.IsEmpty() || color.IsTransparent() {
		return
	}
	lines := c.wrap(content, size, ui.Defined(bounds.Width))
	lineHeight := c.atlas.LineHeight(size)

	c.quads = c.quads[:0]
	y := bounds.Y + v.Offset(bounds.Height, float32(len(lines))*lineHeight)
	for _, line := range lines {
		x := bounds.X + h.Offset(bounds.Width, c.atlas.Measure(line, size))
		c.quads = c.atlas.AppendQuads(c.quads, line, x, y, size)
		y += lineHeight
	}

	c.dl.PushClipRect(bounds)
	c.dl.SetTexture(c.fontTexture)
	c.dl.AddGlyphQuads(c.quads, color)
	c.dl.SetTexture(0)
	c.dl.PopClipRect()
}

// DrawRadio draws a round indicator with a dot when selected.
func (c *Canvas) DrawRadio(selected bool, indicator, bounds ui.Rectangle, cursor ui.Point) ui.MouseCursor {
	hovered := bounds.Contains(cursor)
	center := indicator.Center()
	radius := min(indicator.Width, indicator.Height) / 2

	c.dl.AddCircle(center, radius, c.background(hovered), circleSegments)
	c.dl.AddRing(center, radius, c.theme.BorderWidth, c.theme.Border, circleSegments)
	if selected {
		c.dl.AddCircle(center, radius/2, c.theme.Mark, circleSegments)
	}
	return pointerIf(hovered)
}

// DrawCheckbox draws a square indicator filled in its middle when checked.
func (c *Canvas) DrawCheckbox(checked bool, indicator, bounds ui.Rectangle, cursor ui.Point) ui.MouseCursor {
	hovered := bounds.Contains(cursor)

	c.dl.AddRect(indicator, c.background(hovered))
	c.dl.AddRectOutline(indicator, c.theme.Border, c.theme.BorderWidth)
	if checked {
		inset := min(indicator.Width, indicator.Height) / 4
		c.dl.AddRect(indicator.Inset(ui.EdgeAll(inset)), c.theme.Mark)
	}
	return pointerIf(hovered)
}

func (c *Canvas) background(hovered bool) ui.Color {
	if hovered {
		return c.theme.BackgroundHover
	}
	return c.theme.Background
}

func pointerIf(hovered bool) ui.MouseCursor {
	if hovered {
		return ui.CursorPointer
	}
	return ui.CursorOutOfBounds
}

// wrap splits content into lines, breaking every whole number of glyphs
// that fits a defined width. A width narrower than one glyph, including a
// negative one, does not wrap.
func (c *Canvas) wrap(content string, size float32, width ui.Number) []string {
	lines := strings.Split(content, "\n")
	w, ok := width.Get()
	advance := c.atlas.Advance(size)
	if !ok || advance <= 0 || w+1e-3 < advance {
		return lines
	}
	per := int(w/advance + 1e-3)

	var out []string
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) <= per {
			out = append(out, line)
			continue
		}
		for len(runes) > per {
			out = append(out, string(runes[:per]))
			runes = runes[per:]
		}
		out = append(out, string(runes))
	}
	return out
}
