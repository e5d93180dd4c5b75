package term

import (
	"strings"

	"github.com/mattn/go-runewidth"

	ui "github.com/grindlemire/go-ui"
)

// Indicator metrics sized for cells. The ui defaults for Radio and Checkbox
// are pixel sizes (a 28 unit indicator and 15 units of spacing) and would
// make each control 28 rows tall here; pass these to Size and Spacing.
const (
	IndicatorSize    float32 = 3
	IndicatorSpacing float32 = 1
)

// Renderer draws ui widgets into a Buffer. One layout unit is one cell and
// every line of text is one row tall, whatever the requested font size.
// Widget sizes are therefore cell counts; see IndicatorSize.
type Renderer struct {
	buf   *Buffer
	theme Theme
}

var (
	_ ui.RadioRenderer    = (*Renderer)(nil)
	_ ui.CheckboxRenderer = (*Renderer)(nil)
)

// NewRenderer creates a Renderer drawing into buf.
func NewRenderer(buf *Buffer, theme Theme) *Renderer {
	return &Renderer{buf: buf, theme: theme}
}

// Buffer returns the target buffer.
func (r *Renderer) Buffer() *Buffer {
	return r.buf
}

// MeasureText returns the cell size of content, wrapped to a defined bounds
// width.
func (r *Renderer) MeasureText(content string, _ float32, bounds ui.Size[ui.Number]) ui.Size[float32] {
	lines := wrap(content, bounds.Width)
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return ui.Size[float32]{Width: float32(width), Height: float32(len(lines))}
}

// DrawText draws content aligned inside bounds, one wrapped line per row.
func (r *Renderer) DrawText(content string, bounds ui.Rectangle, _ float32, color ui.Color, h ui.HorizontalAlignment, v ui.VerticalAlignment) {
	rect := CellRect(bounds)
	if rect.IsEmpty() {
		return
	}
	lines := wrap(content, ui.Defined(float32(rect.W)))
	style := Style{Fg: color}

	top := rect.Y + int(v.Offset(float32(rect.H), float32(len(lines))))
	for i, line := range lines {
		line = runewidth.Truncate(line, rect.W, "")
		left := rect.X + int(h.Offset(float32(rect.W), float32(runewidth.StringWidth(line))))
		r.buf.SetString(left, top+i, line, style, rect)
	}
}

// DrawRadio draws "(•)" or "( )" centered in indicator.
func (r *Renderer) DrawRadio(selected bool, indicator, bounds ui.Rectangle, cursor ui.Point) ui.MouseCursor {
	mark := "( )"
	if selected {
		mark = "(•)"
	}
	return r.drawIndicator(mark, selected, indicator, bounds, cursor)
}

// DrawCheckbox draws "[x]" or "[ ]" centered in indicator.
func (r *Renderer) DrawCheckbox(checked bool, indicator, bounds ui.Rectangle, cursor ui.Point) ui.MouseCursor {
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	return r.drawIndicator(mark, checked, indicator, bounds, cursor)
}

func (r *Renderer) drawIndicator(mark string, active bool, indicator, bounds ui.Rectangle, cursor ui.Point) ui.MouseCursor {
	hovered := bounds.Contains(cursor)

	style := r.theme.Indicator
	switch {
	case active:
		style = r.theme.Selected
	case hovered:
		style = r.theme.IndicatorHover
	}

	rect := CellRect(indicator)
	x := rect.X + (rect.W-runewidth.StringWidth(mark))/2
	y := rect.Y + (rect.H-1)/2
	r.buf.SetString(x, y, mark, style, rect)

	if hovered {
		return ui.CursorPointer
	}
	return ui.CursorOutOfBounds
}

// wrap splits content into lines, breaking at width cells when defined.
func wrap(content string, width ui.Number) []string {
	if w, ok := width.Get(); ok && w >= 1 {
		content = runewidth.Wrap(content, int(w))
	}
	return strings.Split(content, "\n")
}
