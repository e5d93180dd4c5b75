package ui

// DefaultTextSize is the font size of Text when none is set.
const DefaultTextSize float32 = 20

// Text is a leaf widget that displays a string. It never emits messages.
type Text[M any, R TextRenderer] struct {
	content string
	size    float32
	color   Color
	hAlign  HorizontalAlignment
	vAlign  VerticalAlignment
	style   Style
}

// NewText creates a Text showing content, white, at DefaultTextSize.
func NewText[M any, R TextRenderer](content string, opts ...Option) *Text[M, R] {
	return &Text[M, R]{
		content: content,
		size:    DefaultTextSize,
		color:   White,
		style:   applyOptions(DefaultStyle(), opts),
	}
}

// Size sets the font size.
func (t *Text[M, R]) Size(size float32) *Text[M, R] {
	t.size = size
	return t
}

// Color sets the text color.
func (t *Text[M, R]) Color(c Color) *Text[M, R] {
	t.color = c
	return t
}

// HorizontalAlignment sets how the text is placed along x within its bounds.
func (t *Text[M, R]) HorizontalAlignment(a HorizontalAlignment) *Text[M, R] {
	t.hAlign = a
	return t
}

// VerticalAlignment sets how the text is placed along y within its bounds.
func (t *Text[M, R]) VerticalAlignment(a VerticalAlignment) *Text[M, R] {
	t.vAlign = a
	return t
}

// Content returns the displayed string.
func (t *Text[M, R]) Content() string {
	return t.content
}

// Node returns a measured leaf sized by the renderer's text metrics.
func (t *Text[M, R]) Node(renderer R) Node {
	content, size := t.content, t.size
	return NewMeasureNode(t.style, func(bounds Size[Number]) Size[float32] {
		return renderer.MeasureText(content, size, bounds)
	})
}

// OnEvent implements Widget. Text ignores all events.
func (t *Text[M, R]) OnEvent(Event, Layout, Point, *[]M) {}

// Draw implements Widget.
func (t *Text[M, R]) Draw(renderer R, layout Layout, _ Point) MouseCursor {
	renderer.DrawText(t.content, layout.Bounds(), t.size, t.color, t.hAlign, t.vAlign)
	return CursorOutOfBounds
}

// Hash implements Widget. Color and alignment only affect drawing.
func (t *Text[M, R]) Hash(h *Hasher) {
	h.WriteString("text")
	h.WriteString(t.content)
	h.WriteFloat32(t.size)
	h.WriteStyle(t.style)
}
