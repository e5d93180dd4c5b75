package ui

import "fmt"

const (
	defaultIndicatorSize    float32 = 28
	defaultIndicatorSpacing float32 = 15
)

// Radio is one choice of a mutually exclusive group. It holds no state:
// whether it is selected is decided at construction by comparing its value
// with the current selection, and clicking it emits the message bound at
// construction for the owner to apply.
type Radio[M any, R RadioRenderer] struct {
	selected  bool
	label     string
	onClick   M
	size      float32
	spacing   float32
	textSize  float32
	textColor Color
}

// NewRadio creates a Radio for value. It is selected when selected is non-nil
// and equal to value. Pressing it emits f(value).
func NewRadio[M any, R RadioRenderer, V comparable](value V, label string, selected *V, f func(V) M) *Radio[M, R] {
	if f == nil {
		panic("ui: nil radio message function")
	}
	return &Radio[M, R]{
		selected:  selected != nil && *selected == value,
		label:     label,
		onClick:   f(value),
		size:      defaultIndicatorSize,
		spacing:   defaultIndicatorSpacing,
		textSize:  DefaultTextSize,
		textColor: White,
	}
}

// Size sets the side of the square indicator.
func (r *Radio[M, R]) Size(size float32) *Radio[M, R] {
	r.size = size
	return r
}

// Spacing sets the gap between indicator and label.
func (r *Radio[M, R]) Spacing(spacing float32) *Radio[M, R] {
	r.spacing = spacing
	return r
}

// TextSize sets the label font size.
func (r *Radio[M, R]) TextSize(size float32) *Radio[M, R] {
	r.textSize = size
	return r
}

// TextColor sets the label color.
func (r *Radio[M, R]) TextColor(c Color) *Radio[M, R] {
	r.textColor = c
	return r
}

// IsSelected reports whether this Radio is the current selection.
func (r *Radio[M, R]) IsSelected() bool {
	return r.selected
}

// Label returns the label text.
func (r *Radio[M, R]) Label() string {
	return r.label
}

// content builds the indicator and label as an internal row. Node and Draw
// both use it so the layout children always line up.
func (r *Radio[M, R]) content() (*Row[M, R], *Text[M, R]) {
	label := NewText[M, R](r.label).Size(r.textSize).Color(r.textColor)
	row := NewRow[M, R](WithSpacing(r.spacing), WithAlignItems(AlignCenter)).
		Push(NewColumn[M, R](WithSize(r.size, r.size))).
		Push(label)
	return row, label
}

// Node implements Widget.
func (r *Radio[M, R]) Node(renderer R) Node {
	row, _ := r.content()
	return row.Node(renderer)
}

// OnEvent emits the bound message on a left press inside the bounds.
func (r *Radio[M, R]) OnEvent(event Event, layout Layout, cursor Point, messages *[]M) {
	if isPrimaryPress(event) && layout.Bounds().Contains(cursor) {
		*messages = append(*messages, r.onClick)
	}
}

// Draw draws the label, then asks the renderer to draw the indicator.
func (r *Radio[M, R]) Draw(renderer R, layout Layout, cursor Point) MouseCursor {
	indicator, labelLayout := indicatorParts(layout)
	_, label := r.content()
	label.Draw(renderer, labelLayout, cursor)
	return renderer.DrawRadio(r.selected, indicator.Bounds(), layout.Bounds(), cursor)
}

// Hash implements Widget. The selection flag and colors only affect drawing.
func (r *Radio[M, R]) Hash(h *Hasher) {
	h.WriteString("radio")
	h.WriteString(r.label)
	h.WriteFloat32(r.size)
	h.WriteFloat32(r.spacing)
	h.WriteFloat32(r.textSize)
}

func isPrimaryPress(event Event) bool {
	input, ok := event.(MouseInput)
	return ok && input.Button == MouseButtonLeft && input.State == ButtonPressed
}

// indicatorParts splits the layout of an indicator+label row.
func indicatorParts(layout Layout) (indicator, label Layout) {
	if layout.ChildCount() != 2 {
		panic(fmt.Sprintf("ui: indicator layout has %d children, want 2", layout.ChildCount()))
	}
	return layout.Child(0), layout.Child(1)
}
