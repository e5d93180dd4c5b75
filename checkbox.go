package ui

// Checkbox is a labeled on/off toggle. Like Radio it is stateless: pressing
// it emits f(!checked) and the owner decides the next checked value.
type Checkbox[M any, R CheckboxRenderer] struct {
	checked   bool
	label     string
	onToggle  M
	size      float32
	spacing   float32
	textSize  float32
	textColor Color
}

// NewCheckbox creates a Checkbox showing checked.
func NewCheckbox[M any, R CheckboxRenderer](checked bool, label string, f func(bool) M) *Checkbox[M, R] {
	if f == nil {
		panic("ui: nil checkbox message function")
	}
	return &Checkbox[M, R]{
		checked:   checked,
		label:     label,
		onToggle:  f(!checked),
		size:      defaultIndicatorSize,
		spacing:   defaultIndicatorSpacing,
		textSize:  DefaultTextSize,
		textColor: White,
	}
}

// Size sets the side of the box.
func (c *Checkbox[M, R]) Size(size float32) *Checkbox[M, R] {
	c.size = size
	return c
}

// Spacing sets the gap between box and label.
func (c *Checkbox[M, R]) Spacing(spacing float32) *Checkbox[M, R] {
	c.spacing = spacing
	return c
}

// TextSize sets the label font size.
func (c *Checkbox[M, R]) TextSize(size float32) *Checkbox[M, R] {
	c.textSize = size
	return c
}

// TextColor sets the label color.
func (c *Checkbox[M, R]) TextColor(color Color) *Checkbox[M, R] {
	c.textColor = color
	return c
}

// IsChecked reports the displayed state.
func (c *Checkbox[M, R]) IsChecked() bool {
	return c.checked
}

func (c *Checkbox[M, R]) content() (*Row[M, R], *Text[M, R]) {
	label := NewText[M, R](c.label).Size(c.textSize).Color(c.textColor)
	row := NewRow[M, R](WithSpacing(c.spacing), WithAlignItems(AlignCenter)).
		Push(NewColumn[M, R](WithSize(c.size, c.size))).
		Push(label)
	return row, label
}

// Node implements Widget.
func (c *Checkbox[M, R]) Node(renderer R) Node {
	row, _ := c.content()
	return row.Node(renderer)
}

// OnEvent emits the toggle message on a left press inside the bounds.
func (c *Checkbox[M, R]) OnEvent(event Event, layout Layout, cursor Point, messages *[]M) {
	if isPrimaryPress(event) && layout.Bounds().Contains(cursor) {
		*messages = append(*messages, c.onToggle)
	}
}

// Draw implements Widget.
func (c *Checkbox[M, R]) Draw(renderer R, layout Layout, cursor Point) MouseCursor {
	box, labelLayout := indicatorParts(layout)
	_, label := c.content()
	label.Draw(renderer, labelLayout, cursor)
	return renderer.DrawCheckbox(c.checked, box.Bounds(), layout.Bounds(), cursor)
}

// Hash implements Widget.
func (c *Checkbox[M, R]) Hash(h *Hasher) {
	h.WriteString("checkbox")
	h.WriteString(c.label)
	h.WriteFloat32(c.size)
	h.WriteFloat32(c.spacing)
	h.WriteFloat32(c.textSize)
}
