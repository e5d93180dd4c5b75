package ui

// TextRenderer measures and draws text. Both operations always succeed.
type TextRenderer interface {
	// MeasureText returns the size of content at the given font size when
	// laid out within bounds. Undefined bounds impose no limit.
	MeasureText(content string, size float32, bounds Size[Number]) Size[float32]

	// DrawText draws content inside bounds with the given alignment.
	DrawText(content string, bounds Rectangle, size float32, color Color, h HorizontalAlignment, v VerticalAlignment)
}

// RadioRenderer draws the indicator of a Radio. The label is drawn through
// the embedded TextRenderer.
type RadioRenderer interface {
	TextRenderer

	// DrawRadio draws the indicator inside indicator and returns the cursor
	// for the whole widget given its full bounds and the pointer position.
	DrawRadio(selected bool, indicator, bounds Rectangle, cursor Point) MouseCursor
}

// CheckboxRenderer draws the box of a Checkbox.
type CheckboxRenderer interface {
	TextRenderer

	DrawCheckbox(checked bool, indicator, bounds Rectangle, cursor Point) MouseCursor
}
