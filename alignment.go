package ui

// HorizontalAlignment positions content along the x axis of its bounds.
type HorizontalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignHCenter
	AlignRight
)

// String returns the name of the alignment.
func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignHCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Offset returns the x offset that places content of the given width inside
// a span of the given width.
func (a HorizontalAlignment) Offset(span, width float32) float32 {
	switch a {
	case AlignHCenter:
		return (span - width) / 2
	case AlignRight:
		return span - width
	default:
		return 0
	}
}

// VerticalAlignment positions content along the y axis of its bounds.
type VerticalAlignment uint8

const (
	AlignTop VerticalAlignment = iota
	AlignVCenter
	AlignBottom
)

// String returns the name of the alignment.
func (a VerticalAlignment) String() string {
	switch a {
	case AlignTop:
		return "Top"
	case AlignVCenter:
		return "Center"
	case AlignBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Offset returns the y offset that places content of the given height inside
// a span of the given height.
func (a VerticalAlignment) Offset(span, height float32) float32 {
	switch a {
	case AlignVCenter:
		return (span - height) / 2
	case AlignBottom:
		return span - height
	default:
		return 0
	}
}
