package ui

// MouseCursor is the pointer affordance a widget asks for after drawing.
type MouseCursor uint8

const (
	// CursorOutOfBounds means the pointer is not over the widget; the parent
	// decides the cursor.
	CursorOutOfBounds MouseCursor = iota
	CursorIdle
	CursorPointer
	CursorGrab
	CursorGrabbing
	CursorWorking
)

// String returns the name of the cursor.
func (c MouseCursor) String() string {
	switch c {
	case CursorOutOfBounds:
		return "OutOfBounds"
	case CursorIdle:
		return "Idle"
	case CursorPointer:
		return "Pointer"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorWorking:
		return "Working"
	default:
		return "Unknown"
	}
}
