package ui

import "fmt"

// Event is an abstract input event delivered to widgets.
// The set is closed: only types in this package implement it.
type Event interface {
	isEvent()
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonOther
)

// String returns the name of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	default:
		return "Other"
	}
}

// ButtonState is the transition a button made.
type ButtonState uint8

const (
	ButtonPressed ButtonState = iota
	ButtonReleased
)

// String returns the name of the state.
func (s ButtonState) String() string {
	if s == ButtonPressed {
		return "Pressed"
	}
	return "Released"
}

// MouseInput reports a pointer button transition. The pointer position is
// whatever the last CursorMoved reported.
type MouseInput struct {
	Button MouseButton
	State  ButtonState
}

func (MouseInput) isEvent() {}

func (e MouseInput) String() string {
	return fmt.Sprintf("MouseInput{%s %s}", e.Button, e.State)
}

// CursorMoved reports a new pointer position in layout coordinates.
type CursorMoved struct {
	Position Point
}

func (CursorMoved) isEvent() {}

// MouseWheel reports a scroll. Positive DeltaY scrolls up.
type MouseWheel struct {
	DeltaX float32
	DeltaY float32
}

func (MouseWheel) isEvent() {}

// CharacterReceived reports a typed character.
type CharacterReceived struct {
	Char rune
}

func (CharacterReceived) isEvent() {}

// Press returns a left-button press event.
func Press() Event {
	return MouseInput{Button: MouseButtonLeft, State: ButtonPressed}
}

// Release returns a left-button release event.
func Release() Event {
	return MouseInput{Button: MouseButtonLeft, State: ButtonReleased}
}

// MoveTo returns a CursorMoved event for (x, y).
func MoveTo(x, y float32) Event {
	return CursorMoved{Position: Point{X: x, Y: y}}
}
