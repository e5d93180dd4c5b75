package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/grindlemire/go-ui"
)

// eventQueue collects ui events from GLFW callbacks between frames.
type eventQueue struct {
	events  []ui.Event
	resized bool
}

func (q *eventQueue) attach(win *glfw.Window) {
	win.SetCursorPosCallback(q.cursorPos)
	win.SetMouseButtonCallback(q.mouseButton)
	win.SetScrollCallback(q.scroll)
	win.SetCharCallback(q.char)
	win.SetSizeCallback(q.size)
}

// drain returns the queued events and empties the queue.
func (q *eventQueue) drain() []ui.Event {
	events := q.events
	q.events = nil
	return events
}

func (q *eventQueue) cursorPos(_ *glfw.Window, x, y float64) {
	q.events = append(q.events, ui.MoveTo(float32(x), float32(y)))
}

func (q *eventQueue) mouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if event, ok := translateMouseButton(button, action); ok {
		q.events = append(q.events, event)
	}
}

func (q *eventQueue) scroll(_ *glfw.Window, dx, dy float64) {
	q.events = append(q.events, ui.MouseWheel{DeltaX: float32(dx), DeltaY: float32(dy)})
}

func (q *eventQueue) char(_ *glfw.Window, r rune) {
	q.events = append(q.events, ui.CharacterReceived{Char: r})
}

func (q *eventQueue) size(*glfw.Window, int, int) {
	q.resized = true
}

func translateMouseButton(button glfw.MouseButton, action glfw.Action) (ui.Event, bool) {
	var state ui.ButtonState
	switch action {
	case glfw.Press:
		state = ui.ButtonPressed
	case glfw.Release:
		state = ui.ButtonReleased
	default:
		return nil, false
	}

	b := ui.MouseButtonOther
	switch button {
	case glfw.MouseButtonLeft:
		b = ui.MouseButtonLeft
	case glfw.MouseButtonRight:
		b = ui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		b = ui.MouseButtonMiddle
	}
	return ui.MouseInput{Button: b, State: state}, true
}

// standardCursor maps a ui cursor to a GLFW standard shape. ok is false for
// cursors that use the window default.
func standardCursor(c ui.MouseCursor) (glfw.StandardCursor, bool) {
	switch c {
	case ui.CursorPointer, ui.CursorGrab, ui.CursorGrabbing:
		return glfw.HandCursor, true
	default:
		return glfw.ArrowCursor, false
	}
}
