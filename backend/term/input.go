package term

import (
	tea "github.com/charmbracelet/bubbletea"

	ui "github.com/grindlemire/go-ui"
)

// TranslateMouse converts a bubbletea mouse message into ui events. Every
// mouse message moves the cursor first, so widgets see the press at the
// position it happened. The cursor is placed at the centre of the cell, so it
// never lies on the shared edge of two adjacent widgets.
func TranslateMouse(msg tea.MouseMsg) []ui.Event {
	events := []ui.Event{ui.CursorMoved{Position: cellCenter(msg.X, msg.Y)}}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return append(events, ui.MouseWheel{DeltaY: 1})
	case tea.MouseButtonWheelDown:
		return append(events, ui.MouseWheel{DeltaY: -1})
	case tea.MouseButtonWheelLeft:
		return append(events, ui.MouseWheel{DeltaX: -1})
	case tea.MouseButtonWheelRight:
		return append(events, ui.MouseWheel{DeltaX: 1})
	}

	var state ui.ButtonState
	switch msg.Action {
	case tea.MouseActionPress:
		state = ui.ButtonPressed
	case tea.MouseActionRelease:
		state = ui.ButtonReleased
	default:
		return events
	}
	return append(events, ui.MouseInput{Button: translateButton(msg.Button), State: state})
}

func translateButton(b tea.MouseButton) ui.MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return ui.MouseButtonLeft
	case tea.MouseButtonRight:
		return ui.MouseButtonRight
	case tea.MouseButtonMiddle:
		return ui.MouseButtonMiddle
	default:
		return ui.MouseButtonOther
	}
}

// TranslateKey converts typed runes into CharacterReceived events. Other
// keys produce no events.
func TranslateKey(msg tea.KeyMsg) []ui.Event {
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return nil
	}
	runes := msg.Runes
	if msg.Type == tea.KeySpace {
		runes = []rune{' '}
	}
	events := make([]ui.Event, 0, len(runes))
	for _, r := range runes {
		events = append(events, ui.CharacterReceived{Char: r})
	}
	return events
}

// cellCenter returns the layout point in the middle of cell (x, y). Cell
// (x, y) covers [x, x+1) by [y, y+1).
func cellCenter(x, y int) ui.Point {
	return ui.Point{X: float32(x) + 0.5, Y: float32(y) + 0.5}
}
