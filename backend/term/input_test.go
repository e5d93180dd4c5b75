package term

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	ui "github.com/grindlemire/go-ui"
)

func TestTranslateMouse(t *testing.T) {
	type tc struct {
		msg  tea.MouseMsg
		want []ui.Event
	}

	at := ui.CursorMoved{Position: ui.Point{X: 3.5, Y: 4.5}}
	tests := map[string]tc{
		"left press": {
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			want: []ui.Event{at, ui.MouseInput{Button: ui.MouseButtonLeft, State: ui.ButtonPressed}},
		},
		"right release": {
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonRight},
			want: []ui.Event{at, ui.MouseInput{Button: ui.MouseButtonRight, State: ui.ButtonReleased}},
		},
		"middle press": {
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle},
			want: []ui.Event{at, ui.MouseInput{Button: ui.MouseButtonMiddle, State: ui.ButtonPressed}},
		},
		"back button": {
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonBackward},
			want: []ui.Event{at, ui.MouseInput{Button: ui.MouseButtonOther, State: ui.ButtonPressed}},
		},
		"motion": {
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion},
			want: []ui.Event{at},
		},
		"wheel up": {
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
			want: []ui.Event{at, ui.MouseWheel{DeltaY: 1}},
		},
		"wheel down": {
			msg:  tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
			want: []ui.Event{at, ui.MouseWheel{DeltaY: -1}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, TranslateMouse(tt.msg)); diff != "" {
				t.Errorf("TranslateMouse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTranslateKey(t *testing.T) {
	type tc struct {
		msg  tea.KeyMsg
		want []ui.Event
	}

	tests := map[string]tc{
		"runes": {
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")},
			want: []ui.Event{ui.CharacterReceived{Char: 'h'}, ui.CharacterReceived{Char: 'i'}},
		},
		"space": {
			msg:  tea.KeyMsg{Type: tea.KeySpace},
			want: []ui.Event{ui.CharacterReceived{Char: ' '}},
		},
		"enter": {
			msg: tea.KeyMsg{Type: tea.KeyEnter},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, TranslateKey(tt.msg)); diff != "" {
				t.Errorf("TranslateKey() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

type toggle string

func stackedCheckboxes() ui.Widget[toggle, *Renderer] {
	col := ui.NewColumn[toggle, *Renderer]()
	for _, name := range []string{"one", "two"} {
		col.Push(ui.NewCheckbox[toggle, *Renderer](false, name, func(bool) toggle { return toggle(name) }).
			Size(1).
			Spacing(1))
	}
	return col
}

func TestTranslateMouse_PressHitsOneCell(t *testing.T) {
	type tc struct {
		x, y int
		want []toggle
	}

	tests := map[string]tc{
		"first row":        {x: 0, y: 0, want: []toggle{"one"}},
		"second row":       {x: 0, y: 1, want: []toggle{"two"}},
		"label of first":   {x: 4, y: 0, want: []toggle{"one"}},
		"below both":       {x: 0, y: 2},
		"right of content": {x: 39, y: 1, want: []toggle{"two"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewRenderer(NewBuffer(40, 10), DefaultTheme())
			rt, err := ui.NewRuntime(stackedCheckboxes(), r, ui.WithViewport(40, 10))
			if err != nil {
				t.Fatalf("NewRuntime() error = %v", err)
			}

			press := tea.MouseMsg{X: tt.x, Y: tt.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
			got := rt.DispatchAll(TranslateMouse(press)...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
