package term

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	ui "github.com/grindlemire/go-ui"
)

type choiceApp struct {
	selected string
	seen     []pick
}

func (a *choiceApp) View() ui.Widget[pick, *Renderer] {
	return radioTree(a.selected)
}

func (a *choiceApp) Update(msg pick) {
	a.seen = append(a.seen, msg)
	a.selected = string(msg)
}

func TestModel_ClickSelects(t *testing.T) {
	app := &choiceApp{selected: "a"}
	m, err := newModel[pick](app, defaultConfig())
	if err != nil {
		t.Fatalf("newModel() error = %v", err)
	}

	m.Update(tea.WindowSizeMsg{Width: 10, Height: 6})
	m.View()
	if got := m.buf.Line(1); got != "(•) A     " {
		t.Fatalf("Line(1) before click = %q", got)
	}

	_, cmd := m.Update(tea.MouseMsg{X: 1, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd != nil {
		t.Error("click returned a command")
	}
	if diff := cmp.Diff([]pick{"b"}, app.seen); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}

	m.View()
	if got := m.buf.Line(1); got != "( ) A     " {
		t.Errorf("Line(1) after click = %q", got)
	}
	if got := m.buf.Line(4); got != "(•) B     " {
		t.Errorf("Line(4) after click = %q", got)
	}
}

func TestModel_QuitKeys(t *testing.T) {
	type tc struct {
		key      tea.KeyMsg
		wantQuit bool
	}

	tests := map[string]tc{
		"ctrl+c": {key: tea.KeyMsg{Type: tea.KeyCtrlC}, wantQuit: true},
		"q":      {key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, wantQuit: true},
		"x":      {key: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := newModel[pick](&choiceApp{}, defaultConfig())
			if err != nil {
				t.Fatalf("newModel() error = %v", err)
			}
			_, cmd := m.Update(tt.key)
			if (cmd != nil) != tt.wantQuit {
				t.Errorf("quit = %v, want %v", cmd != nil, tt.wantQuit)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := defaultConfig()
	for _, opt := range []Option{WithAltScreen(), WithoutMouse(), WithQuitKeys("esc")} {
		if err := opt(&cfg); err != nil {
			t.Fatalf("option error = %v", err)
		}
	}
	if !cfg.altScreen || cfg.mouse || cfg.quitKeys[0] != "esc" {
		t.Errorf("config = %+v", cfg)
	}
	if err := WithQuitKeys()(&cfg); err == nil {
		t.Error("WithQuitKeys() with no keys should fail")
	}
}
