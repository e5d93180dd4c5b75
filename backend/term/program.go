package term

import (
	"errors"
	"fmt"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	xterm "golang.org/x/term"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/internal/debug"
)

// Application is a model driven by messages from its widget tree.
type Application[M any] interface {
	// View builds the widget tree for the current state.
	View() ui.Widget[M, *Renderer]
	// Update applies a message emitted by the tree.
	Update(msg M)
}

// model adapts an Application to tea.Model.
type model[M any] struct {
	app      Application[M]
	cfg      config
	buf      *Buffer
	renderer *Renderer
	runtime  *ui.Runtime[M, *Renderer]
	err      error
}

func newModel[M any](app Application[M], cfg config) (*model[M], error) {
	buf := NewBuffer(0, 0)
	renderer := NewRenderer(buf, cfg.theme)
	rt, err := ui.NewRuntime(app.View(), renderer)
	if err != nil {
		return nil, err
	}
	return &model[M]{app: app, cfg: cfg, buf: buf, renderer: renderer, runtime: rt}, nil
}

func (m *model[M]) Init() tea.Cmd {
	return nil
}

func (m *model[M]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.buf.Resize(msg.Width, msg.Height)
		if err := m.runtime.Resize(ui.Available(float32(msg.Width), float32(msg.Height))); err != nil {
			return m.fail(err)
		}
	case tea.MouseMsg:
		return m.dispatch(TranslateMouse(msg))
	case tea.KeyMsg:
		if slices.Contains(m.cfg.quitKeys, msg.String()) {
			return m, tea.Quit
		}
		return m.dispatch(TranslateKey(msg))
	}
	return m, nil
}

// dispatch delivers events in order, applying each message to the
// application and rebuilding the tree before the next event.
func (m *model[M]) dispatch(events []ui.Event) (tea.Model, tea.Cmd) {
	for _, event := range events {
		messages := m.runtime.Dispatch(event)
		if len(messages) == 0 {
			continue
		}
		for _, msg := range messages {
			m.app.Update(msg)
		}
		if err := m.runtime.Update(m.app.View(), m.renderer); err != nil {
			return m.fail(err)
		}
	}
	return m, nil
}

func (m *model[M]) fail(err error) (tea.Model, tea.Cmd) {
	debug.Log("term: %v", err)
	m.err = err
	return m, tea.Quit
}

func (m *model[M]) View() string {
	m.buf.Clear()
	m.runtime.Draw(m.renderer)
	return m.buf.View()
}

// ErrNotTerminal is returned by Run when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("term: not a terminal")

// Run hosts app in a bubbletea program until a quit key is pressed.
func Run[M any](app Application[M], opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return err
		}
	}

	if !xterm.IsTerminal(int(os.Stdin.Fd())) || !xterm.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	m, err := newModel(app, cfg)
	if err != nil {
		return fmt.Errorf("build initial layout: %w", err)
	}

	var programOpts []tea.ProgramOption
	if cfg.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return m.err
}
