package ui

import (
	"fmt"
	"time"

	"github.com/grindlemire/go-ui/internal/debug"
)

// Runtime drives one widget tree: it resolves the layout when the tree's
// structure or the viewport changes, dispatches events in arrival order and
// draws frames. A Runtime is not safe for concurrent use.
type Runtime[M, R any] struct {
	root     Element[M, R]
	renderer R
	engine   Engine
	viewport Size[Number]

	layout   Layout
	hash     uint64
	cursor   Point
	messages []M
	hasher   Hasher
}

// NewRuntime builds root's node tree against renderer and resolves it.
func NewRuntime[M, R any](root Widget[M, R], renderer R, opts ...RuntimeOption) (*Runtime[M, R], error) {
	cfg := defaultRuntimeConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	rt := &Runtime[M, R]{
		root:     NewElement(root),
		renderer: renderer,
		engine:   cfg.engine,
		viewport: cfg.viewport,
		cursor:   Point{X: -1, Y: -1},
	}
	if err := rt.relayout(); err != nil {
		return nil, err
	}
	rt.hash = rt.structuralHash(rt.root)
	return rt, nil
}

// Update replaces the root. The layout is recomputed only if the new tree's
// structural hash differs from the current one. On error the previous root
// and layout stay in place.
func (rt *Runtime[M, R]) Update(root Widget[M, R], renderer R) error {
	next := NewElement(root)
	hash := rt.structuralHash(next)
	prevRoot, prevRenderer := rt.root, rt.renderer
	rt.root = next
	rt.renderer = renderer
	if hash == rt.hash {
		return nil
	}
	if err := rt.relayout(); err != nil {
		rt.root, rt.renderer = prevRoot, prevRenderer
		return err
	}
	rt.hash = hash
	return nil
}

// Resize changes the available size and re-resolves the layout if it differs.
func (rt *Runtime[M, R]) Resize(available Size[Number]) error {
	if available == rt.viewport {
		return nil
	}
	prev := rt.viewport
	rt.viewport = available
	if err := rt.relayout(); err != nil {
		rt.viewport = prev
		return err
	}
	return nil
}

// Dispatch delivers event to the tree and returns the messages it produced.
// CursorMoved events update the tracked pointer position before delivery.
func (rt *Runtime[M, R]) Dispatch(event Event) []M {
	if moved, ok := event.(CursorMoved); ok {
		rt.cursor = moved.Position
	}
	rt.root.OnEvent(event, rt.layout, rt.cursor, &rt.messages)
	out := rt.messages
	rt.messages = nil
	return out
}

// DispatchAll delivers events in order and returns all messages produced.
func (rt *Runtime[M, R]) DispatchAll(events ...Event) []M {
	var out []M
	for _, event := range events {
		out = append(out, rt.Dispatch(event)...)
	}
	return out
}

// Draw draws one frame and returns the cursor the tree asked for.
func (rt *Runtime[M, R]) Draw(renderer R) MouseCursor {
	return rt.root.Draw(renderer, rt.layout, rt.cursor)
}

// Layout returns the current root layout.
func (rt *Runtime[M, R]) Layout() Layout {
	return rt.layout
}

// Cursor returns the last known pointer position.
func (rt *Runtime[M, R]) Cursor() Point {
	return rt.cursor
}

// Hash returns the structural hash of the current tree.
func (rt *Runtime[M, R]) Hash() uint64 {
	return rt.hash
}

// Viewport returns the available size the layout was resolved against.
func (rt *Runtime[M, R]) Viewport() Size[Number] {
	return rt.viewport
}

func (rt *Runtime[M, R]) structuralHash(root Element[M, R]) uint64 {
	rt.hasher.Reset()
	root.Hash(&rt.hasher)
	return rt.hasher.Sum64()
}

func (rt *Runtime[M, R]) relayout() error {
	start := time.Now()
	layout, err := rt.engine.Resolve(rt.root.Node(rt.renderer), rt.viewport)
	if err != nil {
		debug.Log("runtime: layout failed: %v", err)
		return fmt.Errorf("resolve layout: %w", err)
	}
	rt.layout = layout
	debug.Log("runtime: relayout viewport=%vx%v took %s",
		rt.viewport.Width, rt.viewport.Height, time.Since(start))
	return nil
}
