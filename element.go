package ui

// Element owns one widget behind the Widget interface so that containers can
// hold children of different concrete types sharing M and R.
type Element[M, R any] struct {
	widget Widget[M, R]
}

var _ Widget[struct{}, struct{}] = Element[struct{}, struct{}]{}

// NewElement wraps w. Wrapping an Element returns it unchanged.
func NewElement[M, R any](w Widget[M, R]) Element[M, R] {
	switch v := w.(type) {
	case nil:
		panic("ui: nil widget")
	case Element[M, R]:
		return v
	case *Element[M, R]:
		return *v
	}
	return Element[M, R]{widget: w}
}

// Widget returns the wrapped widget.
func (e Element[M, R]) Widget() Widget[M, R] {
	return e.widget
}

func (e Element[M, R]) must() Widget[M, R] {
	if e.widget == nil {
		panic("ui: use of zero Element")
	}
	return e.widget
}

// Node implements Widget.
func (e Element[M, R]) Node(renderer R) Node {
	return e.must().Node(renderer)
}

// OnEvent implements Widget.
func (e Element[M, R]) OnEvent(event Event, layout Layout, cursor Point, messages *[]M) {
	e.must().OnEvent(event, layout, cursor, messages)
}

// Draw implements Widget.
func (e Element[M, R]) Draw(renderer R, layout Layout, cursor Point) MouseCursor {
	return e.must().Draw(renderer, layout, cursor)
}

// Hash implements Widget.
func (e Element[M, R]) Hash(h *Hasher) {
	e.must().Hash(h)
}

// Map converts e into an Element emitting N by passing every message it
// produces through f. Layout, drawing and hashing are unchanged.
func Map[M, N, R any](e Element[M, R], f func(M) N) Element[N, R] {
	if f == nil {
		panic("ui: nil map function")
	}
	return Element[N, R]{widget: &mapped[M, N, R]{inner: e, f: f}}
}

type mapped[M, N, R any] struct {
	inner Element[M, R]
	f     func(M) N
	buf   []M
}

func (m *mapped[M, N, R]) Node(renderer R) Node {
	return m.inner.Node(renderer)
}

func (m *mapped[M, N, R]) OnEvent(event Event, layout Layout, cursor Point, messages *[]N) {
	m.buf = m.buf[:0]
	m.inner.OnEvent(event, layout, cursor, &m.buf)
	for _, msg := range m.buf {
		*messages = append(*messages, m.f(msg))
	}
}

func (m *mapped[M, N, R]) Draw(renderer R, layout Layout, cursor Point) MouseCursor {
	return m.inner.Draw(renderer, layout, cursor)
}

func (m *mapped[M, N, R]) Hash(h *Hasher) {
	m.inner.Hash(h)
}
