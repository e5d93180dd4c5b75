package ui

// Row lays its children out left to right. It draws nothing itself.
type Row[M, R any] struct {
	container[M, R]
}

// NewRow creates an empty Row configured by opts.
func NewRow[M, R any](opts ...Option) *Row[M, R] {
	return &Row[M, R]{container: newContainer[M, R](DirectionRow, opts)}
}

// Push appends w and returns the Row for chaining.
func (r *Row[M, R]) Push(w Widget[M, R]) *Row[M, R] {
	r.push(w)
	return r
}

// Len returns the number of children.
func (r *Row[M, R]) Len() int {
	return len(r.children)
}

// Node implements Widget.
func (r *Row[M, R]) Node(renderer R) Node {
	return r.node(renderer)
}

// OnEvent delivers event to every child in insertion order.
func (r *Row[M, R]) OnEvent(event Event, layout Layout, cursor Point, messages *[]M) {
	r.children.onEvent(event, layout, cursor, messages)
}

// Draw draws every child and returns the last in-bounds child cursor.
func (r *Row[M, R]) Draw(renderer R, layout Layout, cursor Point) MouseCursor {
	return r.children.draw(renderer, layout, cursor)
}

// Hash implements Widget.
func (r *Row[M, R]) Hash(h *Hasher) {
	r.hash("row", h)
}
