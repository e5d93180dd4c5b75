package ui

// Column lays its children out top to bottom. It draws nothing itself.
type Column[M, R any] struct {
	container[M, R]
}

// NewColumn creates an empty Column configured by opts.
func NewColumn[M, R any](opts ...Option) *Column[M, R] {
	return &Column[M, R]{container: newContainer[M, R](DirectionColumn, opts)}
}

// Push appends w and returns the Column for chaining.
func (c *Column[M, R]) Push(w Widget[M, R]) *Column[M, R] {
	c.push(w)
	return c
}

// Len returns the number of children.
func (c *Column[M, R]) Len() int {
	return len(c.children)
}

// Node implements Widget.
func (c *Column[M, R]) Node(renderer R) Node {
	return c.node(renderer)
}

// OnEvent delivers event to every child in insertion order.
func (c *Column[M, R]) OnEvent(event Event, layout Layout, cursor Point, messages *[]M) {
	c.children.onEvent(event, layout, cursor, messages)
}

// Draw draws every child and returns the last in-bounds child cursor.
func (c *Column[M, R]) Draw(renderer R, layout Layout, cursor Point) MouseCursor {
	return c.children.draw(renderer, layout, cursor)
}

// Hash implements Widget.
func (c *Column[M, R]) Hash(h *Hasher) {
	c.hash("column", h)
}
