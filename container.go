package ui

import "fmt"

// children is the ordered child list shared by Row and Column. Node, event
// and draw traversal all go through it so the three trees cannot disagree
// about order or count.
type children[M, R any] []Element[M, R]

func (c children[M, R]) nodes(renderer R) []Node {
	nodes := make([]Node, len(c))
	for i, child := range c {
		nodes[i] = child.Node(renderer)
	}
	return nodes
}

// zip calls fn for every child with its layout. It panics when the layout
// has a different number of children than c.
func (c children[M, R]) zip(layout Layout, fn func(child Element[M, R], layout Layout)) {
	if layout.ChildCount() != len(c) {
		panic(fmt.Sprintf("ui: layout has %d children but container has %d", layout.ChildCount(), len(c)))
	}
	for i, child := range c {
		fn(child, layout.Child(i))
	}
}

func (c children[M, R]) onEvent(event Event, layout Layout, cursor Point, messages *[]M) {
	c.zip(layout, func(child Element[M, R], l Layout) {
		child.OnEvent(event, l, cursor, messages)
	})
}

// draw draws every child and returns the cursor of the last child that
// reported one.
func (c children[M, R]) draw(renderer R, layout Layout, cursor Point) MouseCursor {
	result := CursorOutOfBounds
	c.zip(layout, func(child Element[M, R], l Layout) {
		if mc := child.Draw(renderer, l, cursor); mc != CursorOutOfBounds {
			result = mc
		}
	})
	return result
}

func (c children[M, R]) hash(h *Hasher) {
	h.WriteInt(len(c))
	for _, child := range c {
		child.Hash(h)
	}
}

// container is the common state of Row and Column.
type container[M, R any] struct {
	style    Style
	children children[M, R]
}

func newContainer[M, R any](direction Direction, opts []Option) container[M, R] {
	style := DefaultStyle()
	style.Direction = direction
	style = applyOptions(style, opts)
	// Direction is the container's identity; options cannot change it.
	style.Direction = direction
	return container[M, R]{style: style}
}

func (c *container[M, R]) push(w Widget[M, R]) {
	c.children = append(c.children, NewElement(w))
}

func (c *container[M, R]) node(renderer R) Node {
	return NewNode(c.style, c.children.nodes(renderer)...)
}

func (c *container[M, R]) hash(tag string, h *Hasher) {
	h.WriteString(tag)
	h.WriteStyle(c.style)
	c.children.hash(h)
}
