package ui

import (
	"fmt"

	"github.com/grindlemire/go-ui/internal/layout"
)

// Layout is the resolved geometry of one node: its absolute bounds plus the
// layouts of its children, in the order the node's children were supplied.
// A Layout is read-only.
type Layout struct {
	box layout.Box
}

// Bounds returns the node's border box in absolute coordinates.
func (l Layout) Bounds() Rectangle {
	return l.box.Rect
}

// ContentBounds returns the bounds minus padding.
func (l Layout) ContentBounds() Rectangle {
	return l.box.ContentRect
}

// ChildCount returns the number of child layouts.
func (l Layout) ChildCount() int {
	return len(l.box.Children)
}

// Child returns the i-th child layout. It panics if i is out of range, which
// means the widget drawing this layout disagrees with the node it built.
func (l Layout) Child(i int) Layout {
	if i < 0 || i >= len(l.box.Children) {
		panic(fmt.Sprintf("ui: layout child %d out of range (have %d)", i, len(l.box.Children)))
	}
	return Layout{box: l.box.Children[i]}
}

// Children returns the child layouts in node order.
func (l Layout) Children() []Layout {
	out := make([]Layout, len(l.box.Children))
	for i, child := range l.box.Children {
		out[i] = Layout{box: child}
	}
	return out
}

// At returns the descendant reached by following path, where each element
// is a child index. An empty path returns l itself.
func (l Layout) At(path ...int) (Layout, bool) {
	box, ok := l.box.At(path...)
	if !ok {
		return Layout{}, false
	}
	return Layout{box: box}, true
}

// String returns a compact description of the bounds.
func (l Layout) String() string {
	r := l.box.Rect
	return fmt.Sprintf("Layout{%g,%g %gx%g, %d children}", r.X, r.Y, r.Width, r.Height, len(l.box.Children))
}
