package ui

import "github.com/grindlemire/go-ui/internal/layout"

// MeasureFunc computes a leaf's size from the size its parent proposes.
// Either proposed dimension may be undefined; the function must still return
// a definite natural size for that axis. It must be pure.
type MeasureFunc func(proposed Size[Number]) Size[float32]

// FallibleMeasureFunc is a MeasureFunc that can report failure, for example
// when font metrics are unavailable. The error aborts the layout pass.
type FallibleMeasureFunc func(proposed Size[Number]) (Size[float32], error)

// Node is a widget's declared layout requirements: a style plus either
// child nodes or a measure function. Nodes are immutable and are rebuilt
// on every layout pass.
type Node struct {
	n *layout.Node
}

// NewNode creates a composite node whose children are laid out in order.
func NewNode(style Style, children ...Node) Node {
	inner := make([]*layout.Node, len(children))
	for i, child := range children {
		inner[i] = child.resolve()
	}
	return Node{n: layout.NewNode(style, inner...)}
}

// NewMeasureNode creates a leaf node whose intrinsic size comes from measure.
// The node has no children regardless of style.
func NewMeasureNode(style Style, measure MeasureFunc) Node {
	if measure == nil {
		panic("ui: nil measure function")
	}
	return Node{n: layout.NewLeaf(style, func(proposed Size[Number]) (Size[float32], error) {
		return measure(proposed), nil
	})}
}

// NewFallibleMeasureNode creates a leaf node whose measure function can fail.
func NewFallibleMeasureNode(style Style, measure FallibleMeasureFunc) Node {
	if measure == nil {
		panic("ui: nil measure function")
	}
	return Node{n: layout.NewLeaf(style, layout.MeasureFunc(measure))}
}

// Style returns the node's style.
func (n Node) Style() Style {
	return n.resolve().Style()
}

// ChildCount returns the number of child nodes.
func (n Node) ChildCount() int {
	return len(n.resolve().Children())
}

// Child returns the i-th child node.
func (n Node) Child(i int) Node {
	return Node{n: n.resolve().Children()[i]}
}

// IsMeasured reports whether n is a leaf built from a measure function.
func (n Node) IsMeasured() bool {
	return n.resolve().IsMeasured()
}

// resolve returns the engine node, treating the zero Node as an empty
// default-styled node.
func (n Node) resolve() *layout.Node {
	if n.n == nil {
		return layout.NewNode(DefaultStyle())
	}
	return n.n
}
