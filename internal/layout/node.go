package layout

// MeasureFunc computes the size of a leaf node from the size its parent
// proposes. Either proposed dimension may be undefined, in which case the
// function must return the node's natural size along that axis.
type MeasureFunc func(proposed Size[Number]) (Size[float32], error)

// Node is an immutable element of the constraint tree.
// A node either has children or a measure function, never both.
type Node struct {
	style    Style
	children []*Node
	measure  MeasureFunc
}

// NewNode creates a composite node with the given style and children.
// Children are laid out in the order given.
func NewNode(style Style, children ...*Node) *Node {
	n := &Node{style: style}
	if len(children) > 0 {
		n.children = make([]*Node, len(children))
		copy(n.children, children)
	}
	return n
}

// NewLeaf creates a leaf node whose content size is computed by measure.
func NewLeaf(style Style, measure MeasureFunc) *Node {
	return &Node{style: style, measure: measure}
}

// Style returns the node's style.
func (n *Node) Style() Style {
	return n.style
}

// Children returns the node's children.
func (n *Node) Children() []*Node {
	return n.children
}

// IsMeasured reports whether the node was built with a measure function.
func (n *Node) IsMeasured() bool {
	return n.measure != nil
}
