package layout

// Box holds the computed position and size of one node, plus the boxes of
// its children in the same order as the node's children.
type Box struct {
	// Rect is the border box: the space allocated by the parent after
	// applying this node's margin. Use for hit testing and bounds.
	Rect Rect

	// ContentRect is Rect minus padding, the area where children are placed.
	ContentRect Rect

	Children []Box
}

// At returns the descendant reached by following path, where each element
// is a child index. An empty path returns b itself.
func (b Box) At(path ...int) (Box, bool) {
	cur := b
	for _, i := range path {
		if i < 0 || i >= len(cur.Children) {
			return Box{}, false
		}
		cur = cur.Children[i]
	}
	return cur, true
}
