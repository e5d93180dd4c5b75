package layout

// styled returns DefaultStyle modified by fn.
func styled(fn func(s *Style)) Style {
	s := DefaultStyle()
	fn(&s)
	return s
}

// fixedNode returns a childless node with a fixed border box.
func fixedNode(w, h float32) *Node {
	return NewNode(styled(func(s *Style) {
		s.Width = Fixed(w)
		s.Height = Fixed(h)
	}))
}

// measuredNode returns a leaf that always measures to w x h.
func measuredNode(w, h float32) *Node {
	return NewLeaf(DefaultStyle(), func(Size[Number]) (Size[float32], error) {
		return Size[float32]{Width: w, Height: h}, nil
	})
}

func available(w, h float32) Size[Number] {
	return Size[Number]{Width: Defined(w), Height: Defined(h)}
}
