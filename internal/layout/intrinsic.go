package layout

import "fmt"

// intrinsicSize returns the natural border-box size of node when its parent
// proposes the given size. Fixed and resolvable percentage dimensions always
// win; the remaining axes come from the measure function or the children.
func intrinsicSize(node *Node, proposed Size[Number], path []int) (Size[float32], error) {
	style := node.style
	width := style.Width.ResolveNumber(proposed.Width)
	height := style.Height.ResolveNumber(proposed.Height)

	w, wok := width.Get()
	h, hok := height.Get()
	if !wok || !hok {
		// Content is measured inside the padding, against the definite size
		// when known and the parent's proposal otherwise.
		inner := Size[Number]{
			Width:  orNumber(width, proposed.Width).Sub(style.Padding.Horizontal()),
			Height: orNumber(height, proposed.Height).Sub(style.Padding.Vertical()),
		}
		content, err := contentSize(node, inner, path)
		if err != nil {
			return Size[float32]{}, err
		}
		if !wok {
			w = content.Width + style.Padding.Horizontal()
		}
		if !hok {
			h = content.Height + style.Padding.Vertical()
		}
	}

	return Size[float32]{
		Width:  constrain(w, style.MinWidth, style.MaxWidth, proposed.Width),
		Height: constrain(h, style.MinHeight, style.MaxHeight, proposed.Height),
	}, nil
}

// contentSize computes the size of a node's content box: the measure
// function's answer for leaves, the stacked children for containers.
func contentSize(node *Node, inner Size[Number], path []int) (Size[float32], error) {
	if node.measure != nil {
		size, err := node.measure(inner)
		if err != nil {
			return Size[float32]{}, fmt.Errorf("measure node %v: %w", path, err)
		}
		if !finite(size.Width) || !finite(size.Height) || size.Width < 0 || size.Height < 0 {
			return Size[float32]{}, fmt.Errorf("measure node %v: invalid size %vx%v", path, size.Width, size.Height)
		}
		return size, nil
	}

	if len(node.children) == 0 {
		return Size[float32]{}, nil
	}

	style := node.style
	isRow := style.Direction == Row
	var mainTotal, crossMax float32

	for i, child := range node.children {
		margin := child.style.Margin

		// Children report their natural main size; the cross axis keeps
		// whatever constraint this node received.
		proposal := Size[Number]{Width: inner.Width.Sub(margin.Horizontal()), Height: Undefined()}
		if isRow {
			proposal = Size[Number]{Width: Undefined(), Height: inner.Height.Sub(margin.Vertical())}
		}

		cs, err := intrinsicSize(child, proposal, childPath(path, i))
		if err != nil {
			return Size[float32]{}, err
		}

		if i > 0 {
			mainTotal += style.Gap
		}
		if isRow {
			mainTotal += cs.Width + margin.Horizontal()
			crossMax = max(crossMax, cs.Height+margin.Vertical())
		} else {
			mainTotal += cs.Height + margin.Vertical()
			crossMax = max(crossMax, cs.Width+margin.Horizontal())
		}
	}

	if isRow {
		return Size[float32]{Width: mainTotal, Height: crossMax}, nil
	}
	return Size[float32]{Width: crossMax, Height: mainTotal}, nil
}

// constrain applies min/max values resolved against the proposed size.
// Max is applied first so that min wins when they conflict.
func constrain(v float32, minValue, maxValue Value, proposed Number) float32 {
	if m, ok := maxValue.ResolveNumber(proposed).Get(); ok && v > m {
		v = m
	}
	if m, ok := minValue.ResolveNumber(proposed).Get(); ok && v < m {
		v = m
	}
	return v
}

func orNumber(n, fallback Number) Number {
	if n.IsDefined() {
		return n
	}
	return fallback
}
