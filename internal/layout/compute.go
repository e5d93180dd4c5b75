package layout

import (
	"errors"
	"fmt"
)

// ErrLayout is returned (wrapped) when a layout pass cannot be completed.
var ErrLayout = errors.New("layout resolution failed")

// Compute resolves the tree rooted at root within the available space.
// An undefined available dimension leaves that axis unconstrained: the root
// takes its intrinsic size there.
func Compute(root *Node, available Size[Number]) (Box, error) {
	if root == nil {
		return Box{}, fmt.Errorf("%w: nil root node", ErrLayout)
	}

	size, err := rootSize(root, available)
	if err != nil {
		return Box{}, fmt.Errorf("%w: %w", ErrLayout, err)
	}

	box, err := calculateNode(root, NewRect(0, 0, size.Width, size.Height), nil)
	if err != nil {
		return Box{}, fmt.Errorf("%w: %w", ErrLayout, err)
	}
	return box, nil
}

// rootSize resolves the root's border box size. Unlike child nodes, which
// receive their size from the parent's flex calculations, the root resolves
// its own width/height against the available space. Auto fills a defined
// available dimension.
func rootSize(root *Node, available Size[Number]) (Size[float32], error) {
	style := root.style
	width := style.Width.ResolveNumber(available.Width)
	height := style.Height.ResolveNumber(available.Height)
	if !width.IsDefined() {
		width = available.Width
	}
	if !height.IsDefined() {
		height = available.Height
	}

	w, wok := width.Get()
	h, hok := height.Get()
	if wok && hok {
		return Size[float32]{Width: w, Height: h}, nil
	}

	intrinsic, err := intrinsicSize(root, Size[Number]{Width: width, Height: height}, nil)
	if err != nil {
		return Size[float32]{}, err
	}
	if !wok {
		w = intrinsic.Width
	}
	if !hok {
		h = intrinsic.Height
	}
	return Size[float32]{Width: w, Height: h}, nil
}

// calculateNode computes the box for a single node within the available space.
// The available rect represents the border box space allocated by the parent
// (after the parent has already applied this node's margin).
func calculateNode(node *Node, available Rect, path []int) (Box, error) {
	style := node.style

	borderBox := computeBorderBox(style, available)
	contentRect := borderBox.Inset(style.Padding)

	children, err := layoutChildren(node, contentRect, path)
	if err != nil {
		return Box{}, err
	}

	return Box{
		Rect:        borderBox,
		ContentRect: contentRect,
		Children:    children,
	}, nil
}

// computeBorderBox applies min/max constraints to the slot the parent
// allocated. Width/Height were already used by the flex algorithm to compute
// the slot size.
func computeBorderBox(style Style, available Rect) Rect {
	width := available.Width
	height := available.Height

	minWidth := style.MinWidth.Resolve(available.Width, 0)
	maxWidth := style.MaxWidth.Resolve(available.Width, available.Width)
	width = clamp(width, minWidth, maxWidth)

	minHeight := style.MinHeight.Resolve(available.Height, 0)
	maxHeight := style.MaxHeight.Resolve(available.Height, available.Height)
	height = clamp(height, minHeight, maxHeight)

	return Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  max(0, width),
		Height: max(0, height),
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// childPath returns path extended by i without aliasing path's backing array.
func childPath(path []int, i int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = i
	return out
}
