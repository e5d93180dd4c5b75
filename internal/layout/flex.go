package layout

// flexItem holds intermediate calculation state for a child.
// This is allocated per layout call, not stored on nodes.
type flexItem struct {
	baseSize    float32
	mainSize    float32
	crossSize   float32
	mainPos     float32
	crossPos    float32
	mainMargin  float32
	crossMargin float32
	grow        float32
	shrink      float32
}

// axisSize builds a Size from main/cross values for the given direction.
func axisSize[T any](isRow bool, main, cross T) Size[T] {
	if isRow {
		return Size[T]{Width: main, Height: cross}
	}
	return Size[T]{Width: cross, Height: main}
}

// mainOf returns the main-axis component of s.
func mainOf(isRow bool, s Size[float32]) float32 {
	if isRow {
		return s.Width
	}
	return s.Height
}

// crossOf returns the cross-axis component of s.
func crossOf(isRow bool, s Size[float32]) float32 {
	if isRow {
		return s.Height
	}
	return s.Width
}

// layoutChildren arranges the children of a node within the given content
// rect and returns their boxes in child order.
// This implements the core flexbox algorithm.
func layoutChildren(node *Node, contentRect Rect, path []int) ([]Box, error) {
	if len(node.children) == 0 {
		return nil, nil
	}

	style := node.style
	isRow := style.Direction == Row

	// Determine main/cross axis dimensions
	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: Compute base sizes and flex factors
	// Base size includes the child's content size plus its margin.
	// Margin is part of the child's "outer size" in the flex calculation.
	items := make([]flexItem, len(node.children))
	var totalFixed, totalGrow, totalShrink float32
	for i, child := range node.children {
		item := &items[i]
		cs := child.style

		mainValue, _ := cs.axisValues(isRow)
		item.mainMargin, item.crossMargin = cs.axisMargins(isRow)

		if mainValue.IsAuto() {
			proposal := axisSize(isRow, Undefined(), Defined(max(0, crossSize-item.crossMargin)))
			intrinsic, err := intrinsicSize(child, proposal, childPath(path, i))
			if err != nil {
				return nil, err
			}
			item.baseSize = mainOf(isRow, intrinsic) + item.mainMargin
		} else {
			item.baseSize = mainValue.Resolve(mainSize, 0) + item.mainMargin
		}

		item.grow = cs.FlexGrow
		item.shrink = cs.FlexShrink

		totalFixed += item.baseSize
		totalGrow += item.grow
		totalShrink += item.shrink
	}

	// Account for gaps
	totalGap := style.Gap * float32(max(0, len(node.children)-1))
	freeSpace := mainSize - totalFixed - totalGap

	// Phase 2: Distribute free space
	switch {
	case freeSpace > 0 && totalGrow > 0:
		for i := range items {
			items[i].mainSize = items[i].baseSize + freeSpace*items[i].grow/totalGrow
		}
	case freeSpace < 0 && totalShrink > 0:
		deficit := -freeSpace
		for i := range items {
			reduction := deficit * items[i].shrink / totalShrink
			items[i].mainSize = max(items[i].mainMargin, items[i].baseSize-reduction)
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Phase 3: Apply min/max constraints to the content part of each slot
	for i, child := range node.children {
		minMain := resolveMinMain(child.style, isRow, mainSize)
		maxMain := resolveMaxMain(child.style, isRow, mainSize)
		content := clamp(items[i].mainSize-items[i].mainMargin, minMain, maxMain)
		items[i].mainSize = content + items[i].mainMargin
	}

	// Recalculate free space after min/max constraints
	// (needed for justify calculations)
	var totalUsed float32
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: Position children along main axis (justify)
	offset := calculateJustifyOffset(style.JustifyContent, freeSpace, len(items))
	spacing := calculateJustifySpacing(style.JustifyContent, freeSpace, len(items))

	for i := range items {
		items[i].mainPos = offset
		offset += items[i].mainSize + style.Gap + spacing
	}

	// Phase 5: Cross-axis sizing and alignment
	for i, child := range node.children {
		item := &items[i]
		cs := child.style

		align := cs.alignIn(style.AlignItems)
		_, crossValue := cs.axisValues(isRow)

		// Available cross space after margin
		availableCross := crossSize - item.crossMargin

		var contentCross float32
		switch {
		case !crossValue.IsAuto():
			contentCross = crossValue.Resolve(availableCross, availableCross)
		case align == AlignStretch:
			contentCross = availableCross
		default:
			proposal := axisSize(isRow, Defined(item.mainSize-item.mainMargin), Defined(max(0, availableCross)))
			intrinsic, err := intrinsicSize(child, proposal, childPath(path, i))
			if err != nil {
				return nil, err
			}
			contentCross = crossOf(isRow, intrinsic)
		}

		// Slot size includes content + margin
		item.crossSize = contentCross + item.crossMargin
		item.crossPos = calculateAlignOffset(align, crossSize, item.crossSize)
	}

	// Phase 6: Convert to rects and recurse
	boxes := make([]Box, len(node.children))
	for i, child := range node.children {
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + items[i].mainPos,
				Y:      contentRect.Y + items[i].crossPos,
				Width:  items[i].mainSize,
				Height: items[i].crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + items[i].crossPos,
				Y:      contentRect.Y + items[i].mainPos,
				Width:  items[i].crossSize,
				Height: items[i].mainSize,
			}
		}

		// Apply child's margin: shrink the slot to get the child's border box.
		// The child receives this as 'available' and does NOT re-apply margin.
		box, err := calculateNode(child, slot.Inset(child.style.Margin), childPath(path, i))
		if err != nil {
			return nil, err
		}
		boxes[i] = box
	}

	return boxes, nil
}

// calculateJustifyOffset returns the initial offset for positioning children
// based on the justify mode and available free space.
func calculateJustifyOffset(justify Justify, freeSpace float32, itemCount int) float32 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch justify {
	case JustifyEnd:
		return freeSpace
	case JustifyCenter:
		return freeSpace / 2
	case JustifySpaceAround:
		return freeSpace / float32(itemCount*2)
	case JustifySpaceEvenly:
		return freeSpace / float32(itemCount+1)
	default: // JustifyStart, JustifySpaceBetween
		return 0
	}
}

// calculateJustifySpacing returns the extra spacing between children
// based on the justify mode and available free space.
func calculateJustifySpacing(justify Justify, freeSpace float32, itemCount int) float32 {
	if freeSpace <= 0 || itemCount <= 1 {
		return 0
	}

	switch justify {
	case JustifySpaceBetween:
		return freeSpace / float32(itemCount-1)
	case JustifySpaceAround:
		return freeSpace / float32(itemCount)
	case JustifySpaceEvenly:
		return freeSpace / float32(itemCount+1)
	default: // JustifyStart, JustifyEnd, JustifyCenter
		return 0
	}
}

// calculateAlignOffset returns the offset for positioning a child on the cross axis.
func calculateAlignOffset(align Align, crossSize, itemSize float32) float32 {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// resolveMinMain resolves the minimum size constraint for the main axis.
func resolveMinMain(style Style, isRow bool, available float32) float32 {
	if isRow {
		return style.MinWidth.Resolve(available, 0)
	}
	return style.MinHeight.Resolve(available, 0)
}

// resolveMaxMain resolves the maximum size constraint for the main axis.
// Returns available if no max is set (UnitAuto).
func resolveMaxMain(style Style, isRow bool, available float32) float32 {
	if isRow {
		return style.MaxWidth.Resolve(available, available)
	}
	return style.MaxHeight.Resolve(available, available)
}
