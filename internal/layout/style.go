package layout

// Direction selects the main axis of a container.
type Direction uint8

const (
	Row Direction = iota
	Column
)

// Justify distributes free main-axis space among children.
type Justify uint8

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween // no space at the edges
	JustifySpaceAround  // half-size space at the edges
	JustifySpaceEvenly  // equal space everywhere
)

// Align positions a child inside its cross-axis slot.
type Align uint8

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch
)

// Style is the sizing input of one node. It is copied into the node at
// construction and never mutated by the solver.
type Style struct {
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value // auto means unbounded
	MaxHeight Value

	// Container properties.
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Gap            float32

	// Item properties.
	FlexGrow   float32
	FlexShrink float32
	AlignSelf  *Align // nil inherits the parent's AlignItems

	Padding Edges
	Margin  Edges
}

// DefaultStyle returns auto sizes in a row, stretching children that shrink
// evenly and never grow.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Fixed(0),
		MinHeight:  Fixed(0),
		MaxWidth:   Auto(),
		MaxHeight:  Auto(),
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexShrink: 1,
	}
}

// axisValues returns the size values along and across the parent's main axis.
func (s Style) axisValues(isRow bool) (main, cross Value) {
	if isRow {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// axisMargins returns the total margins along and across the parent's main
// axis.
func (s Style) axisMargins(isRow bool) (main, cross float32) {
	if isRow {
		return s.Margin.Horizontal(), s.Margin.Vertical()
	}
	return s.Margin.Vertical(), s.Margin.Horizontal()
}

// alignIn returns the cross alignment of s inside a parent aligning items
// with parent.
func (s Style) alignIn(parent Align) Align {
	if s.AlignSelf != nil {
		return *s.AlignSelf
	}
	return parent
}
