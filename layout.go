// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package ui

import "github.com/grindlemire/go-ui/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	DirectionRow    = layout.Row
	DirectionColumn = layout.Column
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// Style holds the sizing, spacing and alignment rules of a Node.
type Style = layout.Style

// Number is a dimension that may be undefined (no constraint on that axis).
type Number = layout.Number

// Size represents a width/height pair.
type Size[T any] = layout.Size[T]

// Rectangle represents an axis-aligned rectangle.
type Rectangle = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// ErrLayout is wrapped by every error returned from a layout pass.
var ErrLayout = layout.ErrLayout

// Fixed creates a Value with an absolute size.
func Fixed(n float32) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float32) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// Defined returns a Number holding v.
func Defined(v float32) Number {
	return layout.Defined(v)
}

// Undefined returns a Number with no value.
func Undefined() Number {
	return layout.Undefined()
}

// DefaultStyle returns a Style with default values.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// NewRectangle creates a new Rectangle with the given position and dimensions.
func NewRectangle(x, y, width, height float32) Rectangle {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float32) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float32) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
