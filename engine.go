package ui

import (
	"fmt"

	"github.com/grindlemire/go-ui/internal/layout"
)

// Engine resolves a Node tree into a Layout tree of the same shape.
// Undefined available dimensions leave that axis unconstrained.
type Engine interface {
	Resolve(root Node, available Size[Number]) (Layout, error)
}

// FlexEngine is the default Engine, a flexbox solver supporting
// grow/shrink, row/column direction, gaps, justify and cross-axis alignment.
type FlexEngine struct{}

var _ Engine = FlexEngine{}

// Resolve implements Engine. Errors wrap ErrLayout.
func (FlexEngine) Resolve(root Node, available Size[Number]) (Layout, error) {
	if root.n == nil {
		return Layout{}, fmt.Errorf("%w: empty root node", ErrLayout)
	}
	box, err := layout.Compute(root.n, available)
	if err != nil {
		return Layout{}, err
	}
	return Layout{box: box}, nil
}

// Resolve lays out root with the default FlexEngine.
func Resolve(root Node, available Size[Number]) (Layout, error) {
	return FlexEngine{}.Resolve(root, available)
}

// Available returns a fully defined available size.
func Available(width, height float32) Size[Number] {
	return Size[Number]{Width: Defined(width), Height: Defined(height)}
}
