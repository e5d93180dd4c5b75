// Package layout implements the flexbox solver behind the widget tree.
//
// It supports row/column directions, justify and align modes, padding, margin,
// gap, min/max constraints, percentage and fixed dimensions, and intrinsic
// sizing through measure functions on leaf nodes. Types are re-exported
// through the root ui package for public consumption.
//
// The main entry point is [Compute], which takes an immutable [Node] tree and
// an optionally-undefined available [Size], and returns a [Box] tree of
// absolute rectangles with the same shape as the input.
package layout
