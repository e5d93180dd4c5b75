// Package ui provides a retained-mode widget and layout core.
//
// Widgets declare their sizing rules as a [Node] tree, a flex engine resolves
// that tree into a [Layout] of absolute rectangles, and events and drawing
// walk the widget tree and the layout tree in lockstep. Drawing goes through
// narrow renderer capabilities ([TextRenderer], [RadioRenderer],
// [CheckboxRenderer]) so the same widgets run on any backend that implements
// them.
//
// Users import this single package for the public API: layout types,
// widgets, events, cursors, and the [Runtime] that ties them together.
package ui
