package term

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the buffer.
// Wide characters occupy two cells; the first holds the rune and the second
// is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a Cell, detecting the display width of r.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// IsContinuation reports whether c is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsBlank reports whether c is a space with default styling.
func (c Cell) IsBlank() bool {
	return (c.Rune == ' ' || c.Rune == 0) && c.Style == Style{}
}

// RuneWidth returns the number of cells r occupies. Zero-width runes are
// given one cell so they remain addressable.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// StringWidth returns the number of cells s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
