package term

import (
	"strings"

	ui "github.com/grindlemire/go-ui"
)

// Buffer is a 2D grid of cells that a Renderer draws into.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer of the given size filled with blank cells.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Resize changes the buffer dimensions and clears it.
func (b *Buffer) Resize(width, height int) {
	b.width = max(0, width)
	b.height = max(0, height)
	b.cells = make([]Cell, b.width*b.height)
	b.Clear()
}

// Clear resets every cell to a blank space.
func (b *Buffer) Clear() {
	blank := NewCell(' ', Style{})
	for i := range b.cells {
		b.cells[i] = blank
	}
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or an empty Cell if out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at (x, y). Out-of-bounds writes are ignored.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetRune writes r at (x, y), maintaining wide-character continuations and
// clearing any wide character it overlaps.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	current := b.Cell(x, y)
	if current.IsContinuation() {
		b.clearWideCharAt(x, y)
	}
	if current.Width == 2 && x+1 < b.width {
		b.SetCell(x+1, y, NewCell(' ', Style{}))
	}
	if width == 2 && x+1 < b.width {
		if next := b.Cell(x+1, y); next.Width == 2 || next.IsContinuation() {
			b.clearWideCharAt(x+1, y)
		}
	}

	// A wide character cannot start in the last column.
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', style))
		return
	}

	b.SetCell(x, y, Cell{Rune: r, Style: style, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Style: style})
	}
}

func (b *Buffer) clearWideCharAt(x, y int) {
	blank := NewCell(' ', Style{})
	cell := b.Cell(x, y)
	switch {
	case cell.IsContinuation():
		if x > 0 {
			b.SetCell(x-1, y, blank)
		}
		b.SetCell(x, y, blank)
	case cell.Width == 2:
		b.SetCell(x, y, blank)
		if x+1 < b.width {
			b.SetCell(x+1, y, blank)
		}
	}
}

// SetString writes s starting at (x, y) clipped to clip, and returns the
// display width written.
func (b *Buffer) SetString(x, y int, s string, style Style, clip Rect) int {
	clip = clip.Intersect(b.Rect())
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Right() {
			break
		}
		if curX >= clip.X && curX+width <= clip.Right() {
			b.SetRune(curX, y, r, style)
			written += width
		}
		curX += width
	}
	return written
}

// Fill fills rect with r.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				x++
				continue
			}
			b.SetRune(x, y, r, style)
			x += width
		}
	}
}

// Rect returns the buffer bounds.
func (b *Buffer) Rect() Rect {
	return Rect{W: b.width, H: b.height}
}

// Line returns row y as plain text, skipping continuation cells.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.IsContinuation() {
			continue
		}
		if c.Rune == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the buffer as plain text, one line per row.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}

// Rect is an integer cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// IsEmpty reports whether r covers no cells.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// Intersect returns the overlap of r and other.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, W: right - x, H: bottom - y}
}

// CellRect snaps a layout rectangle to whole cells.
func CellRect(r ui.Rectangle) Rect {
	x, y := round(r.X), round(r.Y)
	return Rect{X: x, Y: y, W: round(r.Right()) - x, H: round(r.Bottom()) - y}
}

func round(v float32) int {
	if v < 0 {
		return -int(-v + 0.5)
	}
	return int(v + 0.5)
}
