package term

import (
	"github.com/charmbracelet/lipgloss"

	ui "github.com/grindlemire/go-ui"
)

// Attr represents text attributes as a bitfield.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Style combines text attributes with foreground and background colors.
// A transparent color means the terminal default.
type Style struct {
	Fg    ui.Color
	Bg    ui.Color
	Attrs Attr
}

// Foreground returns a copy of s with the given foreground color.
func (s Style) Foreground(c ui.Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of s with the given background color.
func (s Style) Background(c ui.Color) Style {
	s.Bg = c
	return s
}

// With returns a copy of s with attrs added.
func (s Style) With(attrs Attr) Style {
	s.Attrs |= attrs
	return s
}

// Has reports whether every attribute in attrs is set.
func (s Style) Has(attrs Attr) bool {
	return s.Attrs&attrs == attrs
}

// lipgloss converts s into a lipgloss style.
func (s Style) lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if !s.Fg.IsTransparent() {
		ls = ls.Foreground(lipgloss.Color(s.Fg.Hex()[:7]))
	}
	if !s.Bg.IsTransparent() {
		ls = ls.Background(lipgloss.Color(s.Bg.Hex()[:7]))
	}
	if s.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Has(AttrReverse) {
		ls = ls.Reverse(true)
	}
	return ls
}
