// Package term is a terminal backend for package ui.
//
// A [Renderer] draws widgets into a [Buffer] of character cells, one layout
// unit per cell. [Buffer.View] turns the grid into ANSI-styled lines with
// lipgloss, and [Run] hosts a widget tree inside a bubbletea program,
// translating terminal mouse and key input into ui events.
package term
