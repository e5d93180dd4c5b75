package term

import "strings"

// View renders the buffer as ANSI-styled text. Runs of cells sharing a
// style are rendered together; unstyled runs are emitted as plain text.
func (b *Buffer) View() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		b.writeLine(&sb, y)
	}
	return sb.String()
}

func (b *Buffer) writeLine(sb *strings.Builder, y int) {
	var run strings.Builder
	var runStyle Style
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runStyle == (Style{}) {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(runStyle.lipgloss().Render(run.String()))
		}
		run.Reset()
	}

	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.IsContinuation() {
			continue
		}
		if c.Style != runStyle {
			flush()
			runStyle = c.Style
		}
		if c.Rune == 0 {
			run.WriteByte(' ')
		} else {
			run.WriteRune(c.Rune)
		}
	}
	flush()
}
