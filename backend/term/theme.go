package term

import ui "github.com/grindlemire/go-ui"

// Theme holds the styles the Renderer uses for built-in controls.
type Theme struct {
	Indicator      Style
	IndicatorHover Style
	Selected       Style
}

// DefaultTheme returns the default terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Indicator:      Style{Fg: ui.MustParseHex("#a0a0a0")},
		IndicatorHover: Style{Fg: ui.White, Attrs: AttrBold},
		Selected:       Style{Fg: ui.MustParseHex("#5fafff"), Attrs: AttrBold},
	}
}
