package gpu

import ui "github.com/grindlemire/go-ui"

// Theme holds the colors of radio and checkbox indicators.
type Theme struct {
	Background      ui.Color
	BackgroundHover ui.Color
	Border          ui.Color
	Mark            ui.Color
	BorderWidth     float32
}

// DefaultTheme is a light indicator on a dark window.
func DefaultTheme() Theme {
	return Theme{
		Background:      ui.MustParseHex("#f0f0f0"),
		BackgroundHover: ui.MustParseHex("#dcdcdc"),
		Border:          ui.MustParseHex("#3c3c3c"),
		Mark:            ui.MustParseHex("#1e88e5"),
		BorderWidth:     1,
	}
}
