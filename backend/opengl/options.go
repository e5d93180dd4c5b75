package opengl

import (
	"fmt"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/backend/gpu"
)

// Option is a functional option for configuring Run.
type Option func(*config) error

type config struct {
	title  string
	width  int
	height int
	clear  ui.Color
	theme  gpu.Theme
}

func defaultConfig() config {
	return config{
		title:  "go-ui",
		width:  640,
		height: 480,
		clear:  ui.MustParseHex("#202124"),
		theme:  gpu.DefaultTheme(),
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) error {
		c.title = title
		return nil
	}
}

// WithSize sets the initial window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *config) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("window size must be positive, got %dx%d", width, height)
		}
		c.width = width
		c.height = height
		return nil
	}
}

// WithClearColor sets the window background.
func WithClearColor(color ui.Color) Option {
	return func(c *config) error {
		c.clear = color
		return nil
	}
}

// WithTheme sets the colors of radio and checkbox indicators.
func WithTheme(theme gpu.Theme) Option {
	return func(c *config) error {
		c.theme = theme
		return nil
	}
}
