package term

import "fmt"

// Option is a functional option for configuring Run.
type Option func(*config) error

type config struct {
	theme     Theme
	altScreen bool
	mouse     bool
	quitKeys  []string
}

func defaultConfig() config {
	return config{
		theme:    DefaultTheme(),
		mouse:    true,
		quitKeys: []string{"ctrl+c", "q"},
	}
}

// WithTheme sets the theme used to draw controls.
func WithTheme(t Theme) Option {
	return func(c *config) error {
		c.theme = t
		return nil
	}
}

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen() Option {
	return func(c *config) error {
		c.altScreen = true
		return nil
	}
}

// WithoutMouse disables mouse reporting.
func WithoutMouse() Option {
	return func(c *config) error {
		c.mouse = false
		return nil
	}
}

// WithQuitKeys replaces the keys that end the program.
func WithQuitKeys(keys ...string) Option {
	return func(c *config) error {
		if len(keys) == 0 {
			return fmt.Errorf("at least one quit key is required")
		}
		c.quitKeys = keys
		return nil
	}
}
