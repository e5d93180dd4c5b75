package ui

import "fmt"

// RuntimeOption is a functional option for configuring a Runtime.
type RuntimeOption func(*runtimeConfig) error

type runtimeConfig struct {
	engine   Engine
	viewport Size[Number]
}

func defaultRuntimeConfig() runtimeConfig {
	return runtimeConfig{
		engine:   FlexEngine{},
		viewport: Size[Number]{Width: Undefined(), Height: Undefined()},
	}
}

// WithEngine replaces the default FlexEngine.
func WithEngine(e Engine) RuntimeOption {
	return func(c *runtimeConfig) error {
		if e == nil {
			return fmt.Errorf("layout engine cannot be nil")
		}
		c.engine = e
		return nil
	}
}

// WithViewport sets the initial available size. Without it the root takes
// its intrinsic size on both axes.
func WithViewport(width, height float32) RuntimeOption {
	return func(c *runtimeConfig) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("viewport %gx%g must not be negative", width, height)
		}
		c.viewport = Available(width, height)
		return nil
	}
}
