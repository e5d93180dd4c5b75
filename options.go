package ui

// Option configures the Style of a widget.
type Option func(*Style)

// --- Dimension Options ---

// WithWidth sets a fixed width.
func WithWidth(width float32) Option {
	return func(s *Style) {
		s.Width = Fixed(width)
	}
}

// WithHeight sets a fixed height.
func WithHeight(height float32) Option {
	return func(s *Style) {
		s.Height = Fixed(height)
	}
}

// WithSize sets both width and height.
func WithSize(width, height float32) Option {
	return func(s *Style) {
		s.Width = Fixed(width)
		s.Height = Fixed(height)
	}
}

// WithWidthPercent sets width as a percentage of the parent's available width.
func WithWidthPercent(percent float32) Option {
	return func(s *Style) {
		s.Width = Percent(percent)
	}
}

// WithHeightPercent sets height as a percentage of the parent's available height.
func WithHeightPercent(percent float32) Option {
	return func(s *Style) {
		s.Height = Percent(percent)
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(width float32) Option {
	return func(s *Style) {
		s.MinWidth = Fixed(width)
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(height float32) Option {
	return func(s *Style) {
		s.MinHeight = Fixed(height)
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(width float32) Option {
	return func(s *Style) {
		s.MaxWidth = Fixed(width)
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(height float32) Option {
	return func(s *Style) {
		s.MaxHeight = Fixed(height)
	}
}

// WithFill makes the widget take all remaining main-axis space and stretch
// on the cross axis.
func WithFill() Option {
	return func(s *Style) {
		s.FlexGrow = 1
		stretch := AlignStretch
		s.AlignSelf = &stretch
	}
}

// --- Flex Options ---

// WithSpacing sets the gap between children along the main axis.
func WithSpacing(gap float32) Option {
	return func(s *Style) {
		s.Gap = gap
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(s *Style) {
		s.JustifyContent = j
	}
}

// WithAlignItems sets how children are aligned on the cross axis.
func WithAlignItems(a Align) Option {
	return func(s *Style) {
		s.AlignItems = a
	}
}

// WithAlignSelf overrides the parent's cross-axis alignment for this widget.
func WithAlignSelf(a Align) Option {
	return func(s *Style) {
		s.AlignSelf = &a
	}
}

// WithFlexGrow sets the flex grow factor.
func WithFlexGrow(grow float32) Option {
	return func(s *Style) {
		s.FlexGrow = grow
	}
}

// WithFlexShrink sets the flex shrink factor.
func WithFlexShrink(shrink float32) Option {
	return func(s *Style) {
		s.FlexShrink = shrink
	}
}

// --- Spacing Options ---

// WithPadding sets padding on all sides.
func WithPadding(e Edges) Option {
	return func(s *Style) {
		s.Padding = e
	}
}

// WithPaddingAll sets the same padding on all sides.
func WithPaddingAll(n float32) Option {
	return func(s *Style) {
		s.Padding = EdgeAll(n)
	}
}

// WithMargin sets margin on all sides.
func WithMargin(e Edges) Option {
	return func(s *Style) {
		s.Margin = e
	}
}

// applyOptions returns base with opts applied in order.
func applyOptions(base Style, opts []Option) Style {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	return base
}
