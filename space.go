package ui

// Space is an empty leaf used to reserve room or push siblings apart.
type Space[M, R any] struct {
	style Style
}

// NewSpace creates a Space configured by opts.
func NewSpace[M, R any](opts ...Option) *Space[M, R] {
	return &Space[M, R]{style: applyOptions(DefaultStyle(), opts)}
}

// NewFlexSpace creates a Space that takes the remaining main-axis room.
func NewFlexSpace[M, R any]() *Space[M, R] {
	return NewSpace[M, R](WithFlexGrow(1))
}

// Node implements Widget.
func (s *Space[M, R]) Node(R) Node {
	return NewNode(s.style)
}

// OnEvent implements Widget.
func (s *Space[M, R]) OnEvent(Event, Layout, Point, *[]M) {}

// Draw implements Widget.
func (s *Space[M, R]) Draw(R, Layout, Point) MouseCursor {
	return CursorOutOfBounds
}

// Hash implements Widget.
func (s *Space[M, R]) Hash(h *Hasher) {
	h.WriteString("space")
	h.WriteStyle(s.style)
}
