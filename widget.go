package ui

// Widget is the behavior every UI element implements. M is the message type
// the widget emits and R is the renderer it draws with.
//
// When OnEvent or Draw consult layout.Child(i), the i-th child layout belongs
// to the i-th child node returned by Node for the same widget instance.
type Widget[M, R any] interface {
	// Node returns the widget's layout requirements. The renderer is
	// available for backend-dependent measurement such as text metrics.
	Node(renderer R) Node

	// OnEvent reacts to an input event by appending zero or more messages.
	// Unrecognized events are ignored.
	OnEvent(event Event, layout Layout, cursor Point, messages *[]M)

	// Draw renders the widget within layout and returns the cursor
	// affordance for the current pointer position. Draw must be idempotent.
	Draw(renderer R, layout Layout, cursor Point) MouseCursor

	// Hash writes every input that affects Node into h.
	Hash(h *Hasher)
}
