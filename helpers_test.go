package ui

import (
	"fmt"
	"testing"
)

// fakeRenderer implements every renderer capability and records draw calls.
// Text is measured as size/2 wide per byte and size tall.
type fakeRenderer struct {
	texts      []drawnText
	radios     []drawnIndicator
	checkboxes []drawnIndicator
}

type drawnText struct {
	Content string
	Bounds  Rectangle
	Size    float32
	Color   Color
}

type drawnIndicator struct {
	Checked   bool
	Indicator Rectangle
	Bounds    Rectangle
}

func (f *fakeRenderer) MeasureText(content string, size float32, _ Size[Number]) Size[float32] {
	return Size[float32]{Width: float32(len(content)) * size / 2, Height: size}
}

func (f *fakeRenderer) DrawText(content string, bounds Rectangle, size float32, color Color, _ HorizontalAlignment, _ VerticalAlignment) {
	f.texts = append(f.texts, drawnText{Content: content, Bounds: bounds, Size: size, Color: color})
}

func (f *fakeRenderer) DrawRadio(selected bool, indicator, bounds Rectangle, cursor Point) MouseCursor {
	f.radios = append(f.radios, drawnIndicator{Checked: selected, Indicator: indicator, Bounds: bounds})
	return hoverCursor(bounds, cursor)
}

func (f *fakeRenderer) DrawCheckbox(checked bool, indicator, bounds Rectangle, cursor Point) MouseCursor {
	f.checkboxes = append(f.checkboxes, drawnIndicator{Checked: checked, Indicator: indicator, Bounds: bounds})
	return hoverCursor(bounds, cursor)
}

func hoverCursor(bounds Rectangle, cursor Point) MouseCursor {
	if bounds.Contains(cursor) {
		return CursorPointer
	}
	return CursorOutOfBounds
}

// recorder is a fixed-size widget that logs every callback and emits its
// configured messages on any MouseInput.
type recorder struct {
	name   string
	width  float32
	emits  []string
	cursor MouseCursor
	log    *[]string
}

func (r *recorder) Node(*fakeRenderer) Node {
	return NewNode(r.style())
}

func (r *recorder) style() Style {
	return applyOptions(DefaultStyle(), []Option{WithSize(r.width, 10)})
}

func (r *recorder) OnEvent(event Event, _ Layout, _ Point, messages *[]string) {
	if r.log != nil {
		*r.log = append(*r.log, "event:"+r.name)
	}
	if _, ok := event.(MouseInput); ok {
		*messages = append(*messages, r.emits...)
	}
}

func (r *recorder) Draw(*fakeRenderer, Layout, Point) MouseCursor {
	if r.log != nil {
		*r.log = append(*r.log, "draw:"+r.name)
	}
	return r.cursor
}

func (r *recorder) Hash(h *Hasher) {
	h.WriteString("recorder")
	h.WriteString(r.name)
	h.WriteFloat32(r.width)
}

// failingWidget produces a node whose measurement fails.
type failingWidget struct{}

func (failingWidget) Node(*fakeRenderer) Node {
	return NewFallibleMeasureNode(DefaultStyle(), func(Size[Number]) (Size[float32], error) {
		return Size[float32]{}, fmt.Errorf("font not loaded")
	})
}

func (failingWidget) OnEvent(Event, Layout, Point, *[]string) {}

func (failingWidget) Draw(*fakeRenderer, Layout, Point) MouseCursor { return CursorOutOfBounds }

func (failingWidget) Hash(h *Hasher) { h.WriteString("failing") }

// countingEngine counts Resolve calls.
type countingEngine struct {
	calls int
}

func (c *countingEngine) Resolve(root Node, available Size[Number]) (Layout, error) {
	c.calls++
	return FlexEngine{}.Resolve(root, available)
}

func unconstrained() Size[Number] {
	return Size[Number]{Width: Undefined(), Height: Undefined()}
}

func mustResolve(t *testing.T, n Node, available Size[Number]) Layout {
	t.Helper()
	l, err := Resolve(n, available)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return l
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}
