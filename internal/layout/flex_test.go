package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rowOf builds a 100x20 row container around children.
func rowOf(fn func(s *Style), children ...*Node) *Node {
	return NewNode(styled(func(s *Style) {
		s.Width = Fixed(100)
		s.Height = Fixed(20)
		if fn != nil {
			fn(s)
		}
	}), children...)
}

func childRects(t *testing.T, root *Node) []Rect {
	t.Helper()
	box, err := Compute(root, available(500, 500))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	rects := make([]Rect, len(box.Children))
	for i, c := range box.Children {
		rects[i] = c.Rect
	}
	return rects
}

func TestFlex_Grow(t *testing.T) {
	grow := func(factor float32) *Node {
		return NewNode(styled(func(s *Style) {
			s.Width = Fixed(10)
			s.FlexGrow = factor
		}))
	}

	got := childRects(t, rowOf(nil, grow(1), grow(3)))
	want := []Rect{NewRect(0, 0, 30, 20), NewRect(30, 0, 70, 20)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grow mismatch (-want +got):\n%s", diff)
	}
}

func TestFlex_Shrink(t *testing.T) {
	got := childRects(t, rowOf(nil, fixedNode(80, 20), fixedNode(80, 20)))
	want := []Rect{NewRect(0, 0, 50, 20), NewRect(50, 0, 50, 20)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shrink mismatch (-want +got):\n%s", diff)
	}
}

func TestFlex_Gap(t *testing.T) {
	got := childRects(t, rowOf(func(s *Style) { s.Gap = 5 }, fixedNode(10, 20), fixedNode(10, 20), fixedNode(10, 20)))
	wantX := []float32{0, 15, 30}
	for i, r := range got {
		if r.X != wantX[i] {
			t.Errorf("child %d X = %v, want %v", i, r.X, wantX[i])
		}
	}
}

func TestFlex_Justify(t *testing.T) {
	tests := map[string]struct {
		justify Justify
		wantX   []float32
	}{
		"start":         {justify: JustifyStart, wantX: []float32{0, 20}},
		"end":           {justify: JustifyEnd, wantX: []float32{60, 80}},
		"center":        {justify: JustifyCenter, wantX: []float32{30, 50}},
		"space between": {justify: JustifySpaceBetween, wantX: []float32{0, 80}},
		"space around":  {justify: JustifySpaceAround, wantX: []float32{15, 65}},
		"space evenly":  {justify: JustifySpaceEvenly, wantX: []float32{20, 60}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := childRects(t, rowOf(func(s *Style) { s.JustifyContent = tt.justify }, fixedNode(20, 20), fixedNode(20, 20)))
			for i, r := range got {
				if r.X != tt.wantX[i] {
					t.Errorf("child %d X = %v, want %v", i, r.X, tt.wantX[i])
				}
			}
		})
	}
}

func TestFlex_AlignItems(t *testing.T) {
	tests := map[string]struct {
		align      Align
		wantY      float32
		wantHeight float32
	}{
		"start":   {align: AlignStart, wantY: 0, wantHeight: 6},
		"end":     {align: AlignEnd, wantY: 14, wantHeight: 6},
		"center":  {align: AlignCenter, wantY: 7, wantHeight: 6},
		"stretch": {align: AlignStretch, wantY: 0, wantHeight: 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := childRects(t, rowOf(func(s *Style) { s.AlignItems = tt.align }, measuredNode(10, 6)))
			if got[0].Y != tt.wantY || got[0].Height != tt.wantHeight {
				t.Errorf("child = %+v, want Y=%v Height=%v", got[0], tt.wantY, tt.wantHeight)
			}
		})
	}
}

func TestFlex_AlignSelfOverridesParent(t *testing.T) {
	end := AlignEnd
	child := NewLeaf(styled(func(s *Style) { s.AlignSelf = &end }), func(Size[Number]) (Size[float32], error) {
		return Size[float32]{Width: 10, Height: 4}, nil
	})

	got := childRects(t, rowOf(func(s *Style) { s.AlignItems = AlignStart }, child))
	if got[0].Y != 16 {
		t.Errorf("child Y = %v, want 16", got[0].Y)
	}
}

func TestFlex_Margin(t *testing.T) {
	child := NewNode(styled(func(s *Style) {
		s.Width = Fixed(10)
		s.Margin = EdgeTRBL(1, 2, 3, 4)
	}))

	got := childRects(t, rowOf(nil, child, fixedNode(10, 20)))
	want := []Rect{NewRect(4, 1, 10, 16), NewRect(16, 0, 10, 20)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("margin mismatch (-want +got):\n%s", diff)
	}
}

func TestFlex_MinMax(t *testing.T) {
	capped := NewNode(styled(func(s *Style) {
		s.FlexGrow = 1
		s.MaxWidth = Fixed(30)
	}))
	floored := NewNode(styled(func(s *Style) {
		s.Width = Fixed(5)
		s.MinWidth = Fixed(15)
	}))

	got := childRects(t, rowOf(nil, capped, floored))
	if got[0].Width != 30 {
		t.Errorf("capped width = %v, want 30", got[0].Width)
	}
	if got[1].Width != 15 {
		t.Errorf("floored width = %v, want 15", got[1].Width)
	}
}

func TestFlex_ColumnIntrinsicWidth(t *testing.T) {
	col := NewNode(styled(func(s *Style) {
		s.Direction = Column
		s.Padding = EdgeAll(1)
		s.Gap = 2
	}), measuredNode(12, 3), measuredNode(7, 3))

	root := NewNode(styled(func(s *Style) { s.AlignItems = AlignStart }), col)
	box, err := Compute(root, available(100, 100))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	got := box.Children[0].Rect
	if diff := cmp.Diff(NewRect(0, 0, 14, 10), got); diff != "" {
		t.Errorf("column rect mismatch (-want +got):\n%s", diff)
	}
}
