package gpu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	ui "github.com/grindlemire/go-ui"
)

var red = ui.RGB(255, 0, 0)

func TestDrawList_AddRect(t *testing.T) {
	dl := NewDrawList()
	dl.AddRect(ui.NewRectangle(1, 2, 3, 4), red)
	dl.Finalize()

	wantVtx := []Vertex{
		{Pos: [2]float32{1, 2}, Color: 0xFF0000FF},
		{Pos: [2]float32{4, 2}, Color: 0xFF0000FF},
		{Pos: [2]float32{4, 6}, Color: 0xFF0000FF},
		{Pos: [2]float32{1, 6}, Color: 0xFF0000FF},
	}
	if diff := cmp.Diff(wantVtx, dl.VtxBuffer); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer); diff != "" {
		t.Errorf("indices mismatch (-want +got):\n%s", diff)
	}
	wantCmd := []DrawCmd{{ElemCount: 6, ClipRect: noClip}}
	if diff := cmp.Diff(wantCmd, dl.CmdBuffer); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawList_SkipsInvisible(t *testing.T) {
	type tc struct {
		draw func(dl *DrawList)
	}

	tests := map[string]tc{
		"transparent rect": {draw: func(dl *DrawList) { dl.AddRect(ui.NewRectangle(0, 0, 5, 5), ui.Transparent) }},
		"empty rect":       {draw: func(dl *DrawList) { dl.AddRect(ui.NewRectangle(0, 0, 0, 5), red) }},
		"zero radius":      {draw: func(dl *DrawList) { dl.AddCircle(ui.Point{}, 0, red, 8) }},
		"two segments":     {draw: func(dl *DrawList) { dl.AddCircle(ui.Point{}, 4, red, 2) }},
		"thin ring":        {draw: func(dl *DrawList) { dl.AddRing(ui.Point{}, 4, 0, red, 8) }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dl := NewDrawList()
			tt.draw(dl)
			dl.Finalize()
			if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
				t.Errorf("drew %d vertices in %d commands", len(dl.VtxBuffer), len(dl.CmdBuffer))
			}
		})
	}
}

func TestDrawList_TextureSplitsCommands(t *testing.T) {
	dl := NewDrawList()
	dl.AddRect(ui.NewRectangle(0, 0, 1, 1), red)
	dl.SetTexture(7)
	dl.AddGlyphQuads([]GlyphQuad{{X1: 1, Y1: 1, U1: 1, V1: 1}}, ui.White)
	dl.SetTexture(0)
	dl.AddRect(ui.NewRectangle(0, 0, 1, 1), red)
	dl.Finalize()

	want := []DrawCmd{
		{ElemCount: 6, ClipRect: noClip, TextureID: 0, VertexOffset: 0, IndexOffset: 0},
		{ElemCount: 6, ClipRect: noClip, TextureID: 7, VertexOffset: 4, IndexOffset: 6},
		{ElemCount: 6, ClipRect: noClip, TextureID: 0, VertexOffset: 8, IndexOffset: 12},
	}
	if diff := cmp.Diff(want, dl.CmdBuffer); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
	// Indices restart at zero in every command.
	if diff := cmp.Diff([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer[12:]); diff != "" {
		t.Errorf("last command indices mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawList_ClipStack(t *testing.T) {
	dl := NewDrawList()
	dl.PushClipRect(ui.NewRectangle(10, 20, 30, 40))
	dl.AddRect(ui.NewRectangle(0, 0, 100, 100), red)
	dl.PopClipRect()
	dl.AddRect(ui.NewRectangle(0, 0, 100, 100), red)
	dl.PopClipRect()
	dl.Finalize()

	got := make([][4]float32, 0, len(dl.CmdBuffer))
	for _, cmd := range dl.CmdBuffer {
		got = append(got, cmd.ClipRect)
	}
	want := [][4]float32{{10, 20, 40, 60}, noClip}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("clip rects mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawList_Shapes(t *testing.T) {
	type tc struct {
		draw    func(dl *DrawList)
		wantVtx int
		wantIdx int
	}

	tests := map[string]tc{
		"circle": {
			draw:    func(dl *DrawList) { dl.AddCircle(ui.Point{X: 5, Y: 5}, 4, red, 8) },
			wantVtx: 9,
			wantIdx: 24,
		},
		"ring": {
			draw:    func(dl *DrawList) { dl.AddRing(ui.Point{X: 5, Y: 5}, 4, 1, red, 8) },
			wantVtx: 16,
			wantIdx: 48,
		},
		"outline": {
			draw:    func(dl *DrawList) { dl.AddRectOutline(ui.NewRectangle(0, 0, 10, 10), red, 1) },
			wantVtx: 16,
			wantIdx: 24,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dl := NewDrawList()
			tt.draw(dl)
			dl.Finalize()
			if len(dl.VtxBuffer) != tt.wantVtx {
				t.Errorf("vertices = %d, want %d", len(dl.VtxBuffer), tt.wantVtx)
			}
			if len(dl.IdxBuffer) != tt.wantIdx {
				t.Errorf("indices = %d, want %d", len(dl.IdxBuffer), tt.wantIdx)
			}
			for i, idx := range dl.IdxBuffer {
				if int(idx) >= len(dl.VtxBuffer) {
					t.Fatalf("index %d = %d out of range", i, idx)
				}
			}
		})
	}
}

func TestDrawList_CirclePointsOnRim(t *testing.T) {
	dl := NewDrawList()
	dl.AddCircle(ui.Point{X: 10, Y: 10}, 5, red, 4)

	want := [][2]float32{{10, 10}, {15, 10}, {10, 15}, {5, 10}, {10, 5}}
	got := make([][2]float32, 0, len(dl.VtxBuffer))
	for _, v := range dl.VtxBuffer {
		got = append(got, v.Pos)
	}
	approx := cmp.Comparer(func(a, b float32) bool {
		d := a - b
		return d < 1e-4 && d > -1e-4
	})
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("circle vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawList_FinalizeAndClear(t *testing.T) {
	dl := NewDrawList()
	dl.SetTexture(3)
	dl.SetTexture(0)
	dl.AddRect(ui.NewRectangle(0, 0, 1, 1), red)
	dl.Finalize()
	dl.Finalize()

	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Fatalf("commands = %+v, want one with 6 indices", dl.CmdBuffer)
	}

	dl.Clear()
	if len(dl.CmdBuffer)+len(dl.VtxBuffer)+len(dl.IdxBuffer) != 0 {
		t.Error("Clear() left data behind")
	}
	dl.AddRect(ui.NewRectangle(0, 0, 1, 1), red)
	dl.Finalize()
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].TextureID != 0 {
		t.Errorf("commands after Clear = %+v", dl.CmdBuffer)
	}
}
