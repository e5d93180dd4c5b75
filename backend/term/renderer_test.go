package term

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	ui "github.com/grindlemire/go-ui"
)

func TestRenderer_MeasureText(t *testing.T) {
	type tc struct {
		content string
		width   ui.Number
		want    ui.Size[float32]
	}

	tests := map[string]tc{
		"unconstrained": {content: "hello world", width: ui.Undefined(), want: ui.Size[float32]{Width: 11, Height: 1}},
		"wrapped":       {content: "hello world", width: ui.Defined(6), want: ui.Size[float32]{Width: 6, Height: 2}},
		"wide runes":    {content: "日本語", width: ui.Undefined(), want: ui.Size[float32]{Width: 6, Height: 1}},
		"newlines":      {content: "a\nbcd", width: ui.Undefined(), want: ui.Size[float32]{Width: 3, Height: 2}},
		"empty":         {content: "", width: ui.Undefined(), want: ui.Size[float32]{Width: 0, Height: 1}},
	}

	r := NewRenderer(NewBuffer(0, 0), DefaultTheme())
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := r.MeasureText(tt.content, 20, ui.Size[ui.Number]{Width: tt.width, Height: ui.Undefined()})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MeasureText() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderer_DrawTextAlignment(t *testing.T) {
	type tc struct {
		h    ui.HorizontalAlignment
		v    ui.VerticalAlignment
		want []string
	}

	tests := map[string]tc{
		"top left":     {h: ui.AlignLeft, v: ui.AlignTop, want: []string{"ab    ", "      ", "      "}},
		"center":       {h: ui.AlignHCenter, v: ui.AlignVCenter, want: []string{"      ", "  ab  ", "      "}},
		"bottom right": {h: ui.AlignRight, v: ui.AlignBottom, want: []string{"      ", "      ", "    ab"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(6, 3)
			r := NewRenderer(buf, DefaultTheme())
			r.DrawText("ab", ui.NewRectangle(0, 0, 6, 3), 1, ui.White, tt.h, tt.v)
			if diff := cmp.Diff(tt.want, strings.Split(buf.String(), "\n")); diff != "" {
				t.Errorf("buffer mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderer_DrawTextTruncates(t *testing.T) {
	buf := NewBuffer(10, 1)
	r := NewRenderer(buf, DefaultTheme())
	r.DrawText("abcdefgh", ui.NewRectangle(2, 0, 3, 1), 1, ui.White, ui.AlignLeft, ui.AlignTop)
	if got := buf.Line(0); got != "  abc     " {
		t.Errorf("Line(0) = %q", got)
	}
}

type pick string

func radioTree(selected string) ui.Widget[pick, *Renderer] {
	col := ui.NewColumn[pick, *Renderer]()
	for _, v := range []string{"a", "b"} {
		col.Push(ui.NewRadio[pick, *Renderer](v, strings.ToUpper(v), &selected, func(v string) pick { return pick(v) }).
			Size(IndicatorSize).Spacing(IndicatorSpacing))
	}
	return col
}

func TestRenderer_DrawsRadioTree(t *testing.T) {
	buf := NewBuffer(10, 6)
	r := NewRenderer(buf, DefaultTheme())
	rt, err := ui.NewRuntime(radioTree("a"), r, ui.WithViewport(10, 6))
	if err != nil {
		t.Fatalf("NewRuntime() error = %v", err)
	}

	rt.Dispatch(ui.MoveTo(1, 4))
	if cursor := rt.Draw(r); cursor != ui.CursorPointer {
		t.Errorf("Draw() = %v, want Pointer", cursor)
	}

	want := []string{
		"          ",
		"(•) A     ",
		"          ",
		"          ",
		"( ) B     ",
		"          ",
	}
	if diff := cmp.Diff(want, strings.Split(buf.String(), "\n")); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}

	if style := buf.Cell(0, 1).Style; style != DefaultTheme().Selected {
		t.Errorf("selected indicator style = %+v, want theme Selected", style)
	}
	if style := buf.Cell(0, 4).Style; style != DefaultTheme().IndicatorHover {
		t.Errorf("hovered indicator style = %+v, want theme IndicatorHover", style)
	}
}

func TestRenderer_DrawCheckbox(t *testing.T) {
	buf := NewBuffer(3, 1)
	r := NewRenderer(buf, DefaultTheme())
	cursor := r.DrawCheckbox(true, ui.NewRectangle(0, 0, 3, 1), ui.NewRectangle(0, 0, 3, 1), ui.Point{X: 9, Y: 9})
	if cursor != ui.CursorOutOfBounds {
		t.Errorf("cursor = %v, want OutOfBounds", cursor)
	}
	if got := buf.Line(0); got != "[x]" {
		t.Errorf("Line(0) = %q, want [x]", got)
	}
}

func TestRenderer_IndicatorMetrics(t *testing.T) {
	type tc struct {
		radio *ui.Radio[pick, *Renderer]
		want  ui.Rectangle
	}

	selected := "a"
	newRadio := func() *ui.Radio[pick, *Renderer] {
		return ui.NewRadio[pick, *Renderer]("a", "A", &selected, func(v string) pick { return pick(v) })
	}
	tests := map[string]tc{
		"cell metrics":  {radio: newRadio().Size(IndicatorSize).Spacing(IndicatorSpacing), want: ui.NewRectangle(0, 0, 5, 3)},
		"pixel default": {radio: newRadio(), want: ui.NewRectangle(0, 0, 44, 28)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rt, err := ui.NewRuntime[pick, *Renderer](tt.radio, NewRenderer(NewBuffer(0, 0), DefaultTheme()))
			if err != nil {
				t.Fatalf("NewRuntime() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, rt.Layout().Bounds()); diff != "" {
				t.Errorf("bounds mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
