package gpu

import (
	"math"

	ui "github.com/grindlemire/go-ui"
)

// Vertex is one corner of a triangle. Color is packed as 0xAABBGGRR so it can
// be read as four normalized bytes.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd is a contiguous run of indices sharing a clip rectangle and texture.
// Indices are relative to VertexOffset.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32
	VertexOffset uint32
	IndexOffset  uint32
}

// DrawList accumulates the triangles of one frame, split into commands
// whenever the texture or clip rectangle changes.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack   [][4]float32
	currentClip [4]float32
	textureID   uint32
	vtxOffset   uint32
	idxOffset   uint32
	finalized   bool
}

var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// NewDrawList returns an empty DrawList.
func NewDrawList() *DrawList {
	dl := &DrawList{
		VtxBuffer: make([]Vertex, 0, 1024),
		IdxBuffer: make([]uint16, 0, 2048),
		CmdBuffer: make([]DrawCmd, 0, 16),
	}
	dl.Clear()
	return dl
}

// Clear resets the list for a new frame, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.vtxOffset = 0
	dl.idxOffset = 0
	dl.finalized = false
}

// PushClipRect restricts subsequent primitives to r.
func (dl *DrawList) PushClipRect(r ui.Rectangle) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{r.X, r.Y, r.X + r.Width, r.Y + r.Height}
	dl.split()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.split()
}

// SetTexture selects the texture for subsequent primitives. Zero means
// untextured.
func (dl *DrawList) SetTexture(id uint32) {
	if dl.textureID == id {
		return
	}
	dl.textureID = id
	dl.split()
}

// split closes the open command and starts a new one with the current state.
func (dl *DrawList) split() {
	dl.closeCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.vtxOffset = uint32(len(dl.VtxBuffer))
	dl.idxOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCommand() {
	if len(dl.CmdBuffer) > 0 {
		dl.CmdBuffer[len(dl.CmdBuffer)-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxOffset
	}
}

// addVertices appends verts and returns the index of the first one relative
// to the open command. A command is split off before the uint16 range would
// overflow.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.vtxOffset)+len(verts) > math.MaxUint16 {
		dl.split()
	}
	start := uint16(len(dl.VtxBuffer) - int(dl.vtxOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect fills r. Fully transparent colors draw nothing.
func (dl *DrawList) AddRect(r ui.Rectangle, c ui.Color) {
	if c.IsTransparent() || r.IsEmpty() {
		return
	}
	dl.addQuad(r.X, r.Y, r.X+r.Width, r.Y+r.Height, 0, 0, 0, 0, c.Packed())
}

// AddRectOutline strokes the inside edge of r with the given thickness.
func (dl *DrawList) AddRectOutline(r ui.Rectangle, c ui.Color, thickness float32) {
	if c.IsTransparent() || r.IsEmpty() {
		return
	}
	t := min(thickness, r.Width/2, r.Height/2)
	dl.AddRect(ui.NewRectangle(r.X, r.Y, r.Width, t), c)
	dl.AddRect(ui.NewRectangle(r.X, r.Y+r.Height-t, r.Width, t), c)
	dl.AddRect(ui.NewRectangle(r.X, r.Y+t, t, r.Height-2*t), c)
	dl.AddRect(ui.NewRectangle(r.X+r.Width-t, r.Y+t, t, r.Height-2*t), c)
}

// AddCircle fills a circle as a triangle fan with the given number of
// segments around the rim.
func (dl *DrawList) AddCircle(center ui.Point, radius float32, c ui.Color, segments int) {
	if c.IsTransparent() || radius <= 0 || segments < 3 {
		return
	}
	color := c.Packed()
	verts := make([]Vertex, 0, segments+1)
	verts = append(verts, Vertex{Pos: [2]float32{center.X, center.Y}, Color: color})
	for i := range segments {
		x, y := rim(center, radius, i, segments)
		verts = append(verts, Vertex{Pos: [2]float32{x, y}, Color: color})
	}

	idx := dl.addVertices(verts...)
	for i := range segments {
		next := (i+1)%segments + 1
		dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+uint16(i)+1, idx+uint16(next))
	}
}

// AddRing strokes a circle between radius-thickness and radius.
func (dl *DrawList) AddRing(center ui.Point, radius, thickness float32, c ui.Color, segments int) {
	if c.IsTransparent() || radius <= 0 || thickness <= 0 || segments < 3 {
		return
	}
	inner := max(radius-thickness, 0)
	color := c.Packed()
	verts := make([]Vertex, 0, segments*2)
	for i := range segments {
		ox, oy := rim(center, radius, i, segments)
		ix, iy := rim(center, inner, i, segments)
		verts = append(verts,
			Vertex{Pos: [2]float32{ox, oy}, Color: color},
			Vertex{Pos: [2]float32{ix, iy}, Color: color},
		)
	}

	idx := dl.addVertices(verts...)
	for i := range segments {
		o0, i0 := idx+uint16(2*i), idx+uint16(2*i+1)
		n := (i + 1) % segments
		o1, i1 := idx+uint16(2*n), idx+uint16(2*n+1)
		dl.IdxBuffer = append(dl.IdxBuffer, o0, o1, i1, o0, i1, i0)
	}
}

func rim(center ui.Point, radius float32, i, segments int) (float32, float32) {
	a := 2 * math.Pi * float64(i) / float64(segments)
	return center.X + radius*float32(math.Cos(a)), center.Y + radius*float32(math.Sin(a))
}

// GlyphQuad is the screen and texture rectangle of one glyph.
type GlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32
	U1, V1 float32
}

// AddGlyphQuads draws quads sampled from the current texture, tinted by c.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, c ui.Color) {
	if c.IsTransparent() {
		return
	}
	color := c.Packed()
	for _, q := range quads {
		dl.addQuad(q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, color)
	}
}

// Finalize closes the open command and drops empty ones. Primitives added
// after Finalize are not drawn until the next Clear.
func (dl *DrawList) Finalize() {
	if dl.finalized {
		return
	}
	dl.finalized = true
	dl.closeCommand()
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
