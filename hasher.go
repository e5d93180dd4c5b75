package ui

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher accumulates the structural state of a widget tree. Widgets write
// everything that affects their Node and nothing that only affects drawing,
// so equal sums mean the layout can be reused.
//
// The zero value is ready to use.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

func (h *Hasher) digest() *xxhash.Digest {
	if h.d == nil {
		h.d = xxhash.New()
	}
	return h.d
}

// WriteString writes s, length-prefixed so adjacent strings cannot run
// together.
func (h *Hasher) WriteString(s string) {
	h.WriteInt(len(s))
	_, _ = h.digest().WriteString(s)
}

// WriteInt writes v as 8 little-endian bytes.
func (h *Hasher) WriteInt(v int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(v))
	_, _ = h.digest().Write(h.buf[:8])
}

// WriteFloat32 writes the bit pattern of v.
func (h *Hasher) WriteFloat32(v float32) {
	binary.LittleEndian.PutUint32(h.buf[:4], math.Float32bits(v))
	_, _ = h.digest().Write(h.buf[:4])
}

// WriteBool writes a single byte.
func (h *Hasher) WriteBool(v bool) {
	h.buf[0] = 0
	if v {
		h.buf[0] = 1
	}
	_, _ = h.digest().Write(h.buf[:1])
}

// Sum64 returns the current hash.
func (h *Hasher) Sum64() uint64 {
	return h.digest().Sum64()
}

// Reset clears the accumulated state.
func (h *Hasher) Reset() {
	h.digest().Reset()
}

// writeValue writes a dimension value.
func (h *Hasher) writeValue(v Value) {
	h.buf[0] = byte(v.Unit)
	_, _ = h.digest().Write(h.buf[:1])
	h.WriteFloat32(v.Amount)
}

func (h *Hasher) writeEdges(e Edges) {
	h.WriteFloat32(e.Top)
	h.WriteFloat32(e.Right)
	h.WriteFloat32(e.Bottom)
	h.WriteFloat32(e.Left)
}

// WriteStyle writes every layout-affecting field of s.
func (h *Hasher) WriteStyle(s Style) {
	h.writeValue(s.Width)
	h.writeValue(s.Height)
	h.writeValue(s.MinWidth)
	h.writeValue(s.MinHeight)
	h.writeValue(s.MaxWidth)
	h.writeValue(s.MaxHeight)
	h.WriteInt(int(s.Direction))
	h.WriteInt(int(s.JustifyContent))
	h.WriteInt(int(s.AlignItems))
	h.WriteFloat32(s.Gap)
	h.WriteFloat32(s.FlexGrow)
	h.WriteFloat32(s.FlexShrink)
	h.WriteBool(s.AlignSelf != nil)
	if s.AlignSelf != nil {
		h.WriteInt(int(*s.AlignSelf))
	}
	h.writeEdges(s.Padding)
	h.writeEdges(s.Margin)
}
