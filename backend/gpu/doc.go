// Package gpu renders ui widgets into vertex and index buffers.
//
// A Canvas implements the ui renderer capabilities by appending triangles to a
// DrawList. Text is drawn from an Atlas, a single-channel glyph texture built
// from a bitmap font. Nothing in this package talks to a graphics API; a device
// such as backend/opengl uploads the finished DrawList.
package gpu
