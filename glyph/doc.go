// The glyph subpackage rasterizes individual font glyphs into
// fixed size RGBA surfaces, one code point at a time.
//
// A [Face] binds a parsed font to a pixel size and owns every
// resource needed to render with it: the sfnt buffer, the mask
// rasterizer and a reusable canvas. Faces are cheap, but they
// can't be used concurrently; create one per goroutine instead.
// The underlying *sfnt.Font can be shared between faces.
//
// Code points are iterated on a fixed [GridWidth] x [GridWidth]
// grid, and [GridRect]() gives the cell each glyph would occupy
// if the surfaces were ever composed into a single atlas.
package glyph
