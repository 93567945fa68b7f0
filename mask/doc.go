// The mask subpackage defines the [Rasterizer] interface used to turn
// glyph outlines into alpha masks, and provides the implementations
// used when exporting glyphs.
//
// In this context, "[Rasterizer]" refers to a "glyph mask rasterizer":
// font glyphs are extracted from font files as outlines (sets of lines
// and curves), and must be converted into a raster image (a grid of
// pixels) before being painted and encoded. The [DefaultRasterizer]
// produces anti-aliased masks, while the [SharpRasterizer] quantizes
// them to fully opaque or fully transparent values.
package mask
