// The mask subpackage contains the definition of the Rasterizer
// interface used by the atlas builder, along with a default
// implementation based on [golang.org/x/image/vector].
//
// In this context, "Rasterizer" refers to a "glyph mask rasterizer":
// font glyphs are defined as outlines (a set of lines and curves),
// and before they can be packed into an atlas they have to be
// rasterized into a grid of coverage pixels.
//
// The atlas builder only ever talks to the Rasterizer interface, so
// swapping the rasterization backend never requires touching the
// packing or serialization code.
package mask
