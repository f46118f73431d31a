// fontbake is a package for baking TrueType/OpenType fonts into ascii
// bitmap font atlases, mainly intended for embedding small debug fonts
// directly into programs.
//
// Common usage only requires a couple calls...
//
// First, you build an [Atlas] from a font file:
//   atlas, err := fontbake.BuildFromPath("path/to/font.ttf", fontbake.Options{ Size: 18 })
//   if err != nil { ... }
//
// Then, you serialize it with the export subpackage:
//   err := export.WriteFile(atlas, "debugfont.go", "debugfont")
//
// The atlas packs one glyph per printable ascii code point into a single
// single-channel bitmap, alongside a table with each glyph's placement,
// size and advance. Consumers index the table directly with
// codePoint - atlas.First; there's no search involved.
package fontbake
