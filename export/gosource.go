package export

import "io"
import "fmt"
import "bufio"

import "github.com/fontbake/fontbake"

// Package name used by [WriteGoSource] when none is given.
const DefaultPackage = "debugfont"

// Number of atlas bytes emitted per source line.
const bytesPerLine = 16

// Serializes the given atlas as a Go source file: the atlas dimensions
// and font metrics as constants, the glyph table as a fixed-size array
// indexed by codePoint - FirstChar, and the coverage buffer as a flat
// byte table. Output is byte-for-byte deterministic for identical
// atlases.
func WriteGoSource(writer io.Writer, atlas *fontbake.Atlas, pkgName string) error {
	if pkgName == "" { pkgName = DefaultPackage }
	w := bufio.NewWriter(writer)

	fmt.Fprintf(w, "// Code generated by fontbake. DO NOT EDIT.\n")
	if atlas.FontName != "" {
		fmt.Fprintf(w, "// Debug bitmap font baked from \"%s\" at %dpx.\n", atlas.FontName, atlas.Size)
	} else {
		fmt.Fprintf(w, "// Debug bitmap font baked at %dpx.\n", atlas.Size)
	}
	fmt.Fprintf(w, "\npackage %s\n\n", pkgName)

	fmt.Fprintf(w, "// Atlas dimensions and font metrics.\n")
	fmt.Fprintf(w, "const (\n")
	fmt.Fprintf(w, "\tAtlasWidth  = %d\n", atlas.Width)
	fmt.Fprintf(w, "\tAtlasHeight = %d\n", atlas.Height)
	fmt.Fprintf(w, "\tFirstChar   = %d\n", atlas.First)
	fmt.Fprintf(w, "\tLastChar    = %d\n", atlas.Last)
	fmt.Fprintf(w, "\tLineHeight  = %d\n", atlas.LineHeight)
	fmt.Fprintf(w, ")\n\n")

	fmt.Fprintf(w, "// Glyph describes where one code point lives in the atlas and how\n")
	fmt.Fprintf(w, "// to place it relative to the text baseline.\n")
	fmt.Fprintf(w, "type Glyph struct {\n")
	fmt.Fprintf(w, "\tWidth, Height    int\n")
	fmt.Fprintf(w, "\tOffsetX, OffsetY int\n")
	fmt.Fprintf(w, "\tAdvance          int\n")
	fmt.Fprintf(w, "\tAtlasX, AtlasY   int\n")
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "// Glyphs is indexed by codePoint - FirstChar.\n")
	fmt.Fprintf(w, "var Glyphs = [%d]Glyph{\n", len(atlas.Glyphs))
	for _, glyph := range atlas.Glyphs {
		fmt.Fprintf(w, "\t{%d, %d, %d, %d, %d, %d, %d},\n",
			glyph.Width, glyph.Height, glyph.OffsetX, glyph.OffsetY,
			glyph.Advance, glyph.AtlasX, glyph.AtlasY)
	}
	fmt.Fprintf(w, "}\n\n")

	fmt.Fprintf(w, "// Alpha holds the atlas coverage bytes (0 = no ink, 255 = full ink),\n")
	fmt.Fprintf(w, "// row-major, AtlasWidth*AtlasHeight bytes long.\n")
	fmt.Fprintf(w, "var Alpha = [...]byte{\n")
	for offset := 0; offset < len(atlas.Pixels); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(atlas.Pixels) { end = len(atlas.Pixels) }
		w.WriteByte('\t')
		for i, value := range atlas.Pixels[offset:end] {
			if i > 0 { w.WriteByte(' ') }
			w.WriteString(byteLiterals[value])
		}
		w.WriteByte('\n')
	}
	fmt.Fprintf(w, "}\n")

	return w.Flush()
}

// Precomputed uppercase "0xNN," literals. The pixel table dominates
// the output size and Fprintf per byte is measurably slow on big
// atlases.
var byteLiterals = func() [256]string {
	const hexDigits = "0123456789ABCDEF"
	var literals [256]string
	for i := 0; i < 256; i++ {
		literals[i] = "0x" + string(hexDigits[i >> 4]) + string(hexDigits[i & 0xF]) + ","
	}
	return literals
}()
