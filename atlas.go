package fontbake

// A Glyph describes the placement and metrics of a single code point
// within an [Atlas].
//
// Offsets are relative to the text baseline origin: to draw the glyph
// at dot (x, y), blit the atlas region at (x + OffsetX, y + OffsetY)
// and then move the dot Advance pixels to the right.
type Glyph struct {
	Width   int // bitmap width in pixels (0 for inkless glyphs)
	Height  int // bitmap height in pixels (0 for inkless glyphs)
	OffsetX int // horizontal draw offset from the baseline origin
	OffsetY int // vertical draw offset (negative above the baseline)
	Advance int // horizontal advance in pixels
	AtlasX  int // left coordinate of the glyph region in the atlas
	AtlasY  int // top coordinate of the glyph region in the atlas
}

// An Atlas is the result of baking one font at one pixel size: a packed
// single-channel coverage bitmap plus one [Glyph] entry per code point
// in [First, Last].
//
// Coverage bytes use 0 for "no ink" and 255 for "full ink". The glyph
// table is ordered by ascending code point and has no gaps, so the entry
// for a code point cp is Glyphs[cp - First]. Atlases are immutable once
// built.
type Atlas struct {
	Width  int    // atlas bitmap width in pixels
	Height int    // atlas bitmap height in pixels
	Pixels []byte // row-major coverage buffer, len = Width*Height

	First  rune    // first baked code point
	Last   rune    // last baked code point (inclusive)
	Glyphs []Glyph // one entry per code point, indexed by cp - First

	FontName   string // font name as reported by the font, may be empty
	Size       int    // pixel size the font was rasterized at
	LineHeight int    // vertical distance between consecutive baselines
}

// Returns the glyph entry for the given code point and true, or a zero
// glyph and false if the code point falls outside [Atlas.First, Atlas.Last].
func (self *Atlas) Glyph(codePoint rune) (Glyph, bool) {
	if codePoint < self.First || codePoint > self.Last {
		return Glyph{}, false
	}
	return self.Glyphs[codePoint - self.First], true
}
