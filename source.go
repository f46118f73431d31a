package fontbake

import "image"
import "strconv"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/fontbake/fontbake/mask"
import fbfont "github.com/fontbake/fontbake/font"

// A Source provides per-glyph bitmaps and metrics for the atlas builder.
// It's the narrow seam between the builder and the concrete rasterization
// machinery, so the latter can be swapped without touching the packing or
// serialization logic.
//
// Sources can't be used concurrently.
type Source interface {
	// Returns a human readable name for the underlying font,
	// or an empty string if none is available.
	Name() string

	// Returns the vertical distance between consecutive text
	// baselines, in pixels, at the given pixel size.
	LineHeight(size int) (int, error)

	// Returns the coverage bitmap and horizontal advance for the
	// given code point at the given pixel size. The bitmap's Rect
	// is relative to the baseline origin (Min.Y is negative for
	// any ink above the baseline). Inkless code points must return
	// an empty bitmap and a valid advance.
	Glyph(codePoint rune, size int) (*image.Alpha, int, error)
}

var _ Source = (*sfntSource)(nil)

// The default [Source], backed by an [golang.org/x/image/font/sfnt.Font]
// and a [mask.Rasterizer].
type sfntSource struct {
	font       *sfnt.Font
	rasterizer mask.Rasterizer
	buffer     sfnt.Buffer
}

// Creates a [Source] from an already parsed font. A nil rasterizer
// defaults to [mask.DefaultRasterizer].
func NewSource(sfntFont *sfnt.Font, rasterizer mask.Rasterizer) Source {
	if rasterizer == nil { rasterizer = &mask.DefaultRasterizer{} }
	return &sfntSource{ font: sfntFont, rasterizer: rasterizer }
}

func (self *sfntSource) Name() string {
	name, err := fbfont.GetName(self.font)
	if err != nil { return "" }
	return name
}

func (self *sfntSource) LineHeight(size int) (int, error) {
	metrics, err := self.font.Metrics(&self.buffer, fixed.I(size), font.HintingNone)
	if err != nil { return 0, err }
	return metrics.Height.Ceil(), nil
}

func (self *sfntSource) Glyph(codePoint rune, size int) (*image.Alpha, int, error) {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return nil, 0, err }

	// index 0 is the font's notdef glyph; we bake it as is so code
	// points missing from the font still get a visible placeholder
	// and a stable table entry
	segments, err := self.font.LoadGlyph(&self.buffer, index, fixed.I(size), nil)
	if err != nil {
		return nil, 0, wrapGlyphErr("font.LoadGlyph", index, err)
	}
	advance, err := self.font.GlyphAdvance(&self.buffer, index, fixed.I(size), font.HintingNone)
	if err != nil {
		return nil, 0, wrapGlyphErr("font.GlyphAdvance", index, err)
	}

	// rasterization happens at whole pixel positions only, so the
	// fractional offset is always zero
	alphaMask, err := mask.Rasterize(segments, self.rasterizer, fixed.Point26_6{})
	if err != nil { return nil, 0, err }
	if alphaMask == nil {
		// inkless glyph (e.g. space)
		alphaMask = &image.Alpha{}
	}
	return alphaMask, advance.Round(), nil
}

func wrapGlyphErr(op string, index sfnt.GlyphIndex, err error) error {
	return &glyphError{ op: op, index: index, cause: err }
}

type glyphError struct {
	op    string
	index sfnt.GlyphIndex
	cause error
}

func (self *glyphError) Error() string {
	return self.op + "(index = " + strconv.Itoa(int(self.index)) + "): " + self.cause.Error()
}

func (self *glyphError) Unwrap() error { return self.cause }
