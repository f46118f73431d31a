package fontbake

import "image"
import "errors"
import "strconv"

import "golang.org/x/image/font/sfnt"

import "github.com/fontbake/fontbake/mask"
import fbfont "github.com/fontbake/fontbake/font"

// Returned by the builder functions when the requested pixel size
// is zero or negative.
var ErrBadSize = errors.New("rasterization size must be positive")

// Default code point range and packing width used when the
// corresponding [Options] fields are left at zero.
const (
	DefaultFirst       = ' ' // 32, first printable ascii code point
	DefaultLast        = '~' // 126, last printable ascii code point
	DefaultMaxRowWidth = 256
)

// Padding in pixels between adjacent glyph regions, and the row
// granularity the atlas height is rounded up to.
const (
	glyphPadding  = 1
	rowRoundingTo = 8
)

// Options configure the atlas builder. Only Size is required.
type Options struct {
	Size int // pixel size to rasterize at; must be positive

	First rune // first code point to bake (default ' ')
	Last  rune // last code point to bake, inclusive (default '~')

	// Maximum row width for the packing policy, which is also the
	// width of the resulting atlas (default 256). Glyphs are packed
	// left to right in code point order, wrapping to a new row when
	// the next glyph wouldn't fit.
	MaxRowWidth int

	// Rasterizer to use for the sfnt-backed builder functions
	// (default [mask.DefaultRasterizer]). Ignored by [Build], which
	// receives a fully formed [Source] instead.
	Rasterizer mask.Rasterizer
}

func (self *Options) fillDefaults() {
	if self.First == 0 { self.First = DefaultFirst }
	if self.Last  == 0 { self.Last = DefaultLast }
	if self.MaxRowWidth == 0 { self.MaxRowWidth = DefaultMaxRowWidth }
}

// Builds an [Atlas] from the font file at the given path. Supported
// formats are .ttf and .otf. This is the most common entry point.
func BuildFromPath(path string, opts Options) (*Atlas, error) {
	if opts.Size <= 0 { return nil, ErrBadSize }
	sfntFont, _, err := fbfont.ParseFromPath(path)
	if err != nil { return nil, err }
	return Build(NewSource(sfntFont, opts.Rasterizer), opts)
}

// Builds an [Atlas] from raw font bytes. The bytes must not be
// modified while the build is in progress.
func BuildFromBytes(fontBytes []byte, opts Options) (*Atlas, error) {
	if opts.Size <= 0 { return nil, ErrBadSize }
	sfntFont, _, err := fbfont.ParseFromBytes(fontBytes)
	if err != nil { return nil, err }
	return Build(NewSource(sfntFont, opts.Rasterizer), opts)
}

// Builds an [Atlas] from an already parsed font.
func BuildFromFont(sfntFont *sfnt.Font, opts Options) (*Atlas, error) {
	return Build(NewSource(sfntFont, opts.Rasterizer), opts)
}

// Builds an [Atlas] from an arbitrary glyph [Source].
//
// Glyphs are requested in ascending code point order and packed with a
// row-based policy: left to right with one pixel of padding, wrapping
// to a new row when the current one can't fit the next glyph. Packing
// is fully deterministic, so identical inputs always produce identical
// atlases. No partial atlas is ever returned on error.
func Build(source Source, opts Options) (*Atlas, error) {
	if opts.Size <= 0 { return nil, ErrBadSize }
	opts.fillDefaults()
	if opts.Last < opts.First {
		return nil, errors.New("invalid code point range " + rangeStr(opts.First, opts.Last))
	}

	lineHeight, err := source.LineHeight(opts.Size)
	if err != nil { return nil, err }

	// first pass: rasterize every glyph and assign its atlas position
	numGlyphs := int(opts.Last - opts.First + 1)
	glyphs := make([]Glyph, numGlyphs)
	bitmaps := make([]*image.Alpha, numGlyphs)
	x, y, rowHeight := 0, 0, 0
	for i := 0; i < numGlyphs; i++ {
		codePoint := opts.First + rune(i)
		bitmap, advance, err := source.Glyph(codePoint, opts.Size)
		if err != nil { return nil, err }

		bounds := bitmap.Bounds()
		width, height := bounds.Dx(), bounds.Dy()
		glyph := Glyph{
			Width: width, Height: height,
			OffsetX: bounds.Min.X, OffsetY: bounds.Min.Y,
			Advance: advance,
		}
		if width == 0 || height == 0 {
			// inkless glyphs keep their advance but consume
			// no packing space
			glyphs[i] = Glyph{ Advance: advance }
			continue
		}

		if width + glyphPadding > opts.MaxRowWidth {
			return nil, errors.New(
				"glyph for '" + string(codePoint) + "' is " + strconv.Itoa(width) +
				"px wide and doesn't fit the " + strconv.Itoa(opts.MaxRowWidth) +
				"px atlas row (increase Options.MaxRowWidth or reduce Options.Size)",
			)
		}
		if x + width + glyphPadding > opts.MaxRowWidth {
			x = 0
			y += rowHeight + glyphPadding
			rowHeight = 0
		}
		glyph.AtlasX, glyph.AtlasY = x, y
		x += width + glyphPadding
		if height > rowHeight { rowHeight = height }

		glyphs[i] = glyph
		bitmaps[i] = bitmap
	}

	// second pass: blit every glyph bitmap into the packed buffer
	atlasWidth := opts.MaxRowWidth
	atlasHeight := roundUpRows(y + rowHeight)
	pixels := make([]byte, atlasWidth*atlasHeight)
	for i, bitmap := range bitmaps {
		if bitmap == nil { continue }
		glyph := glyphs[i]
		for row := 0; row < glyph.Height; row++ {
			src := bitmap.Pix[row*bitmap.Stride : row*bitmap.Stride + glyph.Width]
			dst := pixels[(glyph.AtlasY + row)*atlasWidth + glyph.AtlasX:]
			copy(dst, src)
		}
	}

	return &Atlas{
		Width: atlasWidth, Height: atlasHeight, Pixels: pixels,
		First: opts.First, Last: opts.Last, Glyphs: glyphs,
		FontName: source.Name(), Size: opts.Size, LineHeight: lineHeight,
	}, nil
}

// Rounds the atlas height up to a multiple of the row granularity.
// Keeps the atlas friendly to texture uploads with alignment
// requirements, and zero rounds up to one granule so the pixel
// buffer is never empty.
func roundUpRows(height int) int {
	rem := height % rowRoundingTo
	if rem == 0 && height > 0 { return height }
	return height + rowRoundingTo - rem
}

func rangeStr(first, last rune) string {
	return "[" + strconv.Itoa(int(first)) + ", " + strconv.Itoa(int(last)) + "]"
}
