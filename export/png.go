package export

import "io"
import "image"
import "image/png"

import "github.com/fontbake/fontbake"

// Serializes the given atlas as an 8-bit grayscale PNG of exactly
// Width x Height pixels. Useful to eyeball packing results; the Go
// source form is the one meant for programmatic consumption.
func WritePNG(writer io.Writer, atlas *fontbake.Atlas) error {
	// the atlas buffer already is a row-major grayscale bitmap,
	// so it can be wrapped without copying
	gray := &image.Gray {
		Pix: atlas.Pixels,
		Stride: atlas.Width,
		Rect: image.Rect(0, 0, atlas.Width, atlas.Height),
	}
	return png.Encode(writer, gray)
}
