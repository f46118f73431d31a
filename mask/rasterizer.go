package mask

import "image"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// Rasterizer is an interface for vector graphics rasterization to an
// alpha mask. The atlas builder targets this interface instead of a
// concrete type so the rasterization backend stays swappable.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (always positive coords
	// between 0 and 0:63 (= 0.984375)).
	//
	// The returned mask's Rect is relative to the glyph origin on the
	// baseline, so Rect.Min gives the draw offsets for the glyph.
	Rasterize(sfnt.Segments, fixed.Point26_6) (*image.Alpha, error)
}

// Maybe this could be exported, but it doesn't feel that relevant.
type vectorTracer interface {
	// Move to the given coordinate.
	MoveTo(fixed.Point26_6)

	// Create a segment to the given coordinate.
	LineTo(fixed.Point26_6)

	// Conic Bézier curve (also called quadratic). The first parameter
	// is the control coordinate, and the second one the final target.
	QuadTo(fixed.Point26_6, fixed.Point26_6)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fixed.Point26_6, fixed.Point26_6, fixed.Point26_6)
}

// A low level method to rasterize glyph masks.
//
// Returned masks have their Rect coordinates adjusted so the mask is
// drawn at dot origin (0, 0) + the given fractional position. Only the
// fractional part of the given coordinate is considered; pass the
// zero-value fixed.Point26_6{} to rasterize at a whole pixel position,
// which is what the atlas builder always does.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fixed.Point26_6) (*image.Alpha, error) {
	// return nil if the outline doesn't include lines or curves
	somethingToDraw := false
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo {
			somethingToDraw = true
			break
		}
	}
	if !somethingToDraw { return nil, nil }

	// obtain the fractional part of the coordinate
	// (always positive, between 0 and 0:63 [0.984375])
	fract := fixed.Point26_6 {
		X: dot.X & 0x0000003F,
		Y: dot.Y & 0x0000003F,
	}

	// rasterize the glyph outline
	return rasterizer.Rasterize(outline, fract)
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo: tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo: tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo: tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo: tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}
