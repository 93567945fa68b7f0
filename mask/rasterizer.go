package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/fontglyphs/fract"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask. This interface is offered as an open alternative to the
// concrete [golang.org/x/image/vector.Rasterizer] type, so glyph faces
// can switch between anti-aliased and monochrome output.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (only the lowest 6 bits of
	// each coordinate are considered).
	Rasterize(sfnt.Segments, fract.Point) (*image.Alpha, error)
}

type vectorTracer interface {
	// Move to the given coordinate.
	MoveTo(fract.Point)

	// Create a segment to the given coordinate.
	LineTo(fract.Point)

	// Conic Bézier curve (also called quadratic). The first parameter
	// is the control coordinate, and the second one the final target.
	QuadTo(fract.Point, fract.Point)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fract.Point, fract.Point, fract.Point)
}

// A low level method to rasterize glyph masks.
//
// Returned masks have their coordinates adjusted so the mask is drawn at
// dot origin (0, 0) + the given fractional position. To draw it at a
// specific dot, translate the mask by dot.X.Floor() and dot.Y.Floor().
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fract.Point) (*image.Alpha, error) {
	// return nil if the outline doesn't include lines or curves
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(toPoint(segment.Args[0]))
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(toPoint(segment.Args[0]))
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(toPoint(segment.Args[0]), toPoint(segment.Args[1]))
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(
				toPoint(segment.Args[0]),
				toPoint(segment.Args[1]),
				toPoint(segment.Args[2]),
			)
		default:
			panic("unexpected segment.Op case")
		}
	}
}
