package glyph

import "image"
import "image/color"
import "image/draw"
import "errors"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/fontglyphs/fract"
import "github.com/tinne26/fontglyphs/mask"

// Color used to paint every glyph (opaque white).
var Foreground = color.NRGBA{255, 255, 255, 255}

var ErrNilFont = errors.New("nil font")
var ErrInvalidSize = errors.New("font size must be a positive integer")

// A size-bound rendering handle on a font. See the package
// documentation for concurrency constraints.
type Face struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	size int
	ppem fixed.Int26_6
	baseline fract.Unit
	rasterizer mask.Rasterizer
	foreground *image.Uniform
	canvas *image.RGBA
}

// Creates a new face for the given font at the given pixel size. Glyphs
// are rasterized with a [mask.DefaultRasterizer] unless changed through
// [Face.SetRasterizer]().
func NewFace(sfntFont *sfnt.Font, size int) (*Face, error) {
	if sfntFont == nil { return nil, ErrNilFont }
	if size <= 0 { return nil, ErrInvalidSize }

	face := &Face{
		font: sfntFont,
		size: size,
		ppem: fixed.I(size),
		rasterizer: &mask.DefaultRasterizer{},
		foreground: image.NewUniform(Foreground),
		canvas: image.NewRGBA(image.Rect(0, 0, size, size)),
	}

	metrics, err := sfntFont.Metrics(&face.buffer, face.ppem, font.HintingNone)
	if err != nil { return nil, err }
	face.baseline = baselineFor(size, metrics)
	return face, nil
}

// Returns the pixel size of the face.
func (self *Face) Size() int { return self.size }

// Sets the mask rasterizer used by [Face.Render](). Passing nil
// restores the default anti-aliased rasterizer.
func (self *Face) SetRasterizer(rasterizer mask.Rasterizer) {
	if rasterizer == nil { rasterizer = &mask.DefaultRasterizer{} }
	self.rasterizer = rasterizer
}

// Renders the glyph for the given code point into a Size() x Size()
// surface, painted with [Foreground] over a transparent background.
//
// Glyphs are placed on a baseline shared by the whole face. When a glyph's
// ink would cross an edge of the surface but fits in it along that axis
// (e.g. accented capitals), it's nudged back inside instead of clipped.
// Only glyphs larger than the surface itself get clipped.
//
// If the font doesn't map the code point to any glyph, both the surface
// and the error will be nil. Glyphs without contours (e.g. spaces)
// produce a blank surface.
//
// The returned surface is owned by the face and will be overwritten on
// the next call to Render(). Copy it if it needs to outlive that.
func (self *Face) Render(codePoint rune) (*image.RGBA, error) {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return nil, err }
	if index == 0 { return nil, nil } // .notdef

	outline, err := self.font.LoadGlyph(&self.buffer, index, self.ppem, nil)
	if err != nil { return nil, err }

	clear(self.canvas.Pix)
	dot := fract.UnitsToPoint(0, self.baseline)
	alpha, err := mask.Rasterize(outline, self.rasterizer, dot)
	if err != nil { return nil, err }
	if alpha != nil {
		target := fitInto(alpha.Rect.Add(dot.ImageFloor()), self.size)
		draw.DrawMask(self.canvas, target, self.foreground, image.Point{}, alpha, alpha.Rect.Min, draw.Over)
	}
	return self.canvas, nil
}

// Places the baseline so that the font's ascent and descent are
// distributed proportionally within the given pixel size. Outlines
// are y-down, with ascenders above the baseline.
func baselineFor(size int, metrics font.Metrics) fract.Unit {
	ascent, descent := int64(metrics.Ascent), int64(metrics.Descent)
	if descent < 0 { descent = -descent }
	if ascent <= 0 || ascent + descent <= 0 { return fract.FromInt(size) }
	scaled := fract.Unit(int64(fract.FromInt(size))*ascent/(ascent + descent))
	return fract.FromInt(scaled.ToIntHalfUp())
}

// Translates the ink rect so it stays within [0, size) on each axis
// where it's not bigger than size. Other axes are left untouched.
func fitInto(ink image.Rectangle, size int) image.Rectangle {
	return ink.Add(image.Pt(
		fitShift(ink.Min.X, ink.Max.X, size),
		fitShift(ink.Min.Y, ink.Max.Y, size),
	))
}

func fitShift(lo, hi, size int) int {
	if hi - lo > size { return 0 }
	if lo < 0 { return -lo }
	if hi > size { return size - hi }
	return 0
}
