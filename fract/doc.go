// The fract subpackage defines a [Unit] type representing a 26.6
// fixed point value, as used by font outlines, together with the
// [Point] and [Rect] helper types needed to position glyph masks.
//
// The internal representation is compatible with [fixed.Int26_6],
// so values coming from [golang.org/x/image/font/sfnt] can be
// converted without any loss.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
package fract
