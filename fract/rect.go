package fract

import "golang.org/x/image/math/fixed"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a [fixed.Rectangle26_6], like the ones
// returned by [sfnt.Segments.Bounds]().
//
// [sfnt.Segments.Bounds]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Segments.Bounds
func FromFixedRect(rect fixed.Rectangle26_6) Rect {
	return Rect{
		Min: Point{ X: FromFixed(rect.Min.X), Y: FromFixed(rect.Min.Y) },
		Max: Point{ X: FromFixed(rect.Max.X), Y: FromFixed(rect.Max.Y) },
	}
}
