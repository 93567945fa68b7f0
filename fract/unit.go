package fract

import "golang.org/x/image/math/fixed"

// Fixed point type to represent fractional values used for font rendering.
//
// 26 bits represent the integer part of the value, while the remaining 6 bits
// represent the decimal part. So, var pixels Unit = 64 means 1 pixel, and 96
// would be 1.5 pixels.
type Unit int32

// Fast conversion from int to [Unit]. If the int value is not
// representable with a [Unit], the result is undefined.
func FromInt(value int) Unit { return Unit(value << 6) }

// Converts a [fixed.Int26_6] to a [Unit].
func FromFixed(value fixed.Int26_6) Unit { return Unit(value) }

// Returns the lowest 6 bits of the unit, always in [0, 63].
// Unlike a plain modulo, negative values are also shifted to
// the positive range, which is what subpixel positioning needs.
func (self Unit) FractShift() Unit {
	return self & 0x3F
}

func (self Unit) ToFloat32() float32 {
	return float32(self)/64.0
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

// Rounds to the closest int, rounding up in case of ties.
func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^0x3F
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}
