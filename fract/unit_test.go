package fract

import "testing"
import "image"

import "golang.org/x/image/math/fixed"

func TestFloorCeil(t *testing.T) {
	tests := []struct {
		in    Unit
		floor Unit
		ceil  Unit
	}{
		{0, 0, 0}, {1, 0, 64}, {63, 0, 64}, {64, 64, 64}, {65, 64, 128},
		{-1, -64, 0}, {-64, -64, -64}, {-65, -128, -64}, {96, 64, 128},
	}

	for i, test := range tests {
		if floor := test.in.Floor(); floor != test.floor {
			t.Fatalf("test #%d: in %d expected floor %d, but got %d", i, test.in, test.floor, floor)
		}
		if ceil := test.in.Ceil(); ceil != test.ceil {
			t.Fatalf("test #%d: in %d expected ceil %d, but got %d", i, test.in, test.ceil, ceil)
		}
	}
}

func TestToInts(t *testing.T) {
	tests := []struct {
		in     Unit
		floor  int
		halfUp int
	}{
		{0, 0, 0}, {32, 0, 1}, {31, 0, 0}, {64, 1, 1},
		{-32, -1, 0}, {-33, -1, -1}, {-64, -1, -1}, {160, 2, 3},
	}

	for i, test := range tests {
		if out := test.in.ToIntFloor(); out != test.floor {
			t.Fatalf("test #%d: in %d expected floor %d, but got %d", i, test.in, test.floor, out)
		}
		if out := test.in.ToIntHalfUp(); out != test.halfUp {
			t.Fatalf("test #%d: in %d expected half up %d, but got %d", i, test.in, test.halfUp, out)
		}
	}
}

func TestFractShift(t *testing.T) {
	tests := []struct {
		in  Unit
		out Unit
	}{
		{0, 0}, {1, 1}, {63, 63}, {64, 0}, {65, 1}, {-1, 63}, {-64, 0}, {-63, 1},
	}

	for i, test := range tests {
		out := test.in.FractShift()
		if out != test.out {
			t.Fatalf("test #%d: in %d expected %d, but got %d", i, test.in, test.out, out)
		}
		if (test.in - out).Floor() != test.in - out {
			t.Fatalf("test #%d: in %d minus shift %d is not whole", i, test.in, out)
		}
	}
}

func TestFromFixedRect(t *testing.T) {
	rect := FromFixedRect(fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: -32, Y: -640},
		Max: fixed.Point26_6{X: 400, Y: 10},
	})
	want := Rect{ Min: UnitsToPoint(-32, -640), Max: UnitsToPoint(400, 10) }
	if rect != want {
		t.Fatalf("expected %v, got %v", want, rect)
	}
	if pt := rect.Min.ImageFloor(); pt != image.Pt(-1, -10) {
		t.Fatalf("unexpected floored min %v", pt)
	}
	moved := UnitsToPoint(FromInt(2), FromInt(-3)).AddPoint(UnitsToPoint(32, 0))
	if pt := moved.ImageFloor(); pt != image.Pt(2, -3) {
		t.Fatalf("unexpected floored point %v", pt)
	}
	if x, y := moved.ToFloat32s(); x != 2.5 || y != -3 {
		t.Fatalf("unexpected float coords (%v, %v)", x, y)
	}
}
