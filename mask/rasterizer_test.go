package mask

import "image"
import "testing"

import "golang.org/x/image/font/sfnt"
import "github.com/tinne26/fontglyphs/fract"

func TestRasterizeEmpty(t *testing.T) {
	var rast DefaultRasterizer
	tests := []sfnt.Segments{
		nil,
		sfnt.Segments{},
		sfnt.Segments(moveTo(nil, 64, 64)),
		sfnt.Segments(moveTo(moveTo(nil, 0, 0), 128, 128)),
	}
	for i, outline := range tests {
		mask, err := Rasterize(outline, &rast, fract.Point{})
		if err != nil { t.Fatalf("test #%d: unexpected error %s", i, err) }
		if mask != nil { t.Fatalf("test #%d: expected nil mask, got %v", i, mask.Rect) }
	}
}

func TestDefaultRasterizerSquare(t *testing.T) {
	var rast DefaultRasterizer
	outline := polySegments([]float64{1, 1, 1, 3, 3, 3, 3, 1})
	mask, err := Rasterize(outline, &rast, fract.Point{})
	if err != nil { t.Fatal(err) }
	if mask == nil { t.Fatal("unexpected nil mask") }

	want := image.Rect(1, 1, 3, 3)
	if mask.Rect != want {
		t.Fatalf("expected mask bounds %v, got %v", want, mask.Rect)
	}
	for y := want.Min.Y; y < want.Max.Y; y++ {
		for x := want.Min.X; x < want.Max.X; x++ {
			if a := mask.AlphaAt(x, y).A; a != 255 {
				t.Fatalf("expected full coverage at (%d, %d), got %d", x, y, a)
			}
		}
	}
}

func TestDefaultRasterizerAntialiased(t *testing.T) {
	// half pixel wide rect must produce partial coverage
	var rast DefaultRasterizer
	outline := polySegments([]float64{0, 0, 0, 2, 0.5, 2, 0.5, 0})
	mask, err := Rasterize(outline, &rast, fract.Point{})
	if err != nil { t.Fatal(err) }
	if mask.Rect != image.Rect(0, 0, 1, 2) {
		t.Fatalf("unexpected mask bounds %v", mask.Rect)
	}
	a := mask.AlphaAt(0, 0).A
	if a < 120 || a > 135 {
		t.Fatalf("expected ~50%% coverage, got %d", a)
	}
}

func TestDefaultRasterizerCurves(t *testing.T) {
	var rast DefaultRasterizer
	segments := moveTo(nil, 0, 0)
	segments = quadTo(segments, 256, 0, 256, 256)
	segments = lineTo(segments, 0, 256)
	segments = lineTo(segments, 0, 0)
	mask, err := Rasterize(sfnt.Segments(segments), &rast, fract.UnitsToPoint(32, 32))
	if err != nil { t.Fatal(err) }
	if mask.Rect.Dx() != 5 || mask.Rect.Dy() != 5 {
		t.Fatalf("expected 5x5 mask with subpixel offset, got %v", mask.Rect)
	}
	if a := mask.AlphaAt(1, 3).A; a == 0 {
		t.Fatal("expected coverage inside the curve")
	}
}

func TestSharpRasterizer(t *testing.T) {
	var rast SharpRasterizer
	outline := polySegments([]float64{0, 0, 0, 2, 1.75, 2, 1.75, 0})
	mask, err := Rasterize(outline, &rast, fract.Point{})
	if err != nil { t.Fatal(err) }
	for _, value := range mask.Pix {
		if value != 0 && value != 255 {
			t.Fatalf("expected only 0 or 255 values, got %d", value)
		}
	}
	if mask.AlphaAt(1, 0).A != 255 {
		t.Fatal("expected 75% covered pixel to become opaque")
	}

	rast.Threshold = 255
	mask, err = Rasterize(outline, &rast, fract.Point{})
	if err != nil { t.Fatal(err) }
	if mask.AlphaAt(1, 0).A != 0 {
		t.Fatal("expected 75% covered pixel to become transparent with high threshold")
	}
}
