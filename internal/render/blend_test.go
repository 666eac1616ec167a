package render

import (
	"image"
	"math"
	"testing"
)

func TestBlendEndpoints(t *testing.T) {
	fg, bg := Color(0x9000FF), Color(0xFFDC00)
	buf := NewPixelBuffer(2, 1)

	Blend(buf, 0, 0, 1, fg, bg)
	if got := buf.Pixel(0, 0); got != fg {
		t.Fatalf("coverage 1 = %#06x, want fg %#06x", uint32(got), uint32(fg))
	}

	buf.Pix[1] = 0x123456
	Blend(buf, 1, 0, 0, fg, bg)
	if got := buf.Pixel(1, 0); got != 0x123456 {
		t.Fatalf("coverage 0 touched the pixel: %#06x", uint32(got))
	}
	if got := Mix(fg, bg, 0); got != bg {
		t.Fatalf("Mix at 0 = %#06x, want bg", uint32(got))
	}
}

func TestBlendBelowEpsilonLeavesPixel(t *testing.T) {
	buf := NewPixelBuffer(1, 1)
	for _, c := range []float64{0, 0.001, 0.005, 0.0099} {
		buf.Pix[0] = 0xABCDEF
		Blend(buf, 0, 0, c, 0xFFFFFF, 0x000000)
		if buf.Pix[0] != 0xABCDEF {
			t.Fatalf("coverage %v changed pixel to %#x", c, buf.Pix[0])
		}
	}
}

func TestBlendMatchesFormula(t *testing.T) {
	colors := []Color{0x000000, 0xFFFFFF, 0x9000FF, 0xFFDC00, 0x0A1B2C, 0x7F8081}
	buf := NewPixelBuffer(1, 1)
	for _, fg := range colors {
		for _, bg := range colors {
			for i := 1; i <= 100; i++ {
				c := float64(i) / 100
				Blend(buf, 0, 0, c, fg, bg)
				got := Color(buf.Pix[0])
				want := RGB(expect(fg.R(), bg.R(), c), expect(fg.G(), bg.G(), c), expect(fg.B(), bg.B(), c))
				if got != want {
					t.Fatalf("Blend(c=%v, fg=%#06x, bg=%#06x) = %#06x, want %#06x", c, uint32(fg), uint32(bg), uint32(got), uint32(want))
				}
			}
		}
	}
}

func expect(fg, bg uint8, c float64) uint8 {
	v := math.Round(float64(fg)*c + float64(bg)*(1-c))
	return uint8(math.Max(0, math.Min(255, v)))
}

func TestBlendOutOfBoundsIgnored(t *testing.T) {
	buf := NewPixelBuffer(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {100, 100}} {
		Blend(buf, p[0], p[1], 1, 0xFFFFFF, 0)
	}
	for i, v := range buf.Pix {
		if v != 0 {
			t.Fatalf("pixel %d written by out of bounds blend", i)
		}
	}
}

func TestDrawGlyphsClipsAtEdges(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for i := range mask.Pix {
		mask.Pix[i] = 0xFF
	}
	g := Glyph{Rune: 'x', Bounds: image.Rect(-2, -2, 2, 2), mask: mask}
	buf := NewPixelBuffer(3, 3)
	DrawGlyphs(buf, []Glyph{g}, 0xFFFFFF, 0x000000)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Color(0)
			if x < 2 && y < 2 {
				want = 0xFFFFFF
			}
			if got := buf.Pixel(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#06x, want %#06x", x, y, uint32(got), uint32(want))
			}
		}
	}
}
