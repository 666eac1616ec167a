package render

import "math"

// Blend composites fg over bg at (x, y) with the given coverage and stores the
// result in buf. Coverage below CoverageEpsilon and pixels outside the buffer
// are skipped silently; clipped glyph edges are not an error.
func Blend(buf *PixelBuffer, x, y int, coverage float64, fg, bg Color) {
	if coverage < CoverageEpsilon || !buf.Contains(x, y) {
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	buf.Pix[y*buf.Width+x] = uint32(Mix(fg, bg, coverage))
}

// Mix linearly interpolates each channel: fg*c + bg*(1-c), rounded and clamped.
func Mix(fg, bg Color, c float64) Color {
	return RGB(
		mixChannel(fg.R(), bg.R(), c),
		mixChannel(fg.G(), bg.G(), c),
		mixChannel(fg.B(), bg.B(), c),
	)
}

func mixChannel(fg, bg uint8, c float64) uint8 {
	v := math.Round(float64(fg)*c + float64(bg)*(1-c))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// DrawGlyphs composites every glyph into buf. Coverage samples are local to
// the glyph and get translated by the glyph bounds minimum.
func DrawGlyphs(buf *PixelBuffer, glyphs []Glyph, fg, bg Color) {
	for _, g := range glyphs {
		w, h := g.Bounds.Dx(), g.Bounds.Dy()
		for y := 0; y < h; y++ {
			by := g.Bounds.Min.Y + y
			if by < 0 || by >= buf.Height {
				continue
			}
			for x := 0; x < w; x++ {
				Blend(buf, g.Bounds.Min.X+x, by, g.Coverage(x, y), fg, bg)
			}
		}
	}
}
