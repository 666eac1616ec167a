package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Glyph is one positioned character. Bounds is in buffer coordinates;
// Coverage takes offsets local to Bounds.Min.
type Glyph struct {
	Rune   rune
	Bounds image.Rectangle
	mask   *image.Alpha
}

// Coverage returns the ink coverage in [0,1] at local offset (x, y).
func (g Glyph) Coverage(x, y int) float64 {
	if g.mask == nil {
		return 0
	}
	p := image.Pt(g.mask.Rect.Min.X+x, g.mask.Rect.Min.Y+y)
	if !p.In(g.mask.Rect) {
		return 0
	}
	return float64(g.mask.AlphaAt(p.X, p.Y).A) / 0xFF
}

// VerticalMetrics are in pixels, both positive.
type VerticalMetrics struct {
	Ascent  float64
	Descent float64
}

// Rasterizer turns text into positioned glyphs for one font face.
type Rasterizer struct {
	face font.Face
	name string
}

func NewRasterizer(face font.Face) *Rasterizer {
	return &Rasterizer{face: face}
}

// Name is the source the face was loaded from, for diagnostics.
func (r *Rasterizer) Name() string { return r.name }

// Layout places text with its baseline origin at (x, y) and returns one glyph
// per inked character. Characters without ink (spaces) still advance the pen.
func (r *Rasterizer) Layout(text string, x, y float64) []Glyph {
	dot := fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
	glyphs := make([]Glyph, 0, len(text))
	prev := rune(-1)
	for _, ch := range text {
		if prev >= 0 {
			dot.X += r.face.Kern(prev, ch)
		}
		prev = ch
		dr, mask, maskp, advance, ok := r.face.Glyph(dot, ch)
		if !ok {
			continue
		}
		dot.X += advance
		if dr.Empty() {
			continue
		}
		// Face masks are reused between calls, so keep a private copy.
		owned := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
		draw.Draw(owned, owned.Bounds(), mask, maskp, draw.Src)
		glyphs = append(glyphs, Glyph{Rune: ch, Bounds: dr, mask: owned})
	}
	return glyphs
}

func (r *Rasterizer) VerticalMetrics() VerticalMetrics {
	m := r.face.Metrics()
	return VerticalMetrics{Ascent: fromFixed(m.Ascent), Descent: fromFixed(m.Descent)}
}

// IsMonospaced reports whether every rune of sample that the face knows has
// the same advance. The clock layout assumes it does.
func (r *Rasterizer) IsMonospaced(sample string) bool {
	var want fixed.Int26_6
	seen := false
	for _, ch := range sample {
		adv, ok := r.face.GlyphAdvance(ch)
		if !ok {
			continue
		}
		if !seen {
			want, seen = adv, true
			continue
		}
		if adv != want {
			return false
		}
	}
	return true
}

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }

func fromFixed(v fixed.Int26_6) float64 { return float64(v) / 64 }
