package render

import "image/color"

// Render tuning shared by the rasterizer and compositor.
const (
	// CoverageEpsilon is the smallest coverage that is blended at all.
	// Anything fainter leaves the destination untouched.
	CoverageEpsilon = 0.01

	// DPI used when building font faces; at 72 DPI a point is a pixel,
	// so a face of size 80 is 80 pixels per em.
	DPI = 72
)

// Color is a packed 0xRRGGBB value, the same layout as the pixel buffer.
type Color uint32

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color with an opaque alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}.RGBA()
}

// ColorFrom packs any color.Color, dropping alpha.
func ColorFrom(c color.Color) Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return RGB(rgba.R, rgba.G, rgba.B)
}
