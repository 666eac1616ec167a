package render

import (
	"image"
	"image/color"
)

// PixelBuffer is a row-major buffer of packed 0xRRGGBB pixels.
// len(Pix) == Width*Height holds after every constructor and Resize call.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{Width: width, Height: height, Pix: make([]uint32, width*height)}
}

// Resize reallocates the buffer when the requested size differs from the
// current one. The new pixels are zeroed. It reports whether anything changed.
func (b *PixelBuffer) Resize(width, height int) bool {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.Width && height == b.Height && len(b.Pix) == width*height {
		return false
	}
	b.Width = width
	b.Height = height
	b.Pix = make([]uint32, width*height)
	return true
}

// Fill paints every pixel with c.
func (b *PixelBuffer) Fill(c Color) {
	v := uint32(c)
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Contains reports whether (x, y) lies inside the buffer.
func (b *PixelBuffer) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Pixel returns the packed value at (x, y), or 0 outside the buffer.
func (b *PixelBuffer) Pixel(x, y int) Color {
	if !b.Contains(x, y) {
		return 0
	}
	return Color(b.Pix[y*b.Width+x])
}

// SetPixel writes c at (x, y); writes outside the buffer are dropped.
func (b *PixelBuffer) SetPixel(x, y int, c Color) {
	if !b.Contains(x, y) {
		return
	}
	b.Pix[y*b.Width+x] = uint32(c)
}

// image.Image / draw.Image so surfaces can hand the buffer to x/image/draw.

func (b *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }

func (b *PixelBuffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.Width, b.Height) }

func (b *PixelBuffer) At(x, y int) color.Color {
	c := b.Pixel(x, y)
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

func (b *PixelBuffer) Set(x, y int, c color.Color) { b.SetPixel(x, y, ColorFrom(c)) }

// RGBA8 writes the buffer as RGBA bytes into dst, growing it when needed,
// and returns the filled slice.
func (b *PixelBuffer) RGBA8(dst []byte) []byte {
	n := len(b.Pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range b.Pix {
		j := i * 4
		dst[j+0] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
		dst[j+3] = 0xFF
	}
	return dst
}
