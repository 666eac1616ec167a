package display

import (
	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
)

// Headless is an in-memory surface. It keeps a copy of the last presented
// frame and lets callers script size changes, key state and closing.
type Headless struct {
	Width  int
	Height int
	Keys   input.Set

	// MaxFrames closes the surface after that many presents (0 = never).
	MaxFrames int
	// PresentErr is returned by Present when set.
	PresentErr error

	Presented int
	Last      []uint32

	closed bool
}

func NewHeadless(width, height int) *Headless {
	return &Headless{Width: width, Height: height, Keys: input.Set{}}
}

func (h *Headless) Size() (int, int) { return h.Width, h.Height }

func (h *Headless) IsOpen() bool { return !h.closed }

func (h *Headless) IsKeyDown(k input.Key) bool { return h.Keys[k] }

func (h *Headless) Present(buf *render.PixelBuffer) error {
	if h.PresentErr != nil {
		return h.PresentErr
	}
	h.Last = append(h.Last[:0], buf.Pix...)
	h.Presented++
	if h.MaxFrames > 0 && h.Presented >= h.MaxFrames {
		h.closed = true
	}
	return nil
}

func (h *Headless) Close() error {
	h.closed = true
	return nil
}
