//go:build !linux || !cgo

package display

import (
	"context"
	"errors"

	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
)

const DefaultFramebufferDevice = "/dev/fb0"

var errNoFramebuffer = errors.New("framebuffer surface requires linux and cgo (build/run with CGO_ENABLED=1)")

// Framebuffer is a placeholder where the fbdev surface cannot be built.
type Framebuffer struct{}

func OpenFramebuffer(context.Context, string, int, Logger) (*Framebuffer, error) {
	return nil, errNoFramebuffer
}

func (f *Framebuffer) Size() (int, int)                  { return 0, 0 }
func (f *Framebuffer) IsOpen() bool                      { return false }
func (f *Framebuffer) IsKeyDown(input.Key) bool          { return false }
func (f *Framebuffer) Present(*render.PixelBuffer) error { return errNoFramebuffer }
func (f *Framebuffer) Close() error                      { return nil }
