//go:build linux && cgo

package display

import (
	"context"
	"errors"
	"fmt"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
	"github.com/rook-computer/clock/internal/system"
	xdraw "golang.org/x/image/draw"
)

// DefaultFramebufferDevice is the primary Linux framebuffer.
const DefaultFramebufferDevice = "/dev/fb0"

// Framebuffer draws straight to a Linux framebuffer device and reads keys
// from evdev. With Scale > 1 the clock renders at a fraction of the device
// resolution and is scaled up on present.
type Framebuffer struct {
	dev    *fb.Device
	keys   *system.Keyboard
	scale  int
	logger Logger
	cancel context.CancelFunc
	closed bool
}

// OpenFramebuffer opens path, switches the console to graphics mode and
// starts the keyboard readers. The keyboard stops when ctx ends or on Close.
func OpenFramebuffer(ctx context.Context, path string, scale int, logger Logger) (*Framebuffer, error) {
	if path == "" {
		path = DefaultFramebufferDevice
	}
	if scale < 1 {
		scale = 1
	}
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	if dev.Bounds().Dx() < scale || dev.Bounds().Dy() < scale {
		dev.Close()
		return nil, errors.New("framebuffer is smaller than the scale factor")
	}
	if logger != nil {
		b := dev.Bounds()
		logger.Infof("fb", "framebuffer open, bounds=%dx%d scale=%d", b.Dx(), b.Dy(), scale)
	}
	system.EnterGraphics(logger)

	keyCtx, cancel := context.WithCancel(ctx)
	return &Framebuffer{
		dev:    dev,
		keys:   system.StartKeyboard(keyCtx, logger),
		scale:  scale,
		logger: logger,
		cancel: cancel,
	}, nil
}

func (f *Framebuffer) Size() (int, int) {
	b := f.dev.Bounds()
	return b.Dx() / f.scale, b.Dy() / f.scale
}

func (f *Framebuffer) IsOpen() bool { return !f.closed }

func (f *Framebuffer) IsKeyDown(k input.Key) bool { return f.keys.IsKeyDown(k) }

// Present scales buf onto the whole device with nearest-neighbor sampling.
func (f *Framebuffer) Present(buf *render.PixelBuffer) error {
	if f.closed {
		return errors.New("framebuffer closed")
	}
	if buf.Width == 0 || buf.Height == 0 {
		return nil
	}
	xdraw.NearestNeighbor.Scale(f.dev, f.dev.Bounds(), buf, buf.Bounds(), xdraw.Src, nil)
	return nil
}

func (f *Framebuffer) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.cancel()
	system.LeaveGraphics(f.logger)
	f.dev.Close()
	return nil
}
