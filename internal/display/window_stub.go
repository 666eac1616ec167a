//go:build !cgo

package display

import (
	"errors"

	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
)

var errNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

// Window is unavailable without cgo; Drive always fails.
type Window struct {
	width  int
	height int
}

func NewWindow(_ string, width, height int) *Window {
	return &Window{width: width, height: height}
}

func (w *Window) Size() (int, int)                  { return w.width, w.height }
func (w *Window) IsOpen() bool                      { return false }
func (w *Window) IsKeyDown(input.Key) bool          { return false }
func (w *Window) Present(*render.PixelBuffer) error { return errNoWindow }
func (w *Window) Close() error                      { return nil }
func (w *Window) Drive(int, func() error) error     { return errNoWindow }
