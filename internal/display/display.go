package display

import (
	"errors"

	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
)

// Surface is where frames end up: a desktop window, the Linux framebuffer,
// or nothing at all.
type Surface interface {
	input.State

	// Size is the current drawable size in pixels.
	Size() (width, height int)
	// IsOpen is false once the user closed the surface.
	IsOpen() bool
	// Present shows buf. An error means the surface rejected the frame.
	Present(buf *render.PixelBuffer) error
	Close() error
}

// Driver is implemented by surfaces that own the frame loop themselves and
// call step once per frame at fps. Drive returns when step returns ErrStop
// (with a nil error) or any other error.
type Driver interface {
	Drive(fps int, step func() error) error
}

// Logger is the component-tagged logger used across the app.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// ErrStop ends a driven loop without an error.
var ErrStop = errors.New("display: stop")
