//go:build cgo

package display

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
)

var ebitenKeys = map[input.Key]ebiten.Key{
	input.KeyEscape:     ebiten.KeyEscape,
	input.KeyBackground: ebiten.KeyB,
	input.KeyForeground: ebiten.KeyF,
}

// Window is a resizable desktop window. Its size follows the window's
// logical size, so the pixel buffer maps 1:1 onto the screen image.
type Window struct {
	title  string
	width  int
	height int

	frame       []byte
	frameWidth  int
	frameHeight int

	step   func() error
	closed bool
}

// NewWindow describes a window; nothing is opened until Drive.
func NewWindow(title string, width, height int) *Window {
	return &Window{title: title, width: width, height: height}
}

func (w *Window) Size() (int, int) { return w.width, w.height }

func (w *Window) IsOpen() bool { return !w.closed && !ebiten.IsWindowBeingClosed() }

func (w *Window) IsKeyDown(k input.Key) bool {
	key, ok := ebitenKeys[k]
	return ok && ebiten.IsKeyPressed(key)
}

// Present keeps an RGBA copy of buf for the next Draw.
func (w *Window) Present(buf *render.PixelBuffer) error {
	if len(buf.Pix) != buf.Width*buf.Height {
		return fmt.Errorf("window: buffer holds %d pixels, want %dx%d", len(buf.Pix), buf.Width, buf.Height)
	}
	w.frame = buf.RGBA8(w.frame)
	w.frameWidth, w.frameHeight = buf.Width, buf.Height
	return nil
}

func (w *Window) Close() error {
	w.closed = true
	return nil
}

// Drive opens the window and blocks until it closes. ebiten calls step at
// fps ticks per second, which caps the frame rate.
func (w *Window) Drive(fps int, step func() error) error {
	w.step = step
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(windowGame{w}); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

type windowGame struct{ w *Window }

func (g windowGame) Update() error {
	if g.w.step == nil {
		return nil
	}
	err := g.w.step()
	if errors.Is(err, ErrStop) {
		return ebiten.Termination
	}
	return err
}

func (g windowGame) Draw(screen *ebiten.Image) {
	w := g.w
	if w.frame == nil {
		return
	}
	b := screen.Bounds()
	// A resize between Update and Draw leaves the previous frame on screen.
	if b.Dx() != w.frameWidth || b.Dy() != w.frameHeight {
		return
	}
	screen.WritePixels(w.frame)
}

func (g windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w.width, g.w.height = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.w.width, g.w.height
}
