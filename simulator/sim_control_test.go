package main

import (
	"testing"
	"time"

	"github.com/rook-computer/clock/internal/config"
	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
	"github.com/rook-computer/clock/internal/state"
	"github.com/rook-computer/clock/internal/theme"
	"golang.org/x/image/font/basicfont"
)

func newControl(t *testing.T) *SimControl {
	t.Helper()
	font := render.NewRasterizer(basicfont.Face7x13)
	st := state.New(config.Defaults(), font, theme.Default(), 120, 40)
	at := time.Date(2024, 1, 1, 12, 34, 56, 789e6, time.UTC)
	return NewSimControl(st, 120, 40, at, nil)
}

func TestPressCyclesOncePerPress(t *testing.T) {
	c := newControl(t)
	if err := c.PressN(input.KeyBackground, 2); err != nil {
		t.Fatalf("PressN: %v", err)
	}
	if err := c.Press(input.KeyForeground); err != nil {
		t.Fatalf("Press: %v", err)
	}
	bg, fg := c.State().Theme.Palette.Indices()
	if bg != 2 || fg != 1 {
		t.Fatalf("indices = (%d,%d), want (2,1)", bg, fg)
	}
	if c.Presented() != 6 {
		t.Fatalf("presented %d frames, want 6", c.Presented())
	}
}

func TestFrameUsesResizedSurface(t *testing.T) {
	c := newControl(t)
	c.Resize(200, 60)
	if err := c.Frame(); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	buf := c.State().Buffer
	if buf.Width != 200 || buf.Height != 60 {
		t.Fatalf("buffer = %dx%d, want 200x60", buf.Width, buf.Height)
	}
}

func TestRunAppliesScript(t *testing.T) {
	c := newControl(t)
	if err := run(c, options{BG: 1, FG: 3}); err != nil {
		t.Fatalf("run: %v", err)
	}
	bg, fg := c.State().Theme.Palette.Indices()
	if bg != 1 || fg != 3 {
		t.Fatalf("indices = (%d,%d), want (1,3)", bg, fg)
	}
	if c.Presented() != 9 {
		t.Fatalf("presented %d frames, want 9", c.Presented())
	}
}
