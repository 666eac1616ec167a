package main

import (
	"fmt"
	"time"

	"github.com/rook-computer/clock/internal/app"
	"github.com/rook-computer/clock/internal/display"
	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/state"
)

// SimControl drives the clock on a headless surface with a frozen time and
// scripted key presses.
type SimControl struct {
	app     *app.App
	surface *display.Headless
}

func NewSimControl(st *state.RenderState, width, height int, at time.Time, logger app.Logger) *SimControl {
	surface := display.NewHeadless(width, height)
	a := app.New(st, surface)
	a.Now = func() time.Time { return at }
	if logger != nil {
		a.Logger = logger
	}
	return &SimControl{app: a, surface: surface}
}

// Frame renders one frame with the current key state.
func (c *SimControl) Frame() error {
	return c.app.Step()
}

// Press holds k for one frame and releases it on the next, which counts as a
// single press.
func (c *SimControl) Press(k input.Key) error {
	c.surface.Keys[k] = true
	if err := c.Frame(); err != nil {
		return fmt.Errorf("press %v: %w", k, err)
	}
	c.surface.Keys[k] = false
	if err := c.Frame(); err != nil {
		return fmt.Errorf("release %v: %w", k, err)
	}
	return nil
}

// PressN presses k n times.
func (c *SimControl) PressN(k input.Key, n int) error {
	for i := 0; i < n; i++ {
		if err := c.Press(k); err != nil {
			return err
		}
	}
	return nil
}

// Resize changes the surface size seen by the next frame.
func (c *SimControl) Resize(width, height int) {
	c.surface.Width, c.surface.Height = width, height
}

func (c *SimControl) State() *state.RenderState { return c.app.State }

func (c *SimControl) Presented() int { return c.surface.Presented }
