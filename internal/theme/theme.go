package theme

import (
	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
)

// Built-in palettes. Index 0 of each is the startup theme: white on black.
var (
	DefaultBackgrounds = []render.Color{
		0x000000, // black
		0x101820, // ink
		0x002b36, // solarized base03
		0xFFDC00, // yellow
		0xFFFFFF, // white
		0x1B3A1B, // dark green
	}
	DefaultForegrounds = []render.Color{
		0xFFFFFF, // white
		0x9000FF, // purple
		0x33FF66, // phosphor green
		0xFFB000, // amber
		0x00D7FF, // cyan
		0x000000, // black
	}
)

// Palette holds the background and foreground sequences and the current
// index into each. Indices always stay in range.
type Palette struct {
	Backgrounds []render.Color
	Foregrounds []render.Color

	bg int
	fg int
}

// Default returns a palette over the built-in color lists.
func Default() *Palette {
	return New(DefaultBackgrounds, DefaultForegrounds)
}

// New builds a palette. Empty sequences fall back to black and white so that
// every palette has at least one color.
func New(backgrounds, foregrounds []render.Color) *Palette {
	if len(backgrounds) == 0 {
		backgrounds = []render.Color{0x000000}
	}
	if len(foregrounds) == 0 {
		foregrounds = []render.Color{0xFFFFFF}
	}
	return &Palette{Backgrounds: backgrounds, Foregrounds: foregrounds}
}

func (p *Palette) Background() render.Color { return p.Backgrounds[p.bg] }
func (p *Palette) Foreground() render.Color { return p.Foregrounds[p.fg] }

// Indices returns the current background and foreground indices.
func (p *Palette) Indices() (bg, fg int) { return p.bg, p.fg }

func (p *Palette) CycleBackground() { p.bg = (p.bg + 1) % len(p.Backgrounds) }
func (p *Palette) CycleForeground() { p.fg = (p.fg + 1) % len(p.Foregrounds) }

// Cycler advances the palette on key presses. A key has to be released
// before it can advance its palette again.
type Cycler struct {
	Palette *Palette
	edges   input.Edges
}

func NewCycler(p *Palette) *Cycler { return &Cycler{Palette: p} }

// Tick samples the keys once and reports whether the palette changed.
func (c *Cycler) Tick(keys input.State) bool {
	c.edges.Update(keys)
	changed := false
	if c.edges.Pressed(input.KeyBackground) {
		c.Palette.CycleBackground()
		changed = true
	}
	if c.edges.Pressed(input.KeyForeground) {
		c.Palette.CycleForeground()
		changed = true
	}
	return changed
}

// Down is the level state from the last Tick.
func (c *Cycler) Down(k input.Key) bool { return c.edges.Down(k) }
