package state

import (
	"github.com/rook-computer/clock/internal/config"
	"github.com/rook-computer/clock/internal/render"
	"github.com/rook-computer/clock/internal/render/layout"
	"github.com/rook-computer/clock/internal/theme"
)

type Phase int

const (
	Running Phase = iota
	Exiting
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Exiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// RenderState is everything one frame needs. It is created once at startup
// and passed by pointer into every frame step; nothing else holds on to it.
type RenderState struct {
	Phase    Phase
	Settings config.Settings
	Font     *render.Rasterizer
	Layout   layout.Engine
	Theme    *theme.Cycler
	Buffer   *render.PixelBuffer

	// Frames counts completed frame steps.
	Frames uint64
}

// New builds the state for a window of width x height.
func New(settings config.Settings, font *render.Rasterizer, palette *theme.Palette, width, height int) *RenderState {
	return &RenderState{
		Phase:    Running,
		Settings: settings,
		Font:     font,
		Layout:   layout.Engine{Scale: settings.FontSize},
		Theme:    theme.NewCycler(palette),
		Buffer:   render.NewPixelBuffer(width, height),
	}
}

// Draw renders text centered into the buffer with the current theme.
func (s *RenderState) Draw(text string) {
	palette := s.Theme.Palette
	bg, fg := palette.Background(), palette.Foreground()
	s.Buffer.Fill(bg)
	x, y := s.Layout.Origin(text, s.Buffer.Width, s.Buffer.Height, s.Font.VerticalMetrics().Ascent)
	render.DrawGlyphs(s.Buffer, s.Font.Layout(text, x, y), fg, bg)
}
