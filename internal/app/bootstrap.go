package app

import (
	"github.com/rook-computer/clock/internal/config"
	"github.com/rook-computer/clock/internal/render"
	"github.com/rook-computer/clock/internal/render/layout"
	"github.com/rook-computer/clock/internal/state"
	"github.com/rook-computer/clock/internal/theme"
)

// monospaceSample is every character a clock string can contain.
const monospaceSample = "0123456789:."

// Bootstrap loads the font and builds the render state at the initial window
// size. Font problems are logged and resolved with the fallback font.
func Bootstrap(settings config.Settings, fontPaths []string, logger Logger) *state.RenderState {
	if logger == nil {
		logger = NoopLogger{}
	}
	font := render.LoadFont(fontPaths, settings.FontSize, logger)
	if !font.IsMonospaced(monospaceSample) {
		logger.Infof("font", "%s is not monospaced, the clock may sit slightly off center", font.Name())
	}
	width, height := layout.InitialWindowSize(settings.FontSize, settings.Padding, settings.AutoResize)
	return state.New(settings, font, theme.Default(), width, height)
}
