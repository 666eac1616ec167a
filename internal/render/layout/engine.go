package layout

import (
	"image"
	"math"
	"unicode/utf8"
)

const (
	// CharWidthFactor is the assumed advance of one character as a fraction
	// of the font scale. Tuned for monospaced digits; it is not measured.
	CharWidthFactor = 0.65

	// ClockChars is the length of an HH:MM:SS.mmm string.
	ClockChars = 12

	// LineHeightFactor sizes the window height relative to the font scale.
	LineHeightFactor = 1.2
)

// Window size clamps applied when auto-resize is on.
const (
	MinWindowWidth  = 250
	MaxWindowWidth  = 720
	MinWindowHeight = 350
	MaxWindowHeight = 1080

	// FixedWindowWidth and FixedWindowHeight are used when auto-resize is off.
	FixedWindowWidth  = 800
	FixedWindowHeight = 200
)

// FixedTextWidth is the nominal width of chars characters at scale,
// independent of the glyphs actually drawn.
func FixedTextWidth(scale float64, chars int) float64 {
	return scale * CharWidthFactor * float64(chars)
}

// Engine positions a single line of text inside a buffer.
//
// Horizontal placement uses the fixed nominal width instead of the measured
// glyph run, so a clock whose digits change every frame does not shift
// sideways. Vertical placement centers the baseline using the ascent only,
// so descenders appearing or disappearing don't move the line. Both assume
// a monospaced font; proportional fonts drift slightly off center.
type Engine struct {
	Scale float64
}

// Origin returns the baseline origin for text in a width x height buffer.
func (e Engine) Origin(text string, width, height int, ascent float64) (x, y float64) {
	textWidth := FixedTextWidth(e.Scale, utf8.RuneCountInString(text))
	x = math.Max(0, (float64(width)-textWidth)/2)
	y = float64(height)/2 + ascent/2
	return x, y
}

// ContentRect is the area left for text once padding is removed.
func (e Engine) ContentRect(width, height int, padding float64) image.Rectangle {
	return Inset(image.Rect(0, 0, width, height), int(math.Round(padding)))
}

// InitialWindowSize derives the window size from the font scale and padding.
// With autoResize off it returns the fixed default size.
func InitialWindowSize(fontSize, padding float64, autoResize bool) (width, height int) {
	if !autoResize {
		return FixedWindowWidth, FixedWindowHeight
	}
	width = int(FixedTextWidth(fontSize, ClockChars) + padding*2)
	height = int(fontSize*LineHeightFactor + padding*2)
	return clamp(width, MinWindowWidth, MaxWindowWidth), clamp(height, MinWindowHeight, MaxWindowHeight)
}
