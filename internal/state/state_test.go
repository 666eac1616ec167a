package state

import (
	"testing"

	"github.com/rook-computer/clock/internal/config"
	"github.com/rook-computer/clock/internal/render"
	"github.com/rook-computer/clock/internal/theme"
)

func TestDrawCentersText(t *testing.T) {
	settings := config.Defaults()
	font := render.LoadFont(nil, settings.FontSize, nil)
	s := New(settings, font, theme.Default(), 664, 350)
	s.Draw("12:34:56.789")

	minX, maxX, minY, maxY := s.Buffer.Width, -1, s.Buffer.Height, -1
	for y := 0; y < s.Buffer.Height; y++ {
		for x := 0; x < s.Buffer.Width; x++ {
			if s.Buffer.Pixel(x, y) == 0x000000 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		t.Fatal("nothing was drawn")
	}
	if c := (minX + maxX) / 2; c < 332-40 || c > 332+40 {
		t.Fatalf("ink spans x %d..%d, center %d too far from 332", minX, maxX, c)
	}
	if c := (minY + maxY) / 2; c < 175-40 || c > 175+40 {
		t.Fatalf("ink spans y %d..%d, center %d too far from 175", minY, maxY, c)
	}
}

func TestDrawUsesTheme(t *testing.T) {
	settings := config.Defaults()
	palette := theme.New([]render.Color{0x112233}, []render.Color{0xEEDDCC})
	s := New(settings, render.LoadFont(nil, settings.FontSize, nil), palette, 400, 350)
	s.Draw("00:00:00.000")

	if got := s.Buffer.Pixel(0, 0); got != 0x112233 {
		t.Fatalf("corner = %#06x, want background", uint32(got))
	}
	found := false
	for _, p := range s.Buffer.Pix {
		if render.Color(p) == 0xEEDDCC {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("no fully covered foreground pixel")
	}
}

func TestPhaseString(t *testing.T) {
	if Running.String() != "running" || Exiting.String() != "exiting" || Phase(9).String() != "unknown" {
		t.Fatal("unexpected phase names")
	}
}
