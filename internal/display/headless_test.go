package display

import (
	"errors"
	"testing"

	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/render"
)

var _ Surface = (*Headless)(nil)
var _ Surface = (*Window)(nil)
var _ Surface = (*Framebuffer)(nil)

func TestHeadlessPresentCopiesFrame(t *testing.T) {
	h := NewHeadless(2, 1)
	buf := render.NewPixelBuffer(2, 1)
	buf.Fill(0x445566)
	if err := h.Present(buf); err != nil {
		t.Fatal(err)
	}
	buf.Fill(0)
	if h.Last[0] != 0x445566 || h.Presented != 1 {
		t.Fatalf("presented frame not kept: %#x (%d presents)", h.Last[0], h.Presented)
	}
}

func TestHeadlessClosesAfterMaxFrames(t *testing.T) {
	h := NewHeadless(1, 1)
	h.MaxFrames = 2
	buf := render.NewPixelBuffer(1, 1)
	for i := 0; i < 2; i++ {
		if !h.IsOpen() {
			t.Fatalf("closed early after %d frames", i)
		}
		_ = h.Present(buf)
	}
	if h.IsOpen() {
		t.Fatal("still open after MaxFrames")
	}
}

func TestHeadlessKeysAndErrors(t *testing.T) {
	h := NewHeadless(1, 1)
	h.Keys[input.KeyEscape] = true
	if !h.IsKeyDown(input.KeyEscape) || h.IsKeyDown(input.KeyForeground) {
		t.Fatal("key state not reported")
	}
	boom := errors.New("boom")
	h.PresentErr = boom
	if err := h.Present(render.NewPixelBuffer(1, 1)); !errors.Is(err, boom) {
		t.Fatalf("Present error = %v", err)
	}
}
