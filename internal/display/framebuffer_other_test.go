//go:build !linux || !cgo

package display

import (
	"context"
	"errors"
	"testing"
)

func TestOpenFramebufferUnavailable(t *testing.T) {
	fb, err := OpenFramebuffer(context.Background(), DefaultFramebufferDevice, 1, nil)
	if !errors.Is(err, errNoFramebuffer) || fb != nil {
		t.Fatalf("OpenFramebuffer = (%v, %v), want errNoFramebuffer", fb, err)
	}
}
