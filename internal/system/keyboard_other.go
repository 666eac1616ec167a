//go:build !linux

package system

import (
	"context"

	"github.com/rook-computer/clock/internal/input"
)

// Keyboard is only backed by evdev on Linux; elsewhere no key is ever down.
type Keyboard struct{}

func (k *Keyboard) IsKeyDown(input.Key) bool { return false }

func StartKeyboard(_ context.Context, l logger) *Keyboard {
	if l != nil {
		l.Infof("input", "evdev keyboard is only available on linux")
	}
	return &Keyboard{}
}
