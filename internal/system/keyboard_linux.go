//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rook-computer/clock/internal/input"
	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc = 1
	keyF   = 33
	keyB   = 48
)

var evdevKeys = map[uint16]input.Key{
	keyEsc: input.KeyEscape,
	keyB:   input.KeyBackground,
	keyF:   input.KeyForeground,
}

// Keyboard tracks which clock keys are held, fed by every evdev device under
// /dev/input/event*. Readers only flip flags; the frame loop samples them.
type Keyboard struct {
	down [3]atomic.Bool
}

// IsKeyDown reports the last state seen for k.
func (k *Keyboard) IsKeyDown(key input.Key) bool {
	if key < 0 || int(key) >= len(k.down) {
		return false
	}
	return k.down[key].Load()
}

// handle applies one input_event. Autorepeat (value 2) keeps the key down.
func (k *Keyboard) handle(typ, code uint16, value int32) {
	if typ != evKey {
		return
	}
	key, ok := evdevKeys[code]
	if !ok {
		return
	}
	k.down[key].Store(value != 0)
}

// StartKeyboard starts one reader per evdev device. It is best-effort: without
// input devices it logs and returns a keyboard that never reports a key.
func StartKeyboard(ctx context.Context, l logger) *Keyboard {
	kbd := &Keyboard{}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found, keyboard disabled")
		}
		return kbd
	}

	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := int(binary.Size(unix.Timeval{}))
	eventSize := tvSize + 2 + 2 + 4
	if eventSize <= 0 {
		eventSize = 24
	}

	for _, path := range paths {
		go kbd.read(ctx, path, tvSize, eventSize)
	}
	if l != nil {
		l.Infof("input", "reading %d evdev devices", len(paths))
	}
	return kbd
}

func (k *Keyboard) read(ctx context.Context, path string, tvSize, eventSize int) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			rec := buf[off : off+eventSize]
			typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
			code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
			value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
			k.handle(typ, code, value)
		}
	}
}
