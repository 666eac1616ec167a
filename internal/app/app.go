package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rook-computer/clock/internal/display"
	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/state"
)

const (
	// TargetFPS caps the frame loop.
	TargetFPS = 144

	// ClockLayout renders HH:MM:SS.mmm, always 12 characters.
	ClockLayout = "15:04:05.000"
)

// ClockString formats t for display.
func ClockString(t time.Time) string { return t.Format(ClockLayout) }

// App drives frames from a RenderState onto a Surface.
type App struct {
	State   *state.RenderState
	Surface display.Surface
	Logger  Logger
	Debug   bool
	FPS     int

	// Now supplies the displayed time; time.Now when nil.
	Now func() time.Time

	lastBeat   time.Time
	beatFrames uint64
}

func New(st *state.RenderState, surface display.Surface) *App {
	return &App{State: st, Surface: surface, Logger: NoopLogger{}, FPS: TargetFPS}
}

func (app *App) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *App) fps() int {
	if app.FPS <= 0 {
		return TargetFPS
	}
	return app.FPS
}

// Step runs one frame: reconcile the buffer with the surface size, sample
// keys, draw the current time and present it. It returns display.ErrStop
// once the app is exiting, and a wrapped error if the surface rejects the
// frame.
func (app *App) Step() error {
	st := app.State
	if st.Phase == state.Exiting {
		return display.ErrStop
	}
	if !app.Surface.IsOpen() {
		app.exit("surface closed")
		return display.ErrStop
	}

	width, height := app.Surface.Size()
	if st.Buffer.Resize(width, height) && app.Debug {
		app.Logger.Infof("app", "buffer resized to %dx%d, content %v", width, height,
			st.Layout.ContentRect(width, height, st.Settings.Padding))
	}

	text := ClockString(app.now())

	if st.Theme.Tick(app.Surface) && app.Debug {
		bg, fg := st.Theme.Palette.Indices()
		app.Logger.Infof("theme", "background=%d foreground=%d", bg, fg)
	}
	if st.Theme.Down(input.KeyEscape) {
		app.exit("escape pressed")
		return display.ErrStop
	}

	st.Draw(text)
	if err := app.Surface.Present(st.Buffer); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	st.Frames++
	app.heartbeat(width, height)
	return nil
}

func (app *App) exit(reason string) {
	app.State.Phase = state.Exiting
	app.Logger.Infof("app", "exiting: %s", reason)
}

func (app *App) heartbeat(width, height int) {
	if !app.Debug {
		return
	}
	now := time.Now()
	if app.lastBeat.IsZero() {
		app.lastBeat, app.beatFrames = now, app.State.Frames
		return
	}
	if now.Sub(app.lastBeat) < time.Second {
		return
	}
	app.Logger.Infof("app", "heartbeat: %d frames in %v, %dx%d",
		app.State.Frames-app.beatFrames, now.Sub(app.lastBeat).Round(time.Millisecond), width, height)
	app.lastBeat, app.beatFrames = now, app.State.Frames
}

// Run steps frames until the surface closes, Escape is pressed or ctx ends.
// Surfaces that own their loop (the window) pace the frames themselves;
// for the others a ticker at FPS is the only place the loop sleeps.
func (app *App) Run(ctx context.Context) error {
	fps := app.fps()
	w, h := app.Surface.Size()
	app.Logger.Infof("app", "running at %dx%d, %d fps", w, h, fps)

	step := func() error {
		if ctx.Err() != nil && app.State.Phase == state.Running {
			app.exit("interrupted")
		}
		return app.Step()
	}

	if d, ok := app.Surface.(display.Driver); ok {
		return d.Drive(fps, step)
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		if err := step(); err != nil {
			if errors.Is(err, display.ErrStop) {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct{ w io.Writer }

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	writeLog(l.w, "INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	writeLog(l.w, "ERROR", component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
