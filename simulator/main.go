package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/rook-computer/clock/internal/app"
	"github.com/rook-computer/clock/internal/config"
	"github.com/rook-computer/clock/internal/input"
	"github.com/rook-computer/clock/internal/system"
)

type options struct {
	Config string `long:"config" value-name:"PATH" description:"config file; also configurable via CLOCK_CONFIG"`
	At     string `long:"at" value-name:"HH:MM:SS.mmm" default:"12:34:56.789" description:"time to display"`
	Width  int    `long:"width" description:"surface width (default: initial window size)"`
	Height int    `long:"height" description:"surface height (default: initial window size)"`
	BG     int    `long:"bg" value-name:"N" description:"press B this many times"`
	FG     int    `long:"fg" value-name:"N" description:"press F this many times"`
	Out    string `short:"o" long:"out" value-name:"PATH" default:"clock.png" description:"PNG output"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "clock-sim"
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	at, err := time.Parse(app.ClockLayout, opts.At)
	if err != nil {
		fmt.Println("invalid --at:", err)
		os.Exit(2)
	}

	logger := app.NewFileLogger(os.Stderr)
	path := opts.Config
	if path == "" {
		path = config.DefaultPath()
	}
	st := app.Bootstrap(config.Load(path, logger), system.SystemFonts(), logger)

	width, height := st.Buffer.Width, st.Buffer.Height
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}

	control := NewSimControl(st, width, height, at, logger)
	if err := run(control, opts); err != nil {
		fmt.Println("simulation error:", err)
		os.Exit(1)
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		fmt.Println("output error:", err)
		os.Exit(1)
	}
	if err := png.Encode(f, control.State().Buffer); err != nil {
		_ = f.Close()
		fmt.Println("encode error:", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Println("output error:", err)
		os.Exit(1)
	}

	bg, fg := control.State().Theme.Palette.Indices()
	fmt.Printf("Wrote %s (%dx%d, background %d, foreground %d, %d frames)\n",
		opts.Out, width, height, bg, fg, control.Presented())
}

func run(c *SimControl, opts options) error {
	if err := c.PressN(input.KeyBackground, opts.BG); err != nil {
		return err
	}
	if err := c.PressN(input.KeyForeground, opts.FG); err != nil {
		return err
	}
	return c.Frame()
}
