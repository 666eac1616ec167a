package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/rook-computer/clock/internal/app"
	"github.com/rook-computer/clock/internal/config"
	"github.com/rook-computer/clock/internal/display"
	"github.com/rook-computer/clock/internal/state"
	"github.com/rook-computer/clock/internal/system"
)

// version and author are overridden at build time with
// -ldflags "-X main.version=... -X main.author=...".
var (
	version = "0.1.0"
	author  = "Emanuel (evilenx)"
)

const (
	name        = "clock"
	windowTitle = "Clock - ESC to exit"

	// EnvStdioLog redirects stdout and stderr like --stdio-log.
	EnvStdioLog = "CLOCK_STDIO_LOG"
)

type options struct {
	Help    bool `short:"h" long:"help" description:"show this help"`
	Version bool `short:"v" long:"version" description:"show version"`

	Config   string `long:"config" value-name:"PATH" description:"config file; also configurable via CLOCK_CONFIG"`
	Surface  string `long:"surface" choice:"window" choice:"fbdev" choice:"headless" default:"window" description:"where to draw"`
	FBDevice string `long:"fb-device" value-name:"PATH" default:"/dev/fb0" description:"framebuffer device for --surface=fbdev"`
	FBScale  int    `long:"fb-scale" value-name:"N" default:"1" description:"render at 1/N of the framebuffer resolution"`
	Frames   int    `long:"frames" value-name:"N" default:"0" description:"headless: stop after N frames (0 = until interrupted)"`
	Debug    bool   `long:"debug" description:"log frame heartbeats, also to ./clock-debug.log"`
	StdioLog string `long:"stdio-log" value-name:"PATH" description:"redirect stdout+stderr (including panics) to this file; also configurable via CLOCK_STDIO_LOG"`
}

const helpFooter = `
Controls:
    ESC              exit program
    B                cycle background colors
    F                cycle font colors

Configuration file: ~/.config/big_clock/config.toml
Example:
    [settings]
    font_size = 80
    padding = 20.0
    auto_resize = true
`

func main() {
	opts, code, done := parseArgs(os.Args[1:], os.Stdout, os.Stderr)
	if done {
		os.Exit(code)
	}
	os.Exit(launch(opts))
}

func newParser(opts *options) *flags.Parser {
	parser := flags.NewParser(opts, flags.PassDoubleDash)
	parser.Name = name
	parser.Usage = "[options]"
	return parser
}

// parseArgs handles everything that ends the program before a window opens.
// done reports whether the caller should exit with code.
func parseArgs(argv []string, stdout, stderr io.Writer) (opts options, code int, done bool) {
	parser := newParser(&opts)
	rest, err := parser.ParseArgs(argv)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrUnknownFlag {
			unknownOption(stderr, quotedName(flagsErr.Message))
		} else {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			fmt.Fprintf(stderr, "Try '%s --help' for more information.\n", name)
		}
		return opts, 2, true
	}
	switch {
	case opts.Help:
		parser.WriteHelp(stdout)
		fmt.Fprint(stdout, helpFooter)
		return opts, 0, true
	case opts.Version:
		fmt.Fprintf(stdout, "%s %s - by %s\n", name, version, author)
		return opts, 0, true
	case len(rest) > 0:
		unknownOption(stderr, rest[0])
		return opts, 2, true
	}
	return opts, 0, false
}

func unknownOption(w io.Writer, opt string) {
	fmt.Fprintf(w, "%s: unknown option: %s\n", name, opt)
	fmt.Fprintf(w, "Try '%s --help' for more information.\n", name)
}

// quotedName pulls x out of go-flags' "unknown flag `x'" message.
func quotedName(msg string) string {
	_, after, ok := strings.Cut(msg, "`")
	if !ok {
		return msg
	}
	flagName, _, _ := strings.Cut(after, "'")
	return flagName
}

func launch(opts options) int {
	// Best-effort: send all output, including panic traces, to a file so
	// crashes stay diagnosable when the console is in graphics mode.
	logPath := opts.StdioLog
	if logPath == "" {
		logPath = os.Getenv(EnvStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stdio log redirect error:", err)
		}
	}

	var out io.Writer = os.Stderr
	if opts.Debug {
		f, err := os.OpenFile("./clock-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			out = io.MultiWriter(os.Stderr, f)
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}
	logger := app.NewFileLogger(out)

	configPath := opts.Config
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings := config.Load(configPath, logger)
	st := app.Bootstrap(settings, system.SystemFonts(), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	surface, err := openSurface(ctx, opts, st, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	defer surface.Close()

	a := app.New(st, surface)
	a.Logger = logger
	a.Debug = opts.Debug
	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	return 0
}

func openSurface(ctx context.Context, opts options, st *state.RenderState, logger app.Logger) (display.Surface, error) {
	switch opts.Surface {
	case "fbdev":
		return display.OpenFramebuffer(ctx, opts.FBDevice, opts.FBScale, logger)
	case "headless":
		h := display.NewHeadless(st.Buffer.Width, st.Buffer.Height)
		h.MaxFrames = opts.Frames
		return h, nil
	default:
		return display.NewWindow(windowTitle, st.Buffer.Width, st.Buffer.Height), nil
	}
}
