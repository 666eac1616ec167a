package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseArgsHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	_, code, done := parseArgs([]string{"--help"}, &out, &errOut)
	if !done || code != 0 {
		t.Fatalf("done=%v code=%d, want done with 0", done, code)
	}
	for _, want := range []string{"Usage:", "--config", "Controls:", "ESC", "[settings]", "font_size = 80"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help output missing %q", want)
		}
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}
}

func TestParseArgsVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	_, code, done := parseArgs([]string{"-v"}, &out, &errOut)
	if !done || code != 0 {
		t.Fatalf("done=%v code=%d, want done with 0", done, code)
	}
	if got, want := out.String(), "clock "+version+" - by "+author+"\n"; got != want {
		t.Fatalf("version output = %q, want %q", got, want)
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	_, code, done := parseArgs([]string{"--bogus"}, &out, &errOut)
	if !done || code != 2 {
		t.Fatalf("done=%v code=%d, want done with 2", done, code)
	}
	want := "clock: unknown option: bogus\nTry 'clock --help' for more information.\n"
	if errOut.String() != want {
		t.Fatalf("stderr = %q, want %q", errOut.String(), want)
	}
}

func TestParseArgsPositional(t *testing.T) {
	var out, errOut bytes.Buffer
	_, code, done := parseArgs([]string{"now"}, &out, &errOut)
	if !done || code != 2 {
		t.Fatalf("done=%v code=%d, want done with 2", done, code)
	}
	if !strings.HasPrefix(errOut.String(), "clock: unknown option: now\n") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestParseArgsInvalidSurface(t *testing.T) {
	var out, errOut bytes.Buffer
	_, code, done := parseArgs([]string{"--surface", "tv"}, &out, &errOut)
	if !done || code != 2 {
		t.Fatalf("done=%v code=%d, want done with 2", done, code)
	}
	if !strings.Contains(errOut.String(), "Try 'clock --help'") {
		t.Fatalf("stderr = %q", errOut.String())
	}
}

func TestParseArgsDefaults(t *testing.T) {
	var out, errOut bytes.Buffer
	opts, code, done := parseArgs(nil, &out, &errOut)
	if done || code != 0 {
		t.Fatalf("done=%v code=%d, want to continue", done, code)
	}
	if opts.Surface != "window" || opts.FBDevice != "/dev/fb0" || opts.FBScale != 1 || opts.Frames != 0 {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestQuotedName(t *testing.T) {
	cases := map[string]string{
		"unknown flag `x'":     "x",
		"unknown flag `bogus'": "bogus",
		"something else":       "something else",
	}
	for in, want := range cases {
		if got := quotedName(in); got != want {
			t.Errorf("quotedName(%q) = %q, want %q", in, got, want)
		}
	}
}
