package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rook-computer/clock/internal/render/layout"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "CLOCK_CONFIG"

	DefaultFontSize   = 80
	DefaultPadding    = 20.0
	DefaultAutoResize = true

	// MaxFontSize is the largest accepted font_size. A bigger glyph cannot
	// fit the tallest window InitialWindowSize produces.
	MaxFontSize = layout.MaxWindowHeight
)

// Settings is the render configuration. It is read once at startup.
type Settings struct {
	FontSize   float64
	Padding    float64
	AutoResize bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{FontSize: DefaultFontSize, Padding: DefaultPadding, AutoResize: DefaultAutoResize}
}

// ErrNotFound is returned by Read when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// DefaultPath is $HOME/.config/big_clock/config.toml, or the value of
// CLOCK_CONFIG when set. Without HOME it is relative to the working directory.
func DefaultPath() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p
	}
	home := os.Getenv("HOME")
	if home == "" {
		home = "."
	}
	return filepath.Join(home, ".config", "big_clock", "config.toml")
}

// Load reads settings from path and never fails: a missing or malformed file
// logs one diagnostic and yields Defaults.
func Load(path string, l logger) Settings {
	s, err := Read(path)
	if err == nil {
		return s
	}
	if l != nil {
		if errors.Is(err, ErrNotFound) {
			l.Infof("config", "config not found at %s, using defaults", path)
		} else {
			l.Errorf("config", "error reading config, using defaults: %v", err)
		}
	}
	return Defaults()
}

// Read parses the file at path. YAML is used for .yaml/.yml files, TOML for
// everything else.
func Read(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return Settings{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data, formatOf(path))
}

// Format selects the decoder.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Parse decodes data and applies per-field defaults. font_size is required.
func Parse(data []byte, format Format) (Settings, error) {
	var doc map[string]interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Settings{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return Settings{}, fmt.Errorf("failed to parse toml: %w", err)
		}
	}
	section, ok := doc["settings"].(map[string]interface{})
	if !ok {
		return Settings{}, errors.New("missing [settings] section")
	}

	s := Defaults()
	raw, ok := section["font_size"]
	if !ok {
		return Settings{}, errors.New("settings.font_size is required")
	}
	if s.FontSize, ok = toFloat(raw); !ok {
		return Settings{}, fmt.Errorf("settings.font_size must be a number (got %T)", raw)
	}
	if raw, ok := section["padding"]; ok {
		if s.Padding, ok = toFloat(raw); !ok {
			return Settings{}, fmt.Errorf("settings.padding must be a number (got %T)", raw)
		}
	}
	if raw, ok := section["auto_resize"]; ok {
		if s.AutoResize, ok = raw.(bool); !ok {
			return Settings{}, fmt.Errorf("settings.auto_resize must be a boolean (got %T)", raw)
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// toFloat accepts the integer and float types both decoders produce.
func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}

func (s Settings) Validate() error {
	if math.IsNaN(s.FontSize) || math.IsInf(s.FontSize, 0) {
		return fmt.Errorf("settings.font_size must be finite (got %v)", s.FontSize)
	}
	if !(s.FontSize > 0) || s.FontSize > MaxFontSize {
		return fmt.Errorf("settings.font_size must be in (0, %d] (got %v)", MaxFontSize, s.FontSize)
	}
	if math.IsNaN(s.Padding) || math.IsInf(s.Padding, 0) {
		return fmt.Errorf("settings.padding must be finite (got %v)", s.Padding)
	}
	if s.Padding < 0 {
		return fmt.Errorf("settings.padding must not be negative (got %v)", s.Padding)
	}
	return nil
}
