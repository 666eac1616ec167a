package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/clock/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Logger is the component-tagged logger used across the app.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Typeface is a parsed font file that can produce faces at any size.
type Typeface struct {
	Name string
	otf  *opentype.Font
	ttf  *truetype.Font
}

// ParseTypeface accepts OpenType/TrueType files and the first face of a
// collection. The freetype parser is tried last for files the sfnt parser
// rejects.
func ParseTypeface(name string, data []byte) (*Typeface, error) {
	otf, err := opentype.Parse(data)
	if err == nil {
		return &Typeface{Name: name, otf: otf}, nil
	}
	firstErr := err

	if coll, cerr := opentype.ParseCollection(data); cerr == nil && coll.NumFonts() > 0 {
		if otf, ferr := coll.Font(0); ferr == nil {
			return &Typeface{Name: name, otf: otf}, nil
		}
	}

	if ttf, terr := truetype.Parse(data); terr == nil {
		return &Typeface{Name: name, ttf: ttf}, nil
	}
	return nil, fmt.Errorf("parse font %s: %w", name, firstErr)
}

// Face builds a face with a uniform pixel scale of size.
func (t *Typeface) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}
	if t.otf != nil {
		return opentype.NewFace(t.otf, &opentype.FaceOptions{Size: size, DPI: DPI, Hinting: font.HintingFull})
	}
	if t.ttf != nil {
		return truetype.NewFace(t.ttf, &truetype.Options{Size: size, DPI: DPI, Hinting: font.HintingFull}), nil
	}
	return nil, errors.New("typeface has no parsed font")
}

// LoadFont returns a rasterizer for the first path that exists, reads and
// parses. When none does it uses the embedded fallback font, and if even that
// fails, the fixed 7x13 bitmap face. It never returns nil.
func LoadFont(paths []string, size float64, logger Logger) *Rasterizer {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) && logger != nil {
				logger.Errorf("font", "error reading font %s: %v", path, err)
			}
			continue
		}
		r, err := rasterizerFromBytes(path, data, size)
		if err != nil {
			if logger != nil {
				logger.Errorf("font", "%v", err)
			}
			continue
		}
		if logger != nil {
			logger.Infof("font", "using font: %s", path)
		}
		return r
	}

	if logger != nil {
		logger.Infof("font", "no system font found, using default font")
	}
	r, err := rasterizerFromBytes(assets.FallbackFontName, assets.FallbackFont, size)
	if err == nil {
		return r
	}
	if logger != nil {
		logger.Errorf("font", "default font failed, using basicfont: %v", err)
	}
	return &Rasterizer{face: basicfont.Face7x13, name: "basicfont"}
}

func rasterizerFromBytes(name string, data []byte, size float64) (*Rasterizer, error) {
	tf, err := ParseTypeface(name, data)
	if err != nil {
		return nil, err
	}
	face, err := tf.Face(size)
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", name, err)
	}
	return &Rasterizer{face: face, name: name}, nil
}
