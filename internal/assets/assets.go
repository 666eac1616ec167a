package assets

import "golang.org/x/image/font/gofont/gomono"

// FallbackFont is the monospaced font used when no system font can be loaded.
// It ships inside the binary, so rendering always has a font.
var FallbackFont = gomono.TTF

const FallbackFontName = "Go Mono (embedded)"
