package system

import "runtime"

// Platform font files tried in order. Monospaced faces come first because
// the clock layout assumes fixed-width digits.
var (
	windowsFonts = []string{
		`C:\Windows\Fonts\consola.ttf`,
		`C:\Windows\Fonts\arial.ttf`,
		`C:\Windows\Fonts\calibri.ttf`,
		`C:\Windows\Fonts\cour.ttf`,
	}
	darwinFonts = []string{
		"/System/Library/Fonts/Monaco.ttf",
		"/System/Library/Fonts/Helvetica.ttc",
		"/System/Library/Fonts/Arial.ttf",
		"/System/Library/Fonts/Courier.ttc",
	}
	unixFonts = []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		"/usr/share/fonts/droid/DroidSansMono.ttf",
		"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
		"/usr/share/fonts/liberation/LiberationMono-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
		"/usr/share/fonts/truetype/ubuntu/UbuntuMono-R.ttf",
	}
)

// FontCandidates lists the conventional font paths for goos.
func FontCandidates(goos string) []string {
	var paths []string
	switch goos {
	case "windows":
		paths = windowsFonts
	case "darwin":
		paths = darwinFonts
	default:
		paths = unixFonts
	}
	return append([]string(nil), paths...)
}

// SystemFonts is FontCandidates for the running platform.
func SystemFonts() []string { return FontCandidates(runtime.GOOS) }
