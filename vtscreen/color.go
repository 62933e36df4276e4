// Package vtscreen is a reference vt.Screen implementation: a fixed-size
// character grid with scrollback, SGR-driven styling and an HTML
// renderer, in the spirit of terminal/screen.go and terminal/render.go.
package vtscreen

import "fmt"

// Color is a terminal color value: either one of the 256 indexed ANSI
// colors or a 24-bit RGB triple. A nil Color means "use the default".
type Color interface {
	HTMLColorCode() string
}

// ANSIColor is a palette index: the legacy 16 colors, the 6x6x6 color
// cube (16-231), or the 24-step grayscale ramp (232-255), per SGR
// 38;5;n / 48;5;n.
type ANSIColor int

var ansi16 = [16]string{
	"#000000", "#cd0000", "#00cd00", "#cdcd00",
	"#0000ee", "#cd00cd", "#00cdcd", "#e5e5e5",
	"#7f7f7f", "#ff0000", "#00ff00", "#ffff00",
	"#5c5cff", "#ff00ff", "#00ffff", "#ffffff",
}

func (c ANSIColor) HTMLColorCode() string {
	switch {
	case c >= 0 && int(c) < len(ansi16):
		return ansi16[c]
	case c >= 16 && c <= 231:
		n := int(c) - 16
		return fmt.Sprintf("#%02x%02x%02x", cubeLevel(n/36), cubeLevel((n/6)%6), cubeLevel(n%6))
	case c >= 232 && c <= 255:
		level := 8 + (int(c)-232)*10
		return fmt.Sprintf("#%02x%02x%02x", level, level, level)
	default:
		return "inherit"
	}
}

func cubeLevel(n int) int {
	if n == 0 {
		return 0
	}
	return 55 + n*40
}

// RGBColor is a direct 24-bit truecolor value, SGR 38;2;r;g;b.
type RGBColor struct{ R, G, B uint8 }

func (c RGBColor) HTMLColorCode() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
