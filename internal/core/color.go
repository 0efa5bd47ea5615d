package core

import "strings"

// Color is a foreground color for a screen cell.
// The platform maps it to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	colorCount
)

var colorNames = [colorCount]string{
	"default",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
	"bright_red",
	"bright_green",
	"bright_yellow",
	"bright_blue",
	"bright_magenta",
	"bright_cyan",
	"bright_white",
	"orange",
	"gray",
}

// String returns the name used in asset manifests.
func (c Color) String() string {
	if c >= colorCount {
		return "default"
	}
	return colorNames[c]
}

// ParseColor looks up a color by manifest name, case-insensitively.
// Unknown names yield ColorDefault and false.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "grey" {
		name = "gray"
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), true //#nosec G115 -- index below colorCount
		}
	}
	return ColorDefault, false
}
