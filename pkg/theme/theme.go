// Package theme picks the canvas background for a screenshot from its filename.
package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// DefaultDarkMarker is the filename fragment that marks a dark-theme screenshot.
const DefaultDarkMarker = "-dark"

// Palette holds the background colors for each theme.
type Palette struct {
	DarkMarker string
	Dark       color.Color
	Light      color.Color
}

// DefaultPalette returns the store listing colors: #2d2d2d for dark
// screenshots and #f5f5f5 for everything else.
func DefaultPalette() Palette {
	return Palette{
		DarkMarker: DefaultDarkMarker,
		Dark:       color.RGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff},
		Light:      color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff},
	}
}

// IsDark reports whether filename belongs to the dark theme.
func (p Palette) IsDark(filename string) bool {
	marker := p.DarkMarker
	if marker == "" {
		marker = DefaultDarkMarker
	}
	return strings.Contains(filename, marker)
}

// BackgroundFor returns the background color for filename.
func (p Palette) BackgroundFor(filename string) color.Color {
	if p.IsDark(filename) {
		return p.Dark
	}
	return p.Light
}

// FormatColor renders c as #rrggbb, ignoring alpha.
func FormatColor(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
