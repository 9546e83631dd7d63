package theme

import (
	"image/color"
	"testing"
)

func TestPalette_BackgroundFor(t *testing.T) {
	p := DefaultPalette()
	dark := color.RGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
	light := color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}

	tests := []struct {
		filename string
		want     color.Color
	}{
		{"options-gold.png", light},
		{"options-gold-dark.png", dark},
		{"appearance-gold-dark.png", dark},
		{"popup-gold.png", light},
		{"dark.png", light}, // marker needs the leading hyphen
		{"suspended-dark-gold.png", dark},
		{"", light},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := p.BackgroundFor(tt.filename)
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			// Pure function: same answer on repeat.
			if again := p.BackgroundFor(tt.filename); again != got {
				t.Errorf("non-deterministic result: %v then %v", got, again)
			}
		})
	}
}

func TestPalette_CustomMarker(t *testing.T) {
	p := DefaultPalette()
	p.DarkMarker = "_night"

	if !p.IsDark("home_night.png") {
		t.Error("expected custom marker to select dark")
	}
	if p.IsDark("home-dark.png") {
		t.Error("default marker should no longer apply")
	}
}

func TestPalette_EmptyMarkerFallsBack(t *testing.T) {
	p := Palette{Dark: color.Black, Light: color.White}
	if p.BackgroundFor("tools-gold-dark.png") != color.Black {
		t.Error("expected empty marker to fall back to -dark")
	}
}

func TestFormatColor(t *testing.T) {
	tests := []struct {
		c    color.Color
		want string
	}{
		{DefaultPalette().Dark, "#2d2d2d"},
		{DefaultPalette().Light, "#f5f5f5"},
		{color.White, "#ffffff"},
		{nil, "#000000"},
	}
	for _, tt := range tests {
		if got := FormatColor(tt.c); got != tt.want {
			t.Errorf("FormatColor(%v): expected %s, got %s", tt.c, tt.want, got)
		}
	}
}
