// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/storeshots/pkg/orchestrator"
	"github.com/user/storeshots/pkg/pipeline"
	"github.com/user/storeshots/pkg/theme"
)

// Config represents the full configuration for storeshots.
type Config struct {
	// Input/Output
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	// Canvas
	TargetWidth  int `yaml:"target_width"`
	TargetHeight int `yaml:"target_height"`

	// Screenshots, processed in this order
	Screenshots []string `yaml:"screenshots"`

	// Theme
	Theme ThemeConfig `yaml:"theme"`
}

// ThemeConfig represents background colors per theme.
type ThemeConfig struct {
	DarkMarker      string `yaml:"dark_marker"`
	DarkBackground  string `yaml:"dark_background"`
	LightBackground string `yaml:"light_background"`
}

// DefaultScreenshots is the store listing set: each page in the gold
// theme and its dark variant.
var DefaultScreenshots = []string{
	"options-gold.png",
	"options-gold-dark.png",
	"appearance-gold.png",
	"appearance-gold-dark.png",
	"popup-gold.png",
	"popup-gold-dark.png",
	"suspended-gold.png",
	"suspended-gold-dark.png",
	"tools-gold.png",
	"tools-gold-dark.png",
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		InputDir:  "../docs/screenshots",
		OutputDir: "../docs/screenshots/store",

		TargetWidth:  1280,
		TargetHeight: 800,

		Screenshots: append([]string(nil), DefaultScreenshots...),

		Theme: ThemeConfig{
			DarkMarker:      theme.DefaultDarkMarker,
			DarkBackground:  "#2d2d2d",
			LightBackground: "#f5f5f5",
		},
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks values that would make every file fail.
func (c Config) Validate() error {
	if c.TargetWidth <= 0 || c.TargetHeight <= 0 {
		return fmt.Errorf("target size must be positive, got %dx%d", c.TargetWidth, c.TargetHeight)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if !isHexColor(c.Theme.DarkBackground) {
		return fmt.Errorf("theme.dark_background must be #rrggbb, got %q", c.Theme.DarkBackground)
	}
	if !isHexColor(c.Theme.LightBackground) {
		return fmt.Errorf("theme.light_background must be #rrggbb, got %q", c.Theme.LightBackground)
	}
	return nil
}

// isHexColor reports whether s is six hex digits with an optional leading '#'.
func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// ParseColor parses a hex color string to color.Color.
// Malformed input yields black.
func ParseColor(hex string) color.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return color.Black
	}

	var rgb [3]uint8
	for i := range rgb {
		rgb[i] = hexValue(hex[i*2])<<4 | hexValue(hex[i*2+1])
	}

	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// Palette builds the theme palette from the configured colors.
func (c Config) Palette() theme.Palette {
	return theme.Palette{
		DarkMarker: c.Theme.DarkMarker,
		Dark:       ParseColor(c.Theme.DarkBackground),
		Light:      ParseColor(c.Theme.LightBackground),
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		InputDir:  c.InputDir,
		OutputDir: c.OutputDir,
		Target: pipeline.Dimension{
			Width:  c.TargetWidth,
			Height: c.TargetHeight,
		},
		Files:   append([]string(nil), c.Screenshots...),
		Palette: c.Palette(),
	}
}
