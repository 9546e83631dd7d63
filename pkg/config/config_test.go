package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/storeshots/pkg/theme"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.TargetWidth != 1280 || cfg.TargetHeight != 800 {
		t.Errorf("expected 1280x800, got %dx%d", cfg.TargetWidth, cfg.TargetHeight)
	}
	if cfg.InputDir != "../docs/screenshots" {
		t.Errorf("unexpected input dir %s", cfg.InputDir)
	}
	if cfg.OutputDir != "../docs/screenshots/store" {
		t.Errorf("unexpected output dir %s", cfg.OutputDir)
	}
	if len(cfg.Screenshots) != 10 {
		t.Fatalf("expected 10 screenshots, got %d", len(cfg.Screenshots))
	}
	if cfg.Screenshots[0] != "options-gold.png" || cfg.Screenshots[9] != "tools-gold-dark.png" {
		t.Errorf("unexpected screenshot order %v", cfg.Screenshots)
	}

	// Mutating one Defaults() must not leak into the next.
	cfg.Screenshots[0] = "changed.png"
	if Defaults().Screenshots[0] != "options-gold.png" {
		t.Error("Defaults shares the screenshot slice")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storeshots.yaml")
	content := `
input_dir: shots
target_width: 640
screenshots:
  - home.png
  - home-dark.png
theme:
  dark_background: "#000000"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.InputDir != "shots" {
		t.Errorf("expected input dir override, got %s", cfg.InputDir)
	}
	if cfg.OutputDir != "../docs/screenshots/store" {
		t.Errorf("expected default output dir to survive, got %s", cfg.OutputDir)
	}
	if cfg.TargetWidth != 640 || cfg.TargetHeight != 800 {
		t.Errorf("expected 640x800, got %dx%d", cfg.TargetWidth, cfg.TargetHeight)
	}
	if len(cfg.Screenshots) != 2 || cfg.Screenshots[1] != "home-dark.png" {
		t.Errorf("unexpected screenshots %v", cfg.Screenshots)
	}
	if cfg.Theme.DarkBackground != "#000000" || cfg.Theme.LightBackground != "#f5f5f5" {
		t.Errorf("unexpected theme %+v", cfg.Theme)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFromFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("target_width: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("target_height: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(invalid); err == nil {
		t.Error("expected validation error for zero height")
	}
}

func TestLoadFromFile_RejectsMalformedColors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"short dark", "theme:\n  dark_background: \"#2d2d2\"\n"},
		{"non-hex light", "theme:\n  light_background: \"#zzzzzz\"\n"},
		{"empty dark", "theme:\n  dark_background: \"\"\n"},
		{"css name", "theme:\n  light_background: white\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "storeshots.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFromFile(path); err == nil {
				t.Error("expected validation error for malformed color")
			}
		})
	}
}

func TestValidate_AcceptsHexColors(t *testing.T) {
	cfg := Defaults()
	cfg.Theme.DarkBackground = "1A1A1A"
	cfg.Theme.LightBackground = "#FaFaFa"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Defaults().Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"#2d2d2d", color.RGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 255}},
		{"f5f5f5", color.RGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 255}},
		{"#B8860B", color.RGBA{R: 0xb8, G: 0x86, B: 0x0b, A: 255}},
		{"", color.Black},
		{"#fff", color.Black},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	oc := Defaults().ToOrchestratorConfig()

	if oc.Target.Width != 1280 || oc.Target.Height != 800 {
		t.Errorf("unexpected target %+v", oc.Target)
	}
	if len(oc.Files) != 10 {
		t.Errorf("expected 10 files, got %d", len(oc.Files))
	}
	if got := theme.FormatColor(oc.Palette.BackgroundFor("popup-gold-dark.png")); got != "#2d2d2d" {
		t.Errorf("expected dark background, got %s", got)
	}
	if got := theme.FormatColor(oc.Palette.BackgroundFor("popup-gold.png")); got != "#f5f5f5" {
		t.Errorf("expected light background, got %s", got)
	}
}
