package paint

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 1100 || cfg.Height != 611 {
		t.Errorf("size = %dx%d, want 1100x611", cfg.Width, cfg.Height)
	}
	if cfg.Background != White || cfg.DefaultColor != Black || cfg.DefaultFootprint != FootprintSquare {
		t.Errorf("colours/footprint = %v %v %v", cfg.Background, cfg.DefaultColor, cfg.DefaultFootprint)
	}
	if !slices.Equal(cfg.Thickness, []int{1, 4, 6, 9, 14}) {
		t.Errorf("Thickness = %v", cfg.Thickness)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}

	cfg.Thickness[0] = 99
	if DefaultConfig().Thickness[0] != 1 {
		t.Error("DefaultConfig shares its thickness table")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero width", mutate: func(c *Config) { c.Width = 0 }},
		{name: "negative height", mutate: func(c *Config) { c.Height = -1 }},
		{name: "empty table", mutate: func(c *Config) { c.Thickness = nil }},
		{name: "thin entry", mutate: func(c *Config) { c.Thickness = []int{1, 0} }},
		{name: "bad footprint", mutate: func(c *Config) { c.DefaultFootprint = 7 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigStrokeWidthForIndex(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct{ index, want int }{
		{0, 1}, {1, 4}, {2, 6}, {3, 9}, {4, 14}, {5, 1}, {-1, 1},
	}
	for _, tt := range tests {
		if got := cfg.StrokeWidthForIndex(tt.index); got != tt.want {
			t.Errorf("StrokeWidthForIndex(%d) = %d, want %d", tt.index, got, tt.want)
		}
	}
}

func TestDecodeConfig(t *testing.T) {
	const doc = `
width = 320
height = 200
background = "#101010"
default_color = "#ff0000"
default_footprint = "round"
thickness = [2, 5]
`
	cfg, err := DecodeConfig(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	want := Config{
		Width:            320,
		Height:           200,
		Background:       RGB(0x10, 0x10, 0x10),
		DefaultColor:     Red,
		DefaultFootprint: FootprintRound,
		Thickness:        []int{2, 5},
	}
	if cfg.Width != want.Width || cfg.Height != want.Height ||
		cfg.Background != want.Background || cfg.DefaultColor != want.DefaultColor ||
		cfg.DefaultFootprint != want.DefaultFootprint || !slices.Equal(cfg.Thickness, want.Thickness) {
		t.Errorf("DecodeConfig = %+v, want %+v", cfg, want)
	}
}

func TestDecodeConfigKeepsDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader("width = 64\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != DefaultHeight || cfg.Background != White {
		t.Errorf("partial config = %+v", cfg)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		invalid bool
	}{
		{name: "syntax", doc: "width = = 3"},
		{name: "bad colour", doc: `background = "white"`},
		{name: "bad footprint", doc: `default_footprint = "star"`},
		{name: "unknown key", doc: "depth = 3", invalid: true},
		{name: "invalid values", doc: "thickness = []", invalid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("DecodeConfig succeeded")
			}
			if tt.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paint.toml")
	if err := os.WriteFile(path, []byte("height = 90\nthickness = [3]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Height != 90 || cfg.StrokeWidthForIndex(0) != 3 {
		t.Errorf("LoadConfig = %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadConfig of a missing file succeeded")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("width = -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig(bad) = %v, want ErrInvalidConfig", err)
	}
}
