package paint

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalidConfig is returned by Config.Validate and LoadConfig when a
// configuration cannot be used to build a canvas.
var ErrInvalidConfig = errors.New("paint: invalid config")

// Default canvas settings.
const (
	DefaultWidth  = 1100
	DefaultHeight = 611
)

// defaultThickness maps the thickness selector index to a brush diameter.
var defaultThickness = []int{1, 4, 6, 9, 14}

// Config holds the settings a Canvas is built with. It is a plain value:
// build it once with DefaultConfig or LoadConfig and hand it to NewCanvas.
//
// In TOML files colours are hex strings and the footprint is "square" or
// "round":
//
//	width = 800
//	height = 600
//	background = "#ffffff"
//	default_color = "#ff0000"
//	default_footprint = "round"
//	thickness = [1, 3, 5]
type Config struct {
	Width            int           `toml:"width"`
	Height           int           `toml:"height"`
	Background       Color         `toml:"background"`
	DefaultColor     Color         `toml:"default_color"`
	DefaultFootprint FootprintKind `toml:"default_footprint"`
	Thickness        []int         `toml:"thickness"`
}

// DefaultConfig returns the stock configuration: a 1100x611 white canvas,
// black square-footprint strokes and the thickness table 1, 4, 6, 9, 14.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		Background:       White,
		DefaultColor:     Black,
		DefaultFootprint: FootprintSquare,
		Thickness:        slices.Clone(defaultThickness),
	}
}

// Validate reports whether c describes a usable canvas. The returned error
// wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var problems []string
	if c.Width <= 0 || c.Height <= 0 {
		problems = append(problems, fmt.Sprintf("canvas size %dx%d must be positive", c.Width, c.Height))
	}
	if len(c.Thickness) == 0 {
		problems = append(problems, "thickness table is empty")
	}
	for i, w := range c.Thickness {
		if w < 1 {
			problems = append(problems, fmt.Sprintf("thickness[%d] = %d is below 1", i, w))
		}
	}
	if c.DefaultFootprint > FootprintRound {
		problems = append(problems, fmt.Sprintf("unknown default footprint %v", c.DefaultFootprint))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// StrokeWidthForIndex returns the brush diameter for a thickness selector
// index. An index outside the table yields 1.
func (c Config) StrokeWidthForIndex(i int) int {
	if i < 0 || i >= len(c.Thickness) {
		return 1
	}
	return c.Thickness[i]
}

// DecodeConfig reads a TOML configuration from r. Keys missing from the
// document keep their DefaultConfig values; unknown keys are an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("paint: decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML configuration file. See DecodeConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("paint: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %s", ErrInvalidConfig, path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
