// Package app provides application configuration and lifecycle support.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"

	"room-masker/internal/tools"
	"room-masker/pkg/colorutil"
)

// ToolsConfig holds the operator-tunable tool parameters.
type ToolsConfig struct {
	BrushRadius   int     `toml:"brush_radius"`
	WandTolerance float64 `toml:"wand_tolerance"` // <= 0 derives from the seed neighborhood
	SnapRadius    int     `toml:"snap_radius"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Palette []string `toml:"palette"` // "#RRGGBB" room colors, cycled in order
}

// Config is the root of the TOML configuration file.
type Config struct {
	Tools   ToolsConfig   `toml:"tools"`
	Display DisplayConfig `toml:"display"`
}

func defaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			BrushRadius:   tools.BrushRadiusDefault,
			WandTolerance: tools.DefaultWandTolerance,
			SnapRadius:    tools.DefaultSnapRadius,
		},
	}
}

// LoadConfig reads the configuration file, falling back to defaults when the
// file does not exist. A present but malformed file is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Tools.BrushRadius < tools.BrushRadiusMin || c.Tools.BrushRadius > tools.BrushRadiusMax {
		return fmt.Errorf("brush_radius %d out of range [%d, %d]",
			c.Tools.BrushRadius, tools.BrushRadiusMin, tools.BrushRadiusMax)
	}
	if c.Tools.SnapRadius < 1 {
		return fmt.Errorf("snap_radius %d must be >= 1", c.Tools.SnapRadius)
	}
	if _, err := c.PaletteColors(); err != nil {
		return err
	}
	return nil
}

// PaletteColors parses the configured palette, or returns the built-in
// palette when none is configured.
func (c *Config) PaletteColors() ([]color.RGBA, error) {
	if len(c.Display.Palette) == 0 {
		return colorutil.DefaultPalette, nil
	}
	return colorutil.ParsePalette(c.Display.Palette)
}
