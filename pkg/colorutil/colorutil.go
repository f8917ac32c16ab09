// Package colorutil provides shared color utilities for the room masker application.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultPalette holds the room colors cycled through as rooms are created.
var DefaultPalette = []color.RGBA{
	{R: 0, G: 255, B: 255, A: 255}, // cyan
	{R: 255, G: 0, B: 255, A: 255}, // magenta
	{R: 255, G: 255, B: 0, A: 255}, // yellow
	{R: 0, G: 255, B: 0, A: 255},   // green
	{R: 255, G: 128, B: 0, A: 255}, // orange
	{R: 64, G: 128, B: 255, A: 255},
	{R: 255, G: 64, B: 64, A: 255},
	{R: 128, G: 255, B: 128, A: 255},
}

// Vector returns the integer RGB components of a color, used by the
// compositor to accumulate per-room contributions without rounding.
func Vector(c color.RGBA) [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

// Luminance computes the perceptual luma of an RGB triple (0-255 scale).
func Luminance(r, g, b uint8) float64 {
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}

// ParseHex parses a "#RRGGBB" color string.
func ParseHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color: #%s (expected 6 hex digits)", hex)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		val, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid hex color: #%s: %w", hex, err)
		}
		rgb[i] = uint8(val)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}

// ParsePalette parses a list of "#RRGGBB" strings into a palette. An empty
// list yields the default palette.
func ParsePalette(hexes []string) ([]color.RGBA, error) {
	if len(hexes) == 0 {
		return DefaultPalette, nil
	}
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
