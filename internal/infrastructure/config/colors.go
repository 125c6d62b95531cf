package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a "#rrggbb" or "#rgb" hex color into an opaque RGBA
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustParseColor is ParseColor for values already checked by Validate
func MustParseColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// ParsePalette returns the board palette. An empty palette returns nil so
// the caller can fall back to its default.
func (c *BoardConfig) ParsePalette() ([]color.RGBA, error) {
	if len(c.Palette) == 0 {
		return nil, nil
	}
	out := make([]color.RGBA, 0, len(c.Palette))
	for _, hex := range c.Palette {
		col, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		out = append(out, col)
	}
	return out, nil
}
