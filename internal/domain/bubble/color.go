package bubble

import (
	"image/color"
	"math/rand"
)

// DefaultPalette is used when no palette is configured
var DefaultPalette = []color.RGBA{
	{255, 107, 107, 255}, // red
	{255, 168, 1, 255},   // orange
	{254, 234, 98, 255},  // yellow
	{29, 209, 161, 255},  // green
	{72, 219, 251, 255},  // cyan
	{84, 160, 255, 255},  // blue
	{95, 39, 205, 255},   // violet
	{243, 104, 224, 255}, // pink
}

// ColorFactory hands out palette colors at random without repeating any
// color until the whole palette has been used once.
type ColorFactory struct {
	palette   []color.RGBA
	remaining []color.RGBA
	rng       *rand.Rand
}

// NewColorFactory creates a factory drawing from palette with rng.
// The palette is copied.
func NewColorFactory(palette []color.RGBA, rng *rand.Rand) *ColorFactory {
	p := make([]color.RGBA, len(palette))
	copy(p, palette)
	return &ColorFactory{
		palette: p,
		rng:     rng,
	}
}

// Next removes and returns a random color from the working copy, refilling
// it from the palette once it is exhausted.
func (f *ColorFactory) Next() color.RGBA {
	if len(f.palette) == 0 {
		return color.RGBA{255, 255, 255, 255}
	}
	if len(f.remaining) == 0 {
		f.remaining = append(f.remaining[:0], f.palette...)
	}

	i := RandomIntInclusive(f.rng, 0, len(f.remaining)-1)
	c := f.remaining[i]
	f.remaining = append(f.remaining[:i], f.remaining[i+1:]...)
	return c
}

// Remaining returns how many colors are left before the next refill
func (f *ColorFactory) Remaining() int {
	return len(f.remaining)
}

// RandomIntInclusive returns a uniform integer in [min, max].
// Swapped bounds are normalized.
func RandomIntInclusive(rng *rand.Rand, min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + rng.Intn(max-min+1)
}
