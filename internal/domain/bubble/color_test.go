package bubble

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func TestColorFactory_CycleIsPermutation(t *testing.T) {
	palette := []color.RGBA{red, green, blue}
	f := NewColorFactory(palette, rand.New(rand.NewSource(7)))

	got := []color.RGBA{f.Next(), f.Next(), f.Next()}
	assert.ElementsMatch(t, palette, got)

	fourth := f.Next()
	assert.Contains(t, palette, fourth)
}

func TestColorFactory_NoRepeatWithinEachCycle(t *testing.T) {
	f := NewColorFactory(DefaultPalette, rand.New(rand.NewSource(42)))

	for cycle := 0; cycle < 5; cycle++ {
		seen := make(map[color.RGBA]bool)
		for i := 0; i < len(DefaultPalette); i++ {
			c := f.Next()
			assert.False(t, seen[c], "cycle %d repeated %v", cycle, c)
			seen[c] = true
		}
		assert.Len(t, seen, len(DefaultPalette))
	}
}

func TestColorFactory_SameSeedSameSequence(t *testing.T) {
	f1 := NewColorFactory(DefaultPalette, rand.New(rand.NewSource(13)))
	f2 := NewColorFactory(DefaultPalette, rand.New(rand.NewSource(13)))

	for i := 0; i < 3*len(DefaultPalette); i++ {
		assert.Equal(t, f1.Next(), f2.Next())
	}
}

func TestColorFactory_DoesNotMutatePalette(t *testing.T) {
	palette := []color.RGBA{red, green, blue}
	f := NewColorFactory(palette, rand.New(rand.NewSource(1)))

	for i := 0; i < 7; i++ {
		f.Next()
	}

	assert.Equal(t, []color.RGBA{red, green, blue}, palette)
}

func TestColorFactory_Remaining(t *testing.T) {
	f := NewColorFactory([]color.RGBA{red, green, blue}, rand.New(rand.NewSource(1)))

	assert.Equal(t, 0, f.Remaining())
	f.Next()
	assert.Equal(t, 2, f.Remaining())
	f.Next()
	f.Next()
	assert.Equal(t, 0, f.Remaining())
	f.Next()
	assert.Equal(t, 2, f.Remaining(), "refilled then drew one")
}

func TestColorFactory_EmptyPaletteReturnsWhite(t *testing.T) {
	f := NewColorFactory(nil, rand.New(rand.NewSource(1)))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, f.Next())
}

func TestRandomIntInclusive_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		v := RandomIntInclusive(rng, 3, 6)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 6)
		seen[v] = true
	}

	// Both bounds are reachable
	assert.True(t, seen[3])
	assert.True(t, seen[6])
	assert.Len(t, seen, 4)
}

func TestRandomIntInclusive_DegenerateAndSwapped(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	assert.Equal(t, 4, RandomIntInclusive(rng, 4, 4))

	for i := 0; i < 100; i++ {
		v := RandomIntInclusive(rng, 10, 8)
		assert.GreaterOrEqual(t, v, 8)
		assert.LessOrEqual(t, v, 10)
	}
}
