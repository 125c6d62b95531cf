package render

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/bubblepop/internal/application/tween"
	"github.com/younwookim/bubblepop/internal/domain/bubble"
)

var testStageConfig = StageConfig{
	WobbleOffset:        3,
	WobbleScale:         0.005,
	WobbleScaleDuration: 4 * time.Second,
	PopDuration:         100 * time.Millisecond,
	FlashColor:          color.RGBA{0xff, 0xff, 0xff, 0xff},
}

func newTestStage() (*Stage, *tween.Manager) {
	tweens := tween.NewManager()
	return NewStage(nil, tweens, testStageConfig), tweens
}

func TestStage_CreateVisual(t *testing.T) {
	s, tweens := newTestStage()

	t.Run("probe without wobble starts no tweens", func(t *testing.T) {
		h := s.CreateVisual(bubble.VisualSpec{Size: 150})
		w, hh := s.VisualSize(h)
		assert.Equal(t, 150.0, w)
		assert.Equal(t, 150.0, hh)
		assert.Equal(t, 0, tweens.Len())
		s.DestroyVisual(h)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("bubble wobbles on both axes and in scale", func(t *testing.T) {
		h := s.CreateVisual(bubble.VisualSpec{
			Color:  color.RGBA{0x34, 0x98, 0xdb, 0xff},
			Center: bubble.Point{X: 100, Y: 200},
			Size:   150,
			Wobble: bubble.Wobble{DurationX: 800, DelayX: 0, DurationY: 1000, DelayY: 500},
		})
		assert.Equal(t, 4, tweens.Len())

		// Halfway through the X pass the sprite sits between its rest and peak
		tweens.Update(0.4)
		sp, ok := s.Sprite(h)
		require.True(t, ok)
		assert.InDelta(t, 101.5, sp.X, 1e-9)
		assert.Equal(t, 200.0, sp.Y, "Y is still delayed")

		// Wobble never exceeds its offset
		for i := 0; i < 200; i++ {
			tweens.Update(1.0 / 60)
			sp, _ = s.Sprite(h)
			assert.LessOrEqual(t, sp.X, 103.0+1e-9)
			assert.GreaterOrEqual(t, sp.X, 100.0-1e-9)
			assert.LessOrEqual(t, sp.ScaleX, 1.005+1e-9)
		}

		s.DestroyVisual(h)
		assert.Equal(t, 0, tweens.Len())
	})
}

func TestStage_PlayExitAnimation(t *testing.T) {
	s, tweens := newTestStage()
	h := s.CreateVisual(bubble.VisualSpec{
		Color:  color.RGBA{0xe7, 0x4c, 0x3c, 0xff},
		Center: bubble.Point{X: 75, Y: 75},
		Size:   150,
		Wobble: bubble.Wobble{DurationX: 900, DurationY: 900},
	})

	done := 0
	s.PlayExitAnimation(h, func() { done++ })

	sp, _ := s.Sprite(h)
	assert.True(t, sp.TintFill)
	assert.True(t, sp.Popping)
	assert.Equal(t, testStageConfig.FlashColor, sp.Tint)
	assert.False(t, s.HitTest(h, 75, 75), "popping sprites are not tappable")

	tweens.Update(0.05)
	assert.Equal(t, 0, done)
	sp, _ = s.Sprite(h)
	assert.InDelta(t, 0.5, sp.ScaleX, 0.01)

	tweens.Update(0.06)
	assert.Equal(t, 1, done)
	sp, _ = s.Sprite(h)
	assert.Equal(t, 0.0, sp.ScaleY)

	t.Run("unknown handle completes at once", func(t *testing.T) {
		called := false
		s.PlayExitAnimation(999, func() { called = true })
		assert.True(t, called)
	})
}

func TestStage_HitTest(t *testing.T) {
	s, _ := newTestStage()
	h := s.CreateVisual(bubble.VisualSpec{Center: bubble.Point{X: 100, Y: 100}, Size: 50})

	assert.True(t, s.HitTest(h, 100, 100))
	assert.True(t, s.HitTest(h, 125, 100))
	assert.False(t, s.HitTest(h, 120, 120), "corner of the bounding box is outside the circle")
	assert.False(t, s.HitTest(h, 200, 200))
	assert.False(t, s.HitTest(h+1, 100, 100))

	s.DestroyVisual(h)
	assert.False(t, s.HitTest(h, 100, 100))
	assert.NotPanics(t, func() { s.DestroyVisual(h) })
}

func TestStage_ImplementsPresenter(t *testing.T) {
	var _ bubble.Presenter = (*Stage)(nil)
}
