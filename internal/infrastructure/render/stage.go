// Package render draws the bubble field with ebiten and animates it with
// the tween manager. Stage implements bubble.Presenter and the hit-testing
// used by the tap registry.
package render

import (
	"image/color"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/younwookim/bubblepop/internal/application/tween"
	"github.com/younwookim/bubblepop/internal/domain/bubble"
)

// StageConfig configures sprite animations
type StageConfig struct {
	WobbleOffset        float64
	WobbleScale         float64
	WobbleScaleDuration time.Duration
	PopDuration         time.Duration
	FlashColor          color.RGBA
}

// Sprite is the drawable state of a visual
type Sprite struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Size     float64
	Tint     color.RGBA
	TintFill bool
	Popping  bool
}

// Stage owns the sprites of a scene
type Stage struct {
	cfg     StageConfig
	image   *ebiten.Image
	tweens  *tween.Manager
	sprites map[bubble.VisualHandle]*Sprite
	order   []bubble.VisualHandle
	next    bubble.VisualHandle
}

// NewStage creates a stage drawing every sprite with img.
// A nil img keeps the stage working without drawing.
func NewStage(img *ebiten.Image, tweens *tween.Manager, cfg StageConfig) *Stage {
	return &Stage{
		cfg:     cfg,
		image:   img,
		tweens:  tweens,
		sprites: make(map[bubble.VisualHandle]*Sprite),
	}
}

// CreateVisual adds a sprite and starts its idle wobble
func (s *Stage) CreateVisual(spec bubble.VisualSpec) bubble.VisualHandle {
	s.next++
	h := s.next
	sp := &Sprite{
		X:      spec.Center.X,
		Y:      spec.Center.Y,
		ScaleX: 1,
		ScaleY: 1,
		Size:   spec.Size,
		Tint:   spec.Color,
	}
	s.sprites[h] = sp
	s.order = append(s.order, h)

	if spec.Wobble.DurationX > 0 || spec.Wobble.DurationY > 0 {
		s.wobble(h, sp, spec.Wobble)
	}
	return h
}

func (s *Stage) wobble(h bubble.VisualHandle, sp *Sprite, w bubble.Wobble) {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	owner := uint64(h)

	s.tweens.Add(tween.Config{
		Target: &sp.X, By: s.cfg.WobbleOffset,
		Duration: ms(w.DurationX), Delay: ms(w.DelayX),
		Ease: tween.SineInOut, Yoyo: true, Repeat: -1, Owner: owner,
	})
	s.tweens.Add(tween.Config{
		Target: &sp.Y, By: s.cfg.WobbleOffset,
		Duration: ms(w.DurationY), Delay: ms(w.DelayY),
		Ease: tween.SineInOut, Yoyo: true, Repeat: -1, Owner: owner,
	})
	s.tweens.Add(tween.Config{
		Target: &sp.ScaleX, By: s.cfg.WobbleScale, Duration: s.cfg.WobbleScaleDuration,
		Ease: tween.SineInOut, Yoyo: true, Repeat: -1, Owner: owner,
	})
	s.tweens.Add(tween.Config{
		Target: &sp.ScaleY, By: s.cfg.WobbleScale, Duration: s.cfg.WobbleScaleDuration,
		Ease: tween.SineInOut, Yoyo: true, Repeat: -1, Owner: owner,
	})
}

// VisualSize returns the displayed width and height of a sprite
func (s *Stage) VisualSize(h bubble.VisualHandle) (float64, float64) {
	sp, ok := s.sprites[h]
	if !ok {
		return 0, 0
	}
	return sp.Size * sp.ScaleX, sp.Size * sp.ScaleY
}

// PlayExitAnimation flashes the sprite and shrinks it to nothing.
// onComplete runs right away for unknown handles.
func (s *Stage) PlayExitAnimation(h bubble.VisualHandle, onComplete func()) {
	sp, ok := s.sprites[h]
	if !ok {
		if onComplete != nil {
			onComplete()
		}
		return
	}

	sp.Popping = true
	sp.TintFill = true
	sp.Tint = s.cfg.FlashColor

	s.tweens.KillTarget(&sp.ScaleX)
	s.tweens.KillTarget(&sp.ScaleY)
	s.tweens.Add(tween.Config{
		Target: &sp.ScaleX, To: 0, Duration: s.cfg.PopDuration,
		Ease: tween.SineInOut, Owner: uint64(h),
	})
	s.tweens.Add(tween.Config{
		Target: &sp.ScaleY, To: 0, Duration: s.cfg.PopDuration,
		Ease: tween.SineInOut, Owner: uint64(h),
		OnComplete: onComplete,
	})
}

// DestroyVisual removes the sprite and stops its tweens
func (s *Stage) DestroyVisual(h bubble.VisualHandle) {
	if _, ok := s.sprites[h]; !ok {
		return
	}
	s.tweens.KillOwner(uint64(h))
	delete(s.sprites, h)
	if i := slices.Index(s.order, h); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

// HitTest reports whether (x, y) lies inside the sprite's circle.
// Popping sprites are never hit.
func (s *Stage) HitTest(h bubble.VisualHandle, x, y float64) bool {
	sp, ok := s.sprites[h]
	if !ok || sp.Popping {
		return false
	}
	r := sp.Size * sp.ScaleX / 2
	dx := x - sp.X
	dy := y - sp.Y
	return dx*dx+dy*dy <= r*r
}

// Sprite returns a copy of the sprite state of h
func (s *Stage) Sprite(h bubble.VisualHandle) (Sprite, bool) {
	sp, ok := s.sprites[h]
	if !ok {
		return Sprite{}, false
	}
	return *sp, true
}

// Len returns the number of sprites on stage
func (s *Stage) Len() int {
	return len(s.sprites)
}

// Draw renders every sprite in creation order
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.image == nil {
		return
	}
	bounds := s.image.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())

	for _, handle := range s.order {
		sp := s.sprites[handle]
		if sp.ScaleX <= 0 || sp.ScaleY <= 0 {
			continue
		}

		op := &colorm.DrawImageOptions{}
		op.Filter = ebiten.FilterLinear
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(sp.Size/w*sp.ScaleX, sp.Size/h*sp.ScaleY)
		op.GeoM.Translate(sp.X, sp.Y)

		r := float64(sp.Tint.R) / 255
		g := float64(sp.Tint.G) / 255
		b := float64(sp.Tint.B) / 255
		var cm colorm.ColorM
		if sp.TintFill {
			cm.Scale(0, 0, 0, 1)
			cm.Translate(r, g, b, 0)
		} else {
			cm.Scale(r, g, b, 1)
		}
		colorm.DrawImage(screen, s.image, cm, op)
	}
}
