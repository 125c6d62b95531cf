// Package tween animates float64 properties over time.
//
// Tweens are advanced explicitly by Manager.Update from the game loop, so
// completion callbacks always run on the update goroutine.
package tween

import (
	"math"
	"time"
)

// Ease maps linear progress in [0, 1] to eased progress
type Ease func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 {
	return t
}

// SineInOut eases in and out along a half sine wave
func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Config describes a tween on a single property
type Config struct {
	Target *float64
	// To is the end value. Ignored when By is non-zero.
	To float64
	// By is an offset relative to the value at creation time
	By       float64
	Duration time.Duration
	Delay    time.Duration
	Ease     Ease
	// Yoyo plays the tween backwards after each forward pass
	Yoyo bool
	// Repeat is the number of extra cycles, -1 for forever
	Repeat int
	// Owner groups tweens so they can be killed together
	Owner      uint64
	OnComplete func()
}

// Tween is a running animation of one property
type Tween struct {
	target     *float64
	from, to   float64
	duration   float64
	delay      float64
	elapsed    float64
	ease       Ease
	yoyo       bool
	reversing  bool
	repeat     int
	owner      uint64
	onComplete func()
	finished   bool
	killed     bool
}

func newTween(cfg Config) *Tween {
	ease := cfg.Ease
	if ease == nil {
		ease = Linear
	}
	from := *cfg.Target
	to := cfg.To
	if cfg.By != 0 {
		to = from + cfg.By
	}
	return &Tween{
		target:     cfg.Target,
		from:       from,
		to:         to,
		duration:   cfg.Duration.Seconds(),
		delay:      cfg.Delay.Seconds(),
		ease:       ease,
		yoyo:       cfg.Yoyo,
		repeat:     cfg.Repeat,
		owner:      cfg.Owner,
		onComplete: cfg.OnComplete,
	}
}

// update advances the tween by dt seconds and reports whether it finished
func (t *Tween) update(dt float64) bool {
	if t.finished {
		return true
	}
	if t.delay > 0 {
		if dt < t.delay {
			t.delay -= dt
			return false
		}
		dt -= t.delay
		t.delay = 0
	}
	if t.duration <= 0 {
		*t.target = t.to
		t.finished = true
		return true
	}

	t.elapsed += dt
	for t.elapsed >= t.duration {
		t.elapsed -= t.duration
		if t.yoyo && !t.reversing {
			t.reversing = true
			continue
		}
		t.reversing = false
		if t.repeat == 0 {
			t.finished = true
			if t.yoyo {
				*t.target = t.from
			} else {
				*t.target = t.to
			}
			return true
		}
		if t.repeat > 0 {
			t.repeat--
		}
	}

	progress := t.elapsed / t.duration
	if t.reversing {
		progress = 1 - progress
	}
	*t.target = t.from + (t.to-t.from)*t.ease(progress)
	return false
}

// Finished reports whether the tween ran to completion
func (t *Tween) Finished() bool {
	return t.finished
}

// Manager owns running tweens
type Manager struct {
	tweens []*Tween
}

// NewManager creates an empty manager
func NewManager() *Manager {
	return &Manager{}
}

// Add starts a tween. A nil target is ignored.
func (m *Manager) Add(cfg Config) *Tween {
	if cfg.Target == nil {
		return nil
	}
	t := newTween(cfg)
	m.tweens = append(m.tweens, t)
	return t
}

// Update advances every tween by dt seconds. Completion callbacks run after
// finished tweens are removed, so they may add or kill tweens.
func (m *Manager) Update(dt float64) {
	var done []*Tween
	kept := m.tweens[:0]
	for _, t := range m.tweens {
		if t.killed {
			continue
		}
		if t.update(dt) {
			done = append(done, t)
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = kept

	for _, t := range done {
		if t.onComplete != nil {
			t.onComplete()
		}
	}
}

// KillOwner stops every tween of owner without running callbacks
func (m *Manager) KillOwner(owner uint64) {
	m.kill(func(t *Tween) bool { return t.owner == owner })
}

// KillTarget stops every tween animating target without running callbacks
func (m *Manager) KillTarget(target *float64) {
	m.kill(func(t *Tween) bool { return t.target == target })
}

// Clear stops all tweens without running callbacks
func (m *Manager) Clear() {
	m.kill(func(*Tween) bool { return true })
}

func (m *Manager) kill(match func(*Tween) bool) {
	kept := m.tweens[:0]
	for _, t := range m.tweens {
		if match(t) {
			t.killed = true
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = kept
}

// Len returns the number of running tweens
func (m *Manager) Len() int {
	return len(m.tweens)
}
