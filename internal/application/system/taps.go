package system

import (
	"github.com/younwookim/bubblepop/internal/domain/bubble"
)

// HitTester reports whether a screen point lies on a visual
type HitTester interface {
	HitTest(h bubble.VisualHandle, x, y float64) bool
}

type tapSubscription struct {
	handle bubble.VisualHandle
	fn     func()
}

// TapRegistry dispatches taps to one-shot listeners scoped to visuals.
// It implements bubble.TapSource.
type TapRegistry struct {
	hit  HitTester
	subs []tapSubscription
}

// NewTapRegistry creates a registry using hit for hit-testing
func NewTapRegistry(hit HitTester) *TapRegistry {
	return &TapRegistry{hit: hit}
}

// OnTapOnce registers fn for the next tap on h. The registration is dropped
// before fn runs, so fn fires at most once.
func (r *TapRegistry) OnTapOnce(h bubble.VisualHandle, fn func()) {
	r.subs = append(r.subs, tapSubscription{handle: h, fn: fn})
}

// Dispatch delivers a tap at (x, y) to the topmost listener under it, the
// most recently registered one. It returns false when nothing was hit.
func (r *TapRegistry) Dispatch(x, y float64) bool {
	for i := len(r.subs) - 1; i >= 0; i-- {
		sub := r.subs[i]
		if !r.hit.HitTest(sub.handle, x, y) {
			continue
		}
		r.subs = append(r.subs[:i], r.subs[i+1:]...)
		sub.fn()
		return true
	}
	return false
}

// Cancel drops every listener registered for h
func (r *TapRegistry) Cancel(h bubble.VisualHandle) {
	kept := r.subs[:0]
	for _, sub := range r.subs {
		if sub.handle != h {
			kept = append(kept, sub)
		}
	}
	r.subs = kept
}

// Reset drops every listener
func (r *TapRegistry) Reset() {
	r.subs = nil
}

// Len returns the number of pending listeners
func (r *TapRegistry) Len() int {
	return len(r.subs)
}
