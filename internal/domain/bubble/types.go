// Package bubble implements the bubble field: the set of poppable bubbles on
// screen, the one-way pop transition and the completion signal fired when the
// last bubble is popped.
//
// The package never imports the engine. Sprites, tweens, audio and input are
// reached through the Presenter, TapSource and Sound interfaces.
package bubble

import "image/color"

// ID identifies a bubble within a single field
type ID uint32

// VisualHandle is an opaque token issued by the presentation layer.
// The field passes it back but never interprets it.
type VisualHandle uint64

// Phase is the lifecycle phase of a bubble
type Phase int

const (
	PhaseAlive Phase = iota
	PhasePopping
	PhaseRemoved
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseAlive:
		return "Alive"
	case PhasePopping:
		return "Popping"
	case PhaseRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Point is a position in screen pixels
type Point struct {
	X float64
	Y float64
}

// Wobble holds the idle animation timings of a bubble, in milliseconds
type Wobble struct {
	DurationX int
	DelayX    int
	DurationY int
	DelayY    int
}

// Bubble is a single poppable entity
type Bubble struct {
	ID     ID
	Center Point
	Size   float64
	Color  color.RGBA
	Phase  Phase
	Visual VisualHandle
	Wobble Wobble
}

// VisualSpec describes the visual the presentation layer should create
type VisualSpec struct {
	Color  color.RGBA
	Center Point
	Size   float64
	Wobble Wobble
}

// PopDirective tells the caller which visual must be animated out and
// destroyed once the animation finishes
type PopDirective struct {
	ID     ID
	Visual VisualHandle
}

// Presenter is the presentation layer consumed by the field
type Presenter interface {
	CreateVisual(spec VisualSpec) VisualHandle
	// VisualSize returns the display width and height of a visual
	VisualSize(h VisualHandle) (float64, float64)
	// PlayExitAnimation plays the pop animation and calls onComplete when it ends
	PlayExitAnimation(h VisualHandle, onComplete func())
	DestroyVisual(h VisualHandle)
}

// TapSource registers one-shot tap listeners scoped to a visual.
// The callback runs at most once per registration.
type TapSource interface {
	OnTapOnce(h VisualHandle, fn func())
}

// Sound is a playable sound handle
type Sound interface {
	Play()
}
