package system

import (
	"image"

	"github.com/younwookim/bubblepop/internal/application/replay"
)

// ReplayInputSystem feeds recorded input back frame by frame
type ReplayInputSystem struct {
	replayer *replay.Replayer
	last     InputState
}

// NewReplayInputSystem creates an input source reading from replayer
func NewReplayInputSystem(replayer *replay.Replayer) *ReplayInputSystem {
	return &ReplayInputSystem{replayer: replayer}
}

// GetInput returns the next recorded frame. Once the recording runs out the
// cursor stays where it was and no more taps arrive.
func (s *ReplayInputSystem) GetInput() InputState {
	in, ok := s.replayer.GetInput()
	if !ok {
		return InputState{CursorX: s.last.CursorX, CursorY: s.last.CursorY}
	}
	state := InputState{
		CursorX: in.MouseX,
		CursorY: in.MouseY,
		Back:    in.Back,
	}
	for _, t := range in.Taps {
		state.Taps = append(state.Taps, image.Pt(t.X, t.Y))
	}
	s.last = state
	return state
}

// Done reports whether the recording ran out
func (s *ReplayInputSystem) Done() bool {
	return s.replayer.Done()
}

// ToReplayInput converts a frame of input for recording
func ToReplayInput(in InputState) replay.Input {
	out := replay.Input{
		MouseX: in.CursorX,
		MouseY: in.CursorY,
		Back:   in.Back,
	}
	for _, p := range in.Taps {
		out.Taps = append(out.Taps, replay.Tap{X: p.X, Y: p.Y})
	}
	return out
}
