package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the pointer state of one frame
type InputState struct {
	CursorX int
	CursorY int
	// Taps are the pointer presses that started this frame, mouse and touch
	Taps []image.Point
	// Back is true when the back key was pressed this frame
	Back bool
	// Save is true when a manual recording save was requested this frame
	Save bool
}

// InputSource produces the input of each frame
type InputSource interface {
	GetInput() InputState
}

// InputSystem reads pointer input from ebiten
type InputSystem struct {
	touchIDs []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	input := InputState{
		CursorX: mx,
		CursorY: my,
		Back:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		input.Taps = append(input.Taps, image.Pt(mx, my))
	}

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		input.Taps = append(input.Taps, image.Pt(tx, ty))
		// Touch has no hover, follow the finger instead
		input.CursorX, input.CursorY = tx, ty
	}

	return input
}
