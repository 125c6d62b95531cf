package replay

import "github.com/google/uuid"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// Tap is a pointer press in screen pixels
type Tap struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int   `json:"f"`           // Frame number
	MX int   `json:"mx"`          // CursorX
	MY int   `json:"my"`          // CursorY
	T  []Tap `json:"t,omitempty"` // Taps started this frame
	B  bool  `json:"b,omitempty"` // Back
}

// ReplayData contains all data needed to replay a round
type ReplayData struct {
	Version   string       `json:"version"`
	ID        uuid.UUID    `json:"id"`
	Seed      int64        `json:"seed"`
	Board     string       `json:"board"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
