package state

// GameState represents the current state of a round
type GameState int

const (
	StateTitle GameState = iota
	StateLoading
	StatePlaying
	StateCleared
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StateCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether a round may move from s to next.
// Any state may go back to the title.
func (s GameState) CanTransition(next GameState) bool {
	if next == StateTitle {
		return true
	}
	switch s {
	case StateTitle:
		return next == StateLoading
	case StateLoading:
		return next == StatePlaying || next == StateCleared
	case StatePlaying:
		return next == StateCleared
	case StateCleared:
		return next == StateLoading
	default:
		return false
	}
}
