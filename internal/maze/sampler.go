package maze

import "github.com/vovakirdan/mazewalk/internal/core"

// TurnCommit is the rotation committed by one pointer-triggered turn.
const TurnCommit = 90.0

// SampleTurn commits a turn from the pointer position when the walker is idle.
// The window is split into thirds: the left third turns left (+90), the right
// third turns right (-90), and the middle third or an absent pointer does
// nothing. It reports whether a turn was committed.
func SampleTurn(st *State, p core.Pointer, windowWidth float64) bool {
	if !st.Idle() || !p.Present || windowWidth <= 0 {
		return false
	}

	left := windowWidth / 3.0
	right := windowWidth - windowWidth/3.0

	switch {
	case p.X < left:
		st.PendingTurn = TurnCommit
	case p.X > right:
		st.PendingTurn = -TurnCommit
	default:
		return false
	}
	return true
}
