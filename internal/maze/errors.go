package maze

import "errors"

// Precondition violations reported by Session.Tick.
var (
	ErrNotActive       = errors.New("maze: session is not active")
	ErrNoPlayer        = errors.New("maze: no player in session")
	ErrMultiplePlayers = errors.New("maze: more than one player in session")
)
