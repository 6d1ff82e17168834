// Package maze implements the first-person grid walker: pointer-driven
// 90 degree turns, raycast-gated two-unit moves, and the feedback cues that
// follow them. Everything advances through Session.Tick, one fixed step at a
// time, with no goroutines and no I/O of its own.
package maze

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// Pose is the player's position and heading.
type Pose struct {
	Position core.Vec3
	Yaw      float64 // Degrees about +Y; positive turns left
}

// Forward returns the unit vector the pose is looking along.
func (p Pose) Forward() core.Vec3 {
	return core.YawForward(p.Yaw)
}

// Phase names the state the walker is in.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTurning
	PhaseMoving
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTurning:
		return "turning"
	case PhaseMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// State is the pair of pending quantities that drives the walker.
// At most one of them is non-zero at any time.
type State struct {
	PendingTurn float64 // Degrees left to rotate; + left, - right
	PendingMove float64 // Distance left to walk; never negative after a tick
}

// Idle reports whether neither a turn nor a move is in flight.
func (s State) Idle() bool {
	return s.PendingTurn == 0 && s.PendingMove == 0
}

// Phase derives the walker phase from the pending values.
func (s State) Phase() Phase {
	switch {
	case s.PendingTurn != 0:
		return PhaseTurning
	case s.PendingMove != 0:
		return PhaseMoving
	default:
		return PhaseIdle
	}
}

// snap rounds every component of v to the given number of decimal places,
// removing the float residue accumulated over many small moves.
func snap(v core.Vec3, places int) core.Vec3 {
	scale := math.Pow(10, float64(places))
	return core.Vec3{
		X: math.Round(v.X*scale) / scale,
		Y: math.Round(v.Y*scale) / scale,
		Z: math.Round(v.Z*scale) / scale,
	}
}
