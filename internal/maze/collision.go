package maze

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// MoveCommit is the distance approved by one successful collision check.
// Maze cells are two units across, so an approved move crosses one cell.
const MoveCommit = 2.0

// Hit is one intersection reported by a Prober.
type Hit struct {
	Distance float64
}

// Prober casts rays against the maze geometry.
// Implementations return hits ordered from nearest to farthest.
type Prober interface {
	Cast(origin, dir core.Vec3) []Hit
}

// ProberFunc adapts a plain function to the Prober interface.
type ProberFunc func(origin, dir core.Vec3) []Hit

// Cast calls f(origin, dir).
func (f ProberFunc) Cast(origin, dir core.Vec3) []Hit {
	return f(origin, dir)
}

// GateResult describes what the collision gate decided on one tick.
type GateResult int

const (
	GateSkipped  GateResult = iota // Walker was not idle, nothing was cast
	GateApproved                   // A move of MoveCommit was approved
	GateBlocked                    // The ray hit a wall one unit ahead
	GateNoHits                     // The ray hit nothing; no move is approved
)

// String returns a human-readable name for the gate result.
func (r GateResult) String() string {
	switch r {
	case GateSkipped:
		return "skipped"
	case GateApproved:
		return "approved"
	case GateBlocked:
		return "blocked"
	case GateNoHits:
		return "no_hits"
	default:
		return "unknown"
	}
}

// GateMove casts a ray along the pose's forward axis while the walker is idle.
// A hit whose distance rounds to exactly 1.0 is a wall directly ahead; any
// other hit approves a move of MoveCommit.
func GateMove(st *State, pose Pose, probe Prober) GateResult {
	if !st.Idle() {
		return GateSkipped
	}

	hits := probe.Cast(pose.Position, pose.Forward())
	if len(hits) == 0 {
		return GateNoHits
	}

	for _, hit := range hits {
		if math.Round(hit.Distance) != 1.0 {
			st.PendingMove = MoveCommit
		}
	}

	if st.PendingMove > 0 {
		return GateApproved
	}
	return GateBlocked
}
