package maze

import "github.com/vovakirdan/mazewalk/internal/core"

// Snapshot captures the walker state for determinism tests and the debug panel.
type Snapshot struct {
	Active      bool
	Tick        int
	X, Y, Z     float64
	Yaw         float64 // Normalized to [0, 360)
	PendingTurn float64
	PendingMove float64
	Phase       Phase
	Steps       uint32
	Stats       Stats
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Active:      s.active,
		Tick:        s.stats.Ticks,
		PendingTurn: s.state.PendingTurn,
		PendingMove: s.state.PendingMove,
		Phase:       s.state.Phase(),
		Steps:       s.feedback.Steps,
		Stats:       s.stats,
	}
	snap.Stats.Footsteps = s.feedback.Steps

	if pose, ok := s.Pose(); ok {
		snap.X = pose.Position.X
		snap.Y = pose.Position.Y
		snap.Z = pose.Position.Z
		snap.Yaw = core.NormalizeDeg(pose.Yaw)
	}
	return snap
}
