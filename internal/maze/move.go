package maze

import "github.com/vovakirdan/mazewalk/internal/core"

const (
	// WalkUnitsPerSpeed converts one walk speed unit into world units per second.
	WalkUnitsPerSpeed = 4.0

	// arrivalPlaces is the precision the position is snapped to when a move ends.
	arrivalPlaces = 6
)

// AdvanceMove walks the pose along its forward axis by one tick and reports
// whether the move finished on this tick.
//
// PendingMove is clamped to zero first. The forward vector is rounded per
// component, so movement stays axis-aligned even if the heading carries
// float drift. The committed distance is always walked in full; nothing is
// re-checked mid-move.
func AdvanceMove(st *State, pose *Pose, s core.Settings, dt float64) bool {
	if st.PendingMove < 0 {
		st.PendingMove = 0
	}
	if st.PendingMove == 0 {
		return false
	}

	step := s.WalkSpeed * dt * WalkUnitsPerSpeed
	step = core.ClampF(step, 0, st.PendingMove)

	forward := pose.Forward().Round()
	pose.Position = pose.Position.Add(forward.Scale(step))
	st.PendingMove -= step

	if st.PendingMove <= 0 {
		st.PendingMove = 0
		pose.Position = snap(pose.Position, arrivalPlaces)
		return true
	}
	return false
}
