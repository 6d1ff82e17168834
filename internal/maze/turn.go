package maze

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
)

const (
	// TurnDegreesPerSpeed converts one turn speed unit into degrees per second.
	TurnDegreesPerSpeed = 100.0

	// TurnSnapEpsilon is the remaining rotation below which a turn is finished.
	TurnSnapEpsilon = 1.0
)

// AdvanceTurn rotates the pose toward the pending turn by one tick and
// reports whether the turn finished on this tick.
//
// Each tick removes TurnSpeed*dt*100 degrees from the pending magnitude and
// applies the same rotation to the pose. The step never exceeds what is left,
// so the sign of PendingTurn holds for the whole turn. Once less than
// TurnSnapEpsilon degrees remain the pending value becomes exactly zero and
// the pose lands on the nearest quarter heading.
func AdvanceTurn(st *State, pose *Pose, s core.Settings, dt float64) bool {
	if st.PendingTurn == 0 {
		return false
	}

	sign := core.Signum(st.PendingTurn)
	remaining := math.Abs(st.PendingTurn)

	step := float64(s.TurnSpeed) * dt * TurnDegreesPerSpeed
	step = core.ClampF(step, 0, remaining)

	pose.Yaw += sign * step
	remaining -= step

	if remaining < TurnSnapEpsilon {
		pose.Yaw = snapQuarter(pose.Yaw + sign*remaining)
		st.PendingTurn = 0
		return true
	}

	st.PendingTurn = sign * remaining
	return false
}

// snapQuarter rounds a heading to the nearest multiple of 90 degrees in [0, 360).
func snapQuarter(yaw float64) float64 {
	return core.NormalizeDeg(math.Round(yaw/TurnCommit) * TurnCommit)
}
