package maze

import (
	"testing"

	"github.com/vovakirdan/mazewalk/internal/core"
)

func TestAdvanceMoveConverges(t *testing.T) {
	walkSpeeds := []float64{0.25, 0.5, 1.0, 1.7, 3.0}
	dts := []float64{1.0 / 60.0, 1.0 / 30.0, 1.0 / 144.0, 0.013}

	headings := []struct {
		yaw      float64
		expected core.Vec3
	}{
		{0, core.V3(1, 1, 3)},
		{90, core.V3(-1, 1, 5)},
		{180, core.V3(1, 1, 7)},
		{270, core.V3(3, 1, 5)},
	}

	for _, speed := range walkSpeeds {
		for _, dt := range dts {
			for _, h := range headings {
				settings := core.Settings{WalkSpeed: speed}
				st := State{PendingMove: MoveCommit}
				pose := Pose{Position: core.V3(1, 1, 5), Yaw: h.yaw}

				ticks := 0
				for st.PendingMove != 0 {
					before := st.PendingMove
					AdvanceMove(&st, &pose, settings, dt)
					ticks++

					if st.PendingMove < 0 {
						t.Fatalf("speed %v dt %v: PendingMove went negative: %v", speed, dt, st.PendingMove)
					}
					if st.PendingMove > before {
						t.Fatalf("speed %v dt %v: PendingMove grew from %v to %v", speed, dt, before, st.PendingMove)
					}
					if ticks > 100000 {
						t.Fatalf("speed %v dt %v: move did not converge", speed, dt)
					}
				}

				if pose.Position != h.expected {
					t.Errorf("speed %v dt %v yaw %v: position = %+v, expected %+v",
						speed, dt, h.yaw, pose.Position, h.expected)
				}
			}
		}
	}
}

func TestAdvanceMoveStep(t *testing.T) {
	// Walk speed 1 at dt 0.125 covers half a unit per tick.
	st := State{PendingMove: MoveCommit}
	pose := Pose{Position: core.V3(1, 1, 5)}

	done := AdvanceMove(&st, &pose, core.Settings{WalkSpeed: 1}, 0.125)

	if done {
		t.Error("Move should not finish after one tick")
	}
	if st.PendingMove != 1.5 {
		t.Errorf("PendingMove = %v, expected 1.5", st.PendingMove)
	}
	if pose.Position != core.V3(1, 1, 4.5) {
		t.Errorf("Position = %+v, expected (1, 1, 4.5)", pose.Position)
	}
}

func TestAdvanceMoveRoundsForward(t *testing.T) {
	// A heading carrying drift still moves along a single axis.
	st := State{PendingMove: MoveCommit}
	pose := Pose{Position: core.V3(3, 1, 3), Yaw: 89.4}

	for st.PendingMove != 0 {
		AdvanceMove(&st, &pose, core.DefaultSettings(), 1.0/60.0)
	}

	if pose.Position != core.V3(1, 1, 3) {
		t.Errorf("Position = %+v, expected (1, 1, 3)", pose.Position)
	}
}

func TestAdvanceMoveClampsNegative(t *testing.T) {
	st := State{PendingMove: -0.3}
	pose := Pose{Position: core.V3(1, 1, 5)}

	if AdvanceMove(&st, &pose, core.DefaultSettings(), 1.0/60.0) {
		t.Error("Clamped move should not report arrival")
	}
	if st.PendingMove != 0 {
		t.Errorf("PendingMove = %v, expected 0 after clamping", st.PendingMove)
	}
	if pose.Position != core.V3(1, 1, 5) {
		t.Errorf("Position = %+v, expected unchanged", pose.Position)
	}
}

func TestAdvanceMoveZeroSpeedHolds(t *testing.T) {
	st := State{PendingMove: MoveCommit}
	pose := Pose{Position: core.V3(1, 1, 5)}

	for i := 0; i < 100; i++ {
		AdvanceMove(&st, &pose, core.Settings{WalkSpeed: 0}, 1.0/60.0)
	}

	if st.PendingMove != MoveCommit {
		t.Errorf("PendingMove = %v, expected %v while walk speed is 0", st.PendingMove, MoveCommit)
	}
	if pose.Position != core.V3(1, 1, 5) {
		t.Errorf("Position = %+v, expected unchanged", pose.Position)
	}
}
