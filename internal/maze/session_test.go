package maze

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/mazewalk/internal/core"
)

const (
	testWidth = 900.0
	testDT    = 1.0 / 60.0
)

var (
	wallAhead = ProberFunc(func(_, _ core.Vec3) []Hit { return hitsAt(1.0) })
	openAhead = ProberFunc(func(_, _ core.Vec3) []Hit { return hitsAt(3.0) })
)

func testStart() Pose {
	return Pose{Position: core.V3(1, 1, 5)}
}

func newTestSession(probe Prober, out Presenter) *Session {
	return NewSession(DefaultConfig(), probe, testStart(), out, nil)
}

func TestSessionEnterExit(t *testing.T) {
	out := newRecorder()
	s := newTestSession(wallAhead, out)

	if s.Active() {
		t.Fatal("New session should be inactive")
	}

	s.Enter()

	if !s.Active() {
		t.Fatal("Session should be active after Enter")
	}
	if s.Entities() != 4 {
		t.Errorf("Entities = %d, expected 4", s.Entities())
	}
	if !out.playing[LoopMusic] {
		t.Error("Music loop should start playing")
	}
	if out.playing[LoopTurn] {
		t.Error("Turn loop should start paused")
	}
	if out.volume[LoopMusic] != 0.2 || out.volume[LoopTurn] != 0.2 {
		t.Errorf("Loop volumes = %v, expected 0.2 each", out.volume)
	}
	pose, ok := s.Pose()
	if !ok || pose != testStart() {
		t.Errorf("Pose() = %+v, %v; expected start pose", pose, ok)
	}

	s.Exit()

	if s.Active() {
		t.Error("Session should be inactive after Exit")
	}
	if s.Entities() != 0 {
		t.Errorf("Entities = %d after Exit, expected 0", s.Entities())
	}
	if len(out.stopped) != 2 {
		t.Errorf("Stopped loops = %v, expected both loops", out.stopped)
	}
	if _, ok := s.Pose(); ok {
		t.Error("Pose() should report no player after Exit")
	}

	// A second Exit is a no-op.
	s.Exit()
	if len(out.stopped) != 2 {
		t.Errorf("Second Exit stopped more loops: %v", out.stopped)
	}
}

func TestSessionReenterStartsFresh(t *testing.T) {
	out := newRecorder()
	s := newTestSession(openAhead, out)
	s.Enter()

	for i := 0; i < 10; i++ {
		if err := s.Tick(testDT, core.NoPointer, testWidth, core.DefaultSettings()); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}
	if s.State().PendingMove == 0 {
		t.Fatal("Expected a move in flight before re-entering")
	}

	s.Exit()
	s.Enter()

	if s.Entities() != 4 {
		t.Errorf("Entities = %d after re-entering, expected 4", s.Entities())
	}
	if s.State() != (State{}) {
		t.Errorf("State = %+v after re-entering, expected zero", s.State())
	}
	if snap := s.Snapshot(); snap.Steps != 0 || snap.Stats.Ticks != 0 {
		t.Errorf("Snapshot = %+v, expected fresh counters", snap)
	}
	pose, _ := s.Pose()
	if pose != testStart() {
		t.Errorf("Pose = %+v after re-entering, expected start", pose)
	}
}

func TestSessionEnterTwiceDoesNotLeak(t *testing.T) {
	out := newRecorder()
	s := newTestSession(wallAhead, out)

	s.Enter()
	s.Enter()

	if s.Entities() != 4 {
		t.Errorf("Entities = %d, expected 4", s.Entities())
	}
	if len(out.stopped) != 2 {
		t.Errorf("Expected the first loops to be stopped, got %v", out.stopped)
	}
}

func TestSessionTickErrors(t *testing.T) {
	s := newTestSession(wallAhead, nil)

	err := s.Tick(testDT, core.NoPointer, testWidth, core.DefaultSettings())
	if !errors.Is(err, ErrNotActive) {
		t.Errorf("Tick() before Enter error = %v, expected ErrNotActive", err)
	}

	s.Enter()
	s.entities = append(s.entities, &Entity{Kind: EntityPlayer})
	err = s.Tick(testDT, core.NoPointer, testWidth, core.DefaultSettings())
	if !errors.Is(err, ErrMultiplePlayers) {
		t.Errorf("Tick() with two players error = %v, expected ErrMultiplePlayers", err)
	}

	s.Enter()
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Kind != EntityPlayer {
			kept = append(kept, e)
		}
	}
	s.entities = kept
	err = s.Tick(testDT, core.NoPointer, testWidth, core.DefaultSettings())
	if !errors.Is(err, ErrNoPlayer) {
		t.Errorf("Tick() without a player error = %v, expected ErrNoPlayer", err)
	}
}

func TestSessionPointerCommitsTurn(t *testing.T) {
	s := newTestSession(openAhead, nil)
	s.Enter()

	if err := s.Tick(testDT, core.PointerAt(0, 10), testWidth, core.DefaultSettings()); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	st := s.State()
	if st.PendingTurn != TurnCommit {
		t.Errorf("PendingTurn = %v, expected exactly %v", st.PendingTurn, TurnCommit)
	}
	if st.PendingMove != 0 {
		t.Errorf("PendingMove = %v, expected 0 while a turn is pending", st.PendingMove)
	}
}

func TestSessionCenterFacingWallStaysIdle(t *testing.T) {
	s := newTestSession(wallAhead, nil)
	s.Enter()

	for i := 0; i < 120; i++ {
		if err := s.Tick(testDT, core.PointerAt(450, 10), testWidth, core.DefaultSettings()); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}

	if st := s.State(); st != (State{}) {
		t.Errorf("State = %+v, expected idle", st)
	}
	pose, _ := s.Pose()
	if pose != testStart() {
		t.Errorf("Pose = %+v, expected unchanged", pose)
	}
	// Facing the same wall is counted once.
	if got := s.Snapshot().Stats.Blocked; got != 1 {
		t.Errorf("Blocked = %d, expected 1", got)
	}
}

func TestSessionWalksOneCell(t *testing.T) {
	casts := 0
	probe := ProberFunc(func(_, _ core.Vec3) []Hit {
		casts++
		if casts == 1 {
			return hitsAt(3.0)
		}
		return hitsAt(1.0)
	})
	out := newRecorder()
	s := newTestSession(probe, out)
	s.Enter()

	for i := 0; i < 60; i++ {
		if err := s.Tick(testDT, core.NoPointer, testWidth, core.DefaultSettings()); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}

	pose, _ := s.Pose()
	if pose.Position != core.V3(1, 1, 3) {
		t.Errorf("Position = %+v, expected (1, 1, 3)", pose.Position)
	}
	if pose.Yaw != 0 {
		t.Errorf("Yaw = %v, expected 0", pose.Yaw)
	}

	stats := s.Exit()
	if stats.MovesApproved != 1 {
		t.Errorf("MovesApproved = %d, expected 1", stats.MovesApproved)
	}
	if stats.CellsWalked != 1 {
		t.Errorf("CellsWalked = %d, expected 1", stats.CellsWalked)
	}
	if stats.Blocked != 1 {
		t.Errorf("Blocked = %d, expected 1", stats.Blocked)
	}
	if stats.Footsteps == 0 || int(stats.Footsteps) != len(out.cues) {
		t.Errorf("Footsteps = %d, cues = %v; expected one cue per step", stats.Footsteps, out.cues)
	}
	if len(out.cues) > 0 && out.cues[0] != CueStepB {
		t.Errorf("First cue = %v, expected %v", out.cues[0], CueStepB)
	}
	if stats.Ticks != 60 {
		t.Errorf("Ticks = %d, expected 60", stats.Ticks)
	}
}

func TestSessionHoldingSideSpins(t *testing.T) {
	s := newTestSession(openAhead, nil)
	s.Enter()

	for i := 0; i < 300; i++ {
		if err := s.Tick(testDT, core.PointerAt(10, 10), testWidth, core.DefaultSettings()); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
		if s.State().PendingMove != 0 {
			t.Fatalf("Tick %d: a move was approved while the pointer held a side", i)
		}
	}

	pose, _ := s.Pose()
	if pose.Position != testStart().Position {
		t.Errorf("Position = %+v, expected unchanged", pose.Position)
	}
	if turns := s.Snapshot().Stats.Turns; turns < 5 {
		t.Errorf("Turns = %d, expected continuous spinning", turns)
	}
}

func TestSessionTurnAndMoveAreExclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := newTestSession(openAhead, nil)
	s.Enter()

	for i := 0; i < 5000; i++ {
		var p core.Pointer
		switch rng.Intn(4) {
		case 0:
			p = core.NoPointer
		default:
			p = core.PointerAt(rng.Float64()*testWidth, 10)
		}
		if err := s.Tick(testDT, p, testWidth, core.DefaultSettings()); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}

		st := s.State()
		if st.PendingTurn != 0 && st.PendingMove != 0 {
			t.Fatalf("Tick %d: turn %v and move %v pending together", i, st.PendingTurn, st.PendingMove)
		}
		if st.PendingMove < 0 || st.PendingMove > MoveCommit {
			t.Fatalf("Tick %d: PendingMove %v out of range", i, st.PendingMove)
		}
		if st.PendingTurn < -TurnCommit || st.PendingTurn > TurnCommit {
			t.Fatalf("Tick %d: PendingTurn %v out of range", i, st.PendingTurn)
		}
	}
}

func TestSessionIdleHeadingIsQuarter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := newTestSession(wallAhead, nil)
	s.Enter()

	for i := 0; i < 3000; i++ {
		p := core.PointerAt(rng.Float64()*testWidth, 10)
		if err := s.Tick(testDT, p, testWidth, core.Settings{TurnSpeed: 1 + rng.Intn(3), WalkSpeed: 1, FieldOfView: 90}); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
		if s.State().PendingTurn != 0 {
			continue
		}
		pose, _ := s.Pose()
		switch pose.Yaw {
		case 0, 90, 180, 270:
		default:
			t.Fatalf("Tick %d: idle yaw = %v, expected a quarter heading", i, pose.Yaw)
		}
	}
}

func TestSessionDeterministic(t *testing.T) {
	run := func() Snapshot {
		rng := rand.New(rand.NewSource(99))
		s := newTestSession(openAhead, nil)
		s.Enter()
		for i := 0; i < 2000; i++ {
			p := core.NoPointer
			if rng.Intn(3) > 0 {
				p = core.PointerAt(rng.Float64()*testWidth, 0)
			}
			_ = s.Tick(testDT, p, testWidth, core.DefaultSettings())
		}
		return s.Snapshot()
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("Runs diverged:\n%+v\n%+v", first, second)
	}
}
