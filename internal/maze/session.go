package maze

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// Config holds the presentation tuning a session is created with.
type Config struct {
	StepPeriod  float64 // Seconds between footsteps at walk speed 1
	MusicVolume float64 // Volume of the background loop (0..1)
	TurnVolume  float64 // Volume of the turning loop (0..1)
}

// DefaultConfig returns the tuning the maze ships with.
func DefaultConfig() Config {
	return Config{
		StepPeriod:  0.25,
		MusicVolume: 0.2,
		TurnVolume:  0.2,
	}
}

// EntityKind tags what an entity in the session container is.
type EntityKind int

const (
	EntityScene EntityKind = iota
	EntityPlayer
	EntitySound
)

// Entity is one maze-owned object. Only players carry a pose and only
// sounds carry a loop.
type Entity struct {
	Kind EntityKind
	Pose Pose
	Loop Loop
}

// Stats summarizes one visit to the maze.
type Stats struct {
	Ticks         int
	Elapsed       float64 // Simulated seconds
	Turns         int     // Turns committed by the pointer
	MovesApproved int     // Moves approved by the collision gate
	Blocked       int     // Idle casts that found a wall ahead
	CellsWalked   int     // Moves walked to completion
	Footsteps     uint32
}

// Session owns every maze entity between Enter and Exit and advances the
// walker one tick at a time. It is not safe for concurrent use; each
// terminal program drives its own session.
type Session struct {
	cfg    Config
	probe  Prober
	start  Pose
	out    Presenter
	logger *log.Logger

	active   bool
	entities []*Entity
	state    State
	feedback Feedback
	stats    Stats
	lastGate GateResult
}

// NewSession creates an inactive session. start is the pose the player
// spawns with on every Enter. A nil presenter or logger discards output.
func NewSession(cfg Config, probe Prober, start Pose, out Presenter, logger *log.Logger) *Session {
	if out == nil {
		out = NopPresenter{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		cfg:      cfg,
		probe:    probe,
		start:    start,
		out:      out,
		logger:   logger,
		feedback: NewFeedback(cfg.StepPeriod),
	}
}

// Enter builds the maze: scene, player, music and turn loop. Pending values,
// the step counter and the footstep timer start from zero. Entering an
// active session rebuilds it from scratch.
func (s *Session) Enter() {
	if s.active {
		s.teardown()
	}

	s.entities = append(s.entities,
		&Entity{Kind: EntityScene},
		&Entity{Kind: EntityPlayer, Pose: s.start},
		&Entity{Kind: EntitySound, Loop: LoopMusic},
		&Entity{Kind: EntitySound, Loop: LoopTurn},
	)
	s.out.StartLoop(LoopMusic, s.cfg.MusicVolume, true)
	s.out.StartLoop(LoopTurn, s.cfg.TurnVolume, false)

	s.state = State{}
	s.feedback.Reset()
	s.stats = Stats{}
	s.lastGate = GateSkipped
	s.active = true

	s.logger.Info("entered maze",
		"x", s.start.Position.X,
		"z", s.start.Position.Z,
		"yaw", s.start.Yaw,
	)
}

// Exit releases every maze-owned entity and returns the visit summary.
// A turn or move in flight is discarded. Exiting an inactive session is a no-op.
func (s *Session) Exit() Stats {
	if !s.active {
		return Stats{}
	}
	stats := s.stats
	stats.Footsteps = s.feedback.Steps
	s.teardown()

	s.logger.Info("left maze",
		"cells", stats.CellsWalked,
		"turns", stats.Turns,
		"footsteps", stats.Footsteps,
		"seconds", fmt.Sprintf("%.1f", stats.Elapsed),
	)
	return stats
}

func (s *Session) teardown() {
	for _, e := range s.entities {
		if e.Kind == EntitySound {
			s.out.StopLoop(e.Loop)
		}
	}
	clear(s.entities)
	s.entities = s.entities[:0]
	s.state = State{}
	s.active = false
}

// Active reports whether the session is between Enter and Exit.
func (s *Session) Active() bool {
	return s.active
}

// player returns the single live player, or an error if there is not exactly one.
func (s *Session) player() (*Entity, error) {
	var found *Entity
	count := 0
	for _, e := range s.entities {
		if e.Kind != EntityPlayer {
			continue
		}
		count++
		found = e
	}

	switch count {
	case 0:
		return nil, ErrNoPlayer
	case 1:
		return found, nil
	default:
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePlayers, count)
	}
}

// Tick advances the maze by dt seconds.
//
// The order is fixed: the turn in flight advances, then the pointer may
// commit a new turn, then the collision gate may approve a move, then the
// move advances, and finally feedback is emitted from the resulting state.
// Each stage sees the values written by the stages before it on the same
// tick. A turn committed on this tick starts rotating on the next one.
//
// Settings are read by value, so changes between ticks need no locking.
func (s *Session) Tick(dt float64, p core.Pointer, windowWidth float64, settings core.Settings) error {
	if !s.active {
		return ErrNotActive
	}
	player, err := s.player()
	if err != nil {
		return err
	}
	pose := &player.Pose

	AdvanceTurn(&s.state, pose, settings, dt)

	if SampleTurn(&s.state, p, windowWidth) {
		s.stats.Turns++
		s.logger.Debug("turn committed", "degrees", s.state.PendingTurn)
	}

	gate := GateMove(&s.state, *pose, s.probe)
	switch gate {
	case GateApproved:
		s.stats.MovesApproved++
		s.logger.Debug("move approved",
			"x", pose.Position.X,
			"z", pose.Position.Z,
			"yaw", pose.Yaw,
		)
	case GateBlocked, GateNoHits:
		if gate != s.lastGate {
			s.stats.Blocked++
			s.logger.Debug("move refused", "reason", gate)
		}
	}
	s.lastGate = gate

	if AdvanceMove(&s.state, pose, settings, dt) {
		s.stats.CellsWalked++
	}

	s.feedback.Apply(s.state, settings, dt, s.out)

	s.stats.Ticks++
	s.stats.Elapsed += dt
	return nil
}

// State returns the current pending values.
func (s *Session) State() State {
	return s.state
}

// Pose returns the player's pose. ok is false when there is not exactly one player.
func (s *Session) Pose() (pose Pose, ok bool) {
	player, err := s.player()
	if err != nil {
		return Pose{}, false
	}
	return player.Pose, true
}

// Entities returns how many maze-owned entities are alive.
func (s *Session) Entities() int {
	return len(s.entities)
}
