package maze

import (
	"math"

	"github.com/vovakirdan/mazewalk/internal/core"
)

// Cue is a one-shot sound.
type Cue int

const (
	CueStepA Cue = iota // Footstep played on even steps
	CueStepB            // Footstep played on odd steps
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueStepA:
		return "step_a"
	case CueStepB:
		return "step_b"
	default:
		return "unknown"
	}
}

// Loop is a looping sound owned by the maze session.
type Loop int

const (
	LoopMusic Loop = iota // Background music
	LoopTurn              // Plays while the player is turning
)

// String returns a human-readable name for the loop.
func (l Loop) String() string {
	switch l {
	case LoopMusic:
		return "music"
	case LoopTurn:
		return "turn"
	default:
		return "unknown"
	}
}

// Presenter receives fire-and-forget audio and camera requests.
// The maze never reads anything back from it.
type Presenter interface {
	SetFieldOfView(degrees float64)
	PlayCue(c Cue)
	StartLoop(l Loop, volume float64, playing bool)
	SetLoopPlaying(l Loop, playing bool)
	StopLoop(l Loop)
}

// NopPresenter discards every request.
type NopPresenter struct{}

func (NopPresenter) SetFieldOfView(float64) {}
func (NopPresenter) PlayCue(Cue) {}
func (NopPresenter) StartLoop(Loop, float64, bool) {}
func (NopPresenter) SetLoopPlaying(Loop, bool) {}
func (NopPresenter) StopLoop(Loop) {}

// StepTimer is a repeating timer measured in seconds.
type StepTimer struct {
	Period  float64
	elapsed float64
}

// Tick advances the timer by d seconds and reports whether a period elapsed.
// Overshoot carries into the next period; at most one finish is reported per call.
func (t *StepTimer) Tick(d float64) bool {
	if t.Period <= 0 {
		return false
	}
	t.elapsed += d
	if t.elapsed < t.Period {
		return false
	}
	t.elapsed = math.Mod(t.elapsed, t.Period)
	return true
}

// Reset rewinds the timer to the start of a period.
func (t *StepTimer) Reset() {
	t.elapsed = 0
}

// CueForStep picks the footstep for the n-th step: even steps play A, odd play B.
func CueForStep(n uint32) Cue {
	if n%2 == 0 {
		return CueStepA
	}
	return CueStepB
}

// Feedback turns the walker state into presentation requests.
// It reads State and Settings and never writes back to them.
type Feedback struct {
	Timer StepTimer
	Steps uint32
}

// NewFeedback creates feedback with the given footstep period in seconds.
func NewFeedback(stepPeriod float64) Feedback {
	return Feedback{Timer: StepTimer{Period: stepPeriod}}
}

// Reset clears the step counter and rewinds the footstep timer.
func (f *Feedback) Reset() {
	f.Steps = 0
	f.Timer.Reset()
}

// Apply emits this tick's requests. It reports whether a footstep played.
func (f *Feedback) Apply(st State, s core.Settings, dt float64, out Presenter) bool {
	out.SetFieldOfView(s.FieldOfView)

	stepped := false
	if st.PendingMove != 0 && f.Timer.Tick(dt*s.WalkSpeed) {
		f.Steps++
		out.PlayCue(CueForStep(f.Steps))
		stepped = true
	}

	out.SetLoopPlaying(LoopTurn, st.PendingTurn != 0)
	return stepped
}
