package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazewalk/internal/maze"
)

// captionTTL is how long a cue caption stays on screen, in seconds.
const captionTTL = 0.6

// Caption is a short text standing in for a sound.
type Caption struct {
	Text string
	ttl  float64
}

type loopState struct {
	volume  float64
	playing bool
}

// TerminalPresenter implements maze.Presenter for a terminal: the field of
// view goes to the camera, cues become captions and optionally the
// terminal bell, and loops become status indicators.
type TerminalPresenter struct {
	fov      float64
	loops    map[maze.Loop]loopState
	captions []Caption
	bell     bool
	ring     bool
	logger   *log.Logger
}

// NewTerminalPresenter creates a presenter. bell rings the terminal bell on
// every footstep.
func NewTerminalPresenter(fov float64, bell bool, logger *log.Logger) *TerminalPresenter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TerminalPresenter{
		fov:    fov,
		loops:  make(map[maze.Loop]loopState),
		bell:   bell,
		logger: logger,
	}
}

// SetFieldOfView implements maze.Presenter.
func (p *TerminalPresenter) SetFieldOfView(degrees float64) {
	p.fov = degrees
}

// PlayCue implements maze.Presenter.
func (p *TerminalPresenter) PlayCue(c maze.Cue) {
	text := "tap"
	if c == maze.CueStepB {
		text = "tok"
	}
	p.captions = append(p.captions, Caption{Text: text, ttl: captionTTL})
	if len(p.captions) > 4 {
		p.captions = p.captions[len(p.captions)-4:]
	}
	if p.bell {
		p.ring = true
	}
}

// StartLoop implements maze.Presenter.
func (p *TerminalPresenter) StartLoop(l maze.Loop, volume float64, playing bool) {
	p.loops[l] = loopState{volume: volume, playing: playing}
	p.logger.Debug("loop started", "loop", l, "volume", volume, "playing", playing)
}

// SetLoopPlaying implements maze.Presenter. Unknown loops are ignored.
func (p *TerminalPresenter) SetLoopPlaying(l maze.Loop, playing bool) {
	st, ok := p.loops[l]
	if !ok {
		return
	}
	st.playing = playing
	p.loops[l] = st
}

// StopLoop implements maze.Presenter.
func (p *TerminalPresenter) StopLoop(l maze.Loop) {
	if _, ok := p.loops[l]; !ok {
		return
	}
	delete(p.loops, l)
	p.logger.Debug("loop stopped", "loop", l)
}

// Advance ages captions by dt seconds and drops expired ones.
func (p *TerminalPresenter) Advance(dt float64) {
	kept := p.captions[:0]
	for _, c := range p.captions {
		c.ttl -= dt
		if c.ttl > 0 {
			kept = append(kept, c)
		}
	}
	p.captions = kept
}

// FieldOfView returns the last field of view pushed by the maze.
func (p *TerminalPresenter) FieldOfView() float64 {
	return p.fov
}

// LoopPlaying reports whether a loop exists and is playing.
func (p *TerminalPresenter) LoopPlaying(l maze.Loop) bool {
	return p.loops[l].playing
}

// LoopVolume returns a loop's volume, or 0 if it does not exist.
func (p *TerminalPresenter) LoopVolume(l maze.Loop) float64 {
	return p.loops[l].volume
}

// Loops returns how many loops are alive.
func (p *TerminalPresenter) Loops() int {
	return len(p.loops)
}

// Captions returns the visible caption texts, oldest first.
func (p *TerminalPresenter) Captions() []string {
	out := make([]string, len(p.captions))
	for i, c := range p.captions {
		out[i] = c.Text
	}
	return out
}

// TakeBell reports whether the bell should ring and clears the request.
func (p *TerminalPresenter) TakeBell() bool {
	ring := p.ring
	p.ring = false
	return ring
}

var _ maze.Presenter = (*TerminalPresenter)(nil)
