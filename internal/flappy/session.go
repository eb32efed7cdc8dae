// Package flappy implements the game simulation: per-tick physics, obstacle
// lifecycle, collision detection, scoring, and the session state machine.
// The package has no notion of time or terminals; an external driver calls
// Tick and Flap, and reads Snapshot for presentation.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

// State is the session state machine position.
type State int

const (
	StateStart    State = iota // Idle: bird static, no pipes, waiting for first flap
	StatePlaying               // Simulation active
	StatePaused                // Simulation frozen, resumable
	StateGameOver              // Simulation frozen, collision recorded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is one play-through's complete mutable state. All mutation goes
// through Flap, TogglePause and Tick; nothing else holds hidden state.
type Session struct {
	cfg   config.Config
	state State
	bird  Bird
	pipes []Pipe
	rng   *rand.Rand
	score *ScoreTracker
	tick  uint64
}

// NewSession creates a session in the start state with the given RNG seed.
// The tracker is injected rather than owned so the high score survives
// session restarts.
func NewSession(cfg config.Config, seed int64, score *ScoreTracker) *Session {
	s := &Session{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		score: score,
	}
	s.restart()
	s.state = StateStart
	return s
}

// restart puts the bird and pipes back to their initial positions and
// zeroes the session score.
func (s *Session) restart() {
	s.bird = Bird{
		X: s.cfg.Bird.X,
		Y: s.cfg.Bird.StartY,
	}
	s.pipes = s.pipes[:0]
	s.tick = 0
	s.score.Restart()
}

// Flap injects one player impulse. Depending on the current state it starts
// the session, applies the impulse mid-flight, or restarts after game over.
// Repeated flaps before the next tick re-apply the impulse; they never
// accumulate.
func (s *Session) Flap() {
	switch s.state {
	case StateStart:
		s.state = StatePlaying
		s.bird = FlapBird(s.bird, s.cfg.Physics)
	case StatePlaying:
		s.bird = FlapBird(s.bird, s.cfg.Physics)
	case StateGameOver:
		// Restart and launch in one action
		s.restart()
		s.state = StatePlaying
		s.bird = FlapBird(s.bird, s.cfg.Physics)
	case StatePaused:
		// Flaps are swallowed while frozen
	}
}

// TogglePause freezes or resumes an active session. No-op in any other state.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// Tick advances the simulation by one step. Outside the playing state it is
// a no-op. The pipeline order is fixed: physics, then obstacle advancement
// with pass detection against the bird's fixed x, then the collision check
// against the post-advance state. Reorderings change scoring frames, so the
// sequence is part of the contract.
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	s.tick++

	s.bird = AdvanceBird(s.bird, s.cfg.Physics)

	var passed int
	s.pipes, passed = AdvancePipes(s.pipes, s.rng, s.cfg)
	for i := 0; i < passed; i++ {
		s.score.PipePassed()
	}

	if Colliding(s.bird, s.pipes, s.cfg) {
		s.state = StateGameOver
		s.score.SessionEnded()
	}
}

// State returns the current state machine position.
func (s *Session) State() State {
	return s.state
}

// Score returns the current session score.
func (s *Session) Score() int {
	return s.score.Score()
}

// HighScore returns the process-lifetime high score.
func (s *Session) HighScore() int {
	return s.score.HighScore()
}

// Bird returns the bird's current state.
func (s *Session) Bird() Bird {
	return s.bird
}
