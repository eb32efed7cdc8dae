package flappy

// Snapshot is the read-only view of a session handed to presentation sinks
// once per tick. Consumers never see internal mutation order; the pipe slice
// is a copy, so holding or mutating a snapshot cannot affect the session.
type Snapshot struct {
	Tick      uint64
	State     State
	Bird      Bird
	Pipes     []Pipe
	Score     int
	HighScore int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	pipes := make([]Pipe, len(s.pipes))
	copy(pipes, s.pipes)

	return Snapshot{
		Tick:      s.tick,
		State:     s.state,
		Bird:      s.bird,
		Pipes:     pipes,
		Score:     s.score.Score(),
		HighScore: s.score.HighScore(),
	}
}
