package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

func newTestSession(seed int64) *Session {
	return NewSession(config.Default(), seed, NewScoreTracker(nil))
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession(1)

	if s.State() != StateStart {
		t.Fatalf("new session state = %v, expected start", s.State())
	}

	// Ticks in the start state do nothing
	before := s.Bird()
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.Bird() != before {
		t.Error("bird must be static before the first flap")
	}
	if len(s.Snapshot().Pipes) != 0 {
		t.Error("no pipes may spawn before the first flap")
	}
}

func TestFlapStartsSession(t *testing.T) {
	s := newTestSession(1)
	cfg := config.Default()

	s.Flap()

	if s.State() != StatePlaying {
		t.Errorf("state after first flap = %v, expected playing", s.State())
	}
	if s.Bird().Velocity != cfg.Physics.FlapImpulse {
		t.Errorf("velocity after first flap = %v, expected %v", s.Bird().Velocity, cfg.Physics.FlapImpulse)
	}
}

func TestFlapWhilePlaying(t *testing.T) {
	s := newTestSession(1)
	cfg := config.Default()

	s.Flap()
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	s.Flap()
	if s.State() != StatePlaying {
		t.Errorf("state = %v, expected playing", s.State())
	}
	if s.Bird().Velocity != cfg.Physics.FlapImpulse {
		t.Errorf("velocity = %v, expected impulse %v", s.Bird().Velocity, cfg.Physics.FlapImpulse)
	}
}

func TestFreeFallEndsSession(t *testing.T) {
	s := newTestSession(1)

	s.Flap()
	ticks := 0
	for s.State() == StatePlaying && ticks < 100 {
		s.Tick()
		ticks++
	}

	// With gravity 0.8 and a 600-unit playfield the bird hits the ground
	// well before 100 ticks without further flaps.
	if s.State() != StateGameOver {
		t.Fatalf("state after %d gravity-only ticks = %v, expected game over", ticks, s.State())
	}
	if ticks >= 100 {
		t.Errorf("collision should fire before tick 100, took %d", ticks)
	}
}

func TestGameOverFreezesSimulation(t *testing.T) {
	s := newTestSession(1)

	s.Flap()
	for s.State() == StatePlaying {
		s.Tick()
	}

	snap := s.Snapshot()
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	after := s.Snapshot()

	if after.Bird != snap.Bird {
		t.Error("bird must not move after game over")
	}
	if after.Tick != snap.Tick {
		t.Error("tick counter must not advance after game over")
	}
	if len(after.Pipes) != len(snap.Pipes) {
		t.Error("pipes must not change after game over")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	s := newTestSession(1)
	cfg := config.Default()

	s.Flap()
	for s.State() == StatePlaying {
		s.Tick()
	}
	if s.State() != StateGameOver {
		t.Fatal("expected game over")
	}

	// Game-over's flap both restarts and launches in one action
	s.Flap()

	if s.State() != StatePlaying {
		t.Errorf("state after restart flap = %v, expected playing", s.State())
	}
	if s.Score() != 0 {
		t.Errorf("score after restart = %d, expected 0", s.Score())
	}
	if len(s.Snapshot().Pipes) != 0 {
		t.Error("pipes must be cleared on restart")
	}
	if s.Bird().Velocity != cfg.Physics.FlapImpulse {
		t.Errorf("velocity after restart = %v, expected impulse %v", s.Bird().Velocity, cfg.Physics.FlapImpulse)
	}
	if s.Bird().Y != cfg.Bird.StartY {
		t.Errorf("bird y after restart = %v, expected start position %v", s.Bird().Y, cfg.Bird.StartY)
	}
}

func TestHighScoreSurvivesRestart(t *testing.T) {
	tracker := NewScoreTracker(nil)
	s := NewSession(config.Default(), 1, tracker)

	// Simulate a finished session with score
	tracker.PipePassed()
	tracker.PipePassed()
	tracker.SessionEnded()

	s.Flap() // start
	if s.HighScore() != 2 {
		t.Errorf("high score = %d, expected 2 across sessions", s.HighScore())
	}
}

func TestPauseFreezesAndResumes(t *testing.T) {
	s := newTestSession(1)

	s.Flap()
	s.Tick()

	s.TogglePause()
	if s.State() != StatePaused {
		t.Fatalf("state = %v, expected paused", s.State())
	}

	before := s.Snapshot()
	s.Tick()
	s.Flap() // swallowed while frozen
	s.Tick()
	after := s.Snapshot()

	if after.Bird != before.Bird || after.Tick != before.Tick {
		t.Error("simulation must be frozen while paused")
	}

	s.TogglePause()
	if s.State() != StatePlaying {
		t.Errorf("state after unpause = %v, expected playing", s.State())
	}
}

func TestPauseOnlyFromPlaying(t *testing.T) {
	s := newTestSession(1)

	s.TogglePause()
	if s.State() != StateStart {
		t.Errorf("pause in start state changed state to %v", s.State())
	}

	s.Flap()
	for s.State() == StatePlaying {
		s.Tick()
	}
	s.TogglePause()
	if s.State() != StateGameOver {
		t.Errorf("pause in game over changed state to %v", s.State())
	}
}

func TestSessionDeterminism(t *testing.T) {
	// Same seed and input sequence must produce identical trajectories
	run := func() []Snapshot {
		s := newTestSession(12345)
		var snaps []Snapshot
		s.Flap()
		for i := 0; i < 400; i++ {
			if i%14 == 0 {
				s.Flap()
			}
			s.Tick()
			snaps = append(snaps, s.Snapshot())
			if s.State() == StateGameOver {
				break
			}
		}
		return snaps
	}

	a := run()
	b := run()

	if len(a) != len(b) {
		t.Fatalf("runs diverged in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Bird != b[i].Bird || a[i].Score != b[i].Score || a[i].State != b[i].State {
			t.Fatalf("runs diverged at tick %d: %+v vs %+v", i, a[i], b[i])
		}
		if len(a[i].Pipes) != len(b[i].Pipes) {
			t.Fatalf("pipe counts diverged at tick %d", i)
		}
		for j := range a[i].Pipes {
			if a[i].Pipes[j] != b[i].Pipes[j] {
				t.Fatalf("pipe %d diverged at tick %d", j, i)
			}
		}
	}
}

func TestScoreNeverExceedsPassCount(t *testing.T) {
	s := newTestSession(77)

	s.Flap()
	passes := 0
	for i := 0; i < 3000 && s.State() != StateGameOver; i++ {
		if i%13 == 0 {
			s.Flap()
		}
		before := s.Score()
		s.Tick()
		if s.Score() > before {
			passes += s.Score() - before
		}
	}

	if s.Score() != passes {
		t.Errorf("score %d != observed pass increments %d", s.Score(), passes)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestSession(3)

	s.Flap()
	for i := 0; i < 120; i++ {
		if i%12 == 0 {
			s.Flap()
		}
		s.Tick()
	}

	snap := s.Snapshot()
	if len(snap.Pipes) == 0 {
		t.Fatal("expected pipes in flight")
	}

	// Mutating the snapshot must not leak into the session
	snap.Pipes[0].X = -9999
	snap.Pipes[0].Passed = true

	fresh := s.Snapshot()
	if fresh.Pipes[0].X == -9999 {
		t.Error("snapshot mutation leaked into session state")
	}
}

func TestPipesSortedByX(t *testing.T) {
	s := newTestSession(8)

	s.Flap()
	for i := 0; i < 1500 && s.State() != StateGameOver; i++ {
		if i%12 == 0 {
			s.Flap()
		}
		s.Tick()
		snap := s.Snapshot()
		for j := 1; j < len(snap.Pipes); j++ {
			if snap.Pipes[j].X <= snap.Pipes[j-1].X {
				t.Fatalf("pipes out of order at tick %d: %v then %v",
					i, snap.Pipes[j-1].X, snap.Pipes[j].X)
			}
		}
	}
}
