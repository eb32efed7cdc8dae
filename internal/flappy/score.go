package flappy

// HighScoreStore is the read/write contract with the external persistent
// score store. The store may be unavailable; implementations report errors
// and the tracker degrades to in-memory state, never failing the session.
type HighScoreStore interface {
	// BestScore returns the persisted best score, 0 when absent.
	BestScore() (int, error)

	// RecordScore persists a new best score.
	RecordScore(score int) error
}

// ScoreTracker counts pipe passes for the current session and keeps the
// process-lifetime high score. It outlives individual sessions so the high
// score stays monotonically non-decreasing across restarts.
type ScoreTracker struct {
	score     int
	highScore int
	store     HighScoreStore
}

// NewScoreTracker creates a tracker seeded from the store's persisted best.
// A nil store or a read failure starts the high score at 0.
func NewScoreTracker(store HighScoreStore) *ScoreTracker {
	t := &ScoreTracker{store: store}
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			t.highScore = best
		}
	}
	return t
}

// PipePassed increments the session score by exactly one. Idempotence per
// pipe is guaranteed by the pipe's own Passed flag, not by the tracker.
func (t *ScoreTracker) PipePassed() {
	t.score++
}

// SessionEnded finalizes the session. When the score beats the high score
// the in-memory value updates immediately and one persistence write is
// issued fire-and-forget: a slow or failing store never stalls the caller.
func (t *ScoreTracker) SessionEnded() {
	if t.score <= t.highScore {
		return
	}
	t.highScore = t.score

	if t.store != nil {
		go func(store HighScoreStore, score int) {
			// Write failure leaves the in-memory high score authoritative
			// for the process lifetime.
			_ = store.RecordScore(score)
		}(t.store, t.score)
	}
}

// Restart zeroes the session score. The high score is untouched.
func (t *ScoreTracker) Restart() {
	t.score = 0
}

// Score returns the current session score.
func (t *ScoreTracker) Score() int {
	return t.score
}

// HighScore returns the process-lifetime high score.
func (t *ScoreTracker) HighScore() int {
	return t.highScore
}
