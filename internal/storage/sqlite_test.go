package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if err := store.RecordScore(score); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordScore((i + 1) * 100)
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// Empty store means absent, which coerces to 0
	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() on empty store = %d, expected 0", best)
	}

	store.RecordScore(12)
	store.RecordScore(30)
	store.RecordScore(7)

	best, err = store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 30 {
		t.Errorf("BestScore() = %d, expected 30", best)
	}
}

func TestStoreMalformedValueCoercesToZero(t *testing.T) {
	store := openTestStore(t)

	// SQLite columns are dynamically typed; a corrupted row can hold text.
	if _, err := store.db.Exec(
		"INSERT INTO high_scores (name, score) VALUES (?, ?)",
		scoreKey, "garbage",
	); err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() must not surface malformed values, got: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() with malformed row = %d, expected 0", best)
	}
}

func TestStoreNegativeValueCoercesToZero(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec(
		"INSERT INTO high_scores (name, score) VALUES (?, ?)",
		scoreKey, -5,
	); err != nil {
		t.Fatalf("raw insert failed: %v", err)
	}

	best, err := store.BestScore()
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("BestScore() with negative row = %d, expected 0", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordScore(10)
	store.RecordScore(20)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}
