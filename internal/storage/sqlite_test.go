package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, gameID string, score, level int) {
	t.Helper()
	matchID := fmt.Sprintf("%s-%d-%d", gameID, score, time.Now().UnixNano())
	if _, err := s.SaveScore(gameID, matchID, "tester", score, level); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("shooter", "m-1", "alice", 14, 2); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	mustSave(t, store, "shooter", 3, 1)
	mustSave(t, store, "shooter", 30, 3)
	mustSave(t, store, "other", 500, 9)

	scores, err := store.TopScores("shooter", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 30 || scores[1].Score != 14 || scores[2].Score != 3 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}

	alice := scores[1]
	if alice.MatchID != "m-1" || alice.Player != "alice" || alice.Level != 2 || alice.GameID != "shooter" {
		t.Errorf("Entry fields not round-tripped: %+v", alice)
	}
	if alice.CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}
}

func TestStoreRejectsDuplicateMatch(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("shooter", "same", "p", 5, 1); err != nil {
		t.Fatalf("first SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("shooter", "same", "p", 5, 1); err == nil {
		t.Error("saving the same match twice should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*10, 1)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("non-positive limit should fall back to 10, got %d rows", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "shooter", 10, 1)
	mustSave(t, store, "shooter", 30, 3)
	mustSave(t, store, "shooter", 20, 2)

	high, err = store.HighScore("shooter")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "shooter", 10, 1)
	mustSave(t, store, "shooter", 20, 2)
	mustSave(t, store, "other", 30, 3)

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("shooter", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing shooter")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() on empty table failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty game: %+v", empty)
	}

	mustSave(t, store, "shooter", 12, 2)
	mustSave(t, store, "shooter", 24, 3)
	mustSave(t, store, "shooter", 0, 1)

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 24 || stats.BestLevel != 3 || stats.TotalScore != 36 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 12 {
		t.Errorf("AvgScore = %v, expected 12", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
