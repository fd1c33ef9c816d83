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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreRecordAndList(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []struct {
		name  string
		score int
	}{{"kim", 100}, {"lee", 50}, {"park", 200}} {
		if err := store.RecordScore(e.name, e.score); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, err := store.ListTopScores()
	if err != nil {
		t.Fatalf("ListTopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []RankEntry{{Name: "park", Score: 200}, {Name: "kim", Score: 100}, {Name: "lee", Score: 50}}
	for i, want := range expected {
		if scores[i].Name != want.Name || scores[i].Score != want.Score {
			t.Errorf("rank %d = %s/%d, expected %s/%d", i+1, scores[i].Name, scores[i].Score, want.Name, want.Score)
		}
	}
}

func TestStoreKeepsTopTen(t *testing.T) {
	store := openTestStore(t)

	// Ten entries 100..1000, then an eleventh below all of them.
	for i := 1; i <= 10; i++ {
		if err := store.RecordScore(fmt.Sprintf("p%d", i), i*100); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}
	if err := store.RecordScore("late", 5); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	scores, err := store.TopScores(100)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != RankingSize {
		t.Fatalf("Expected %d entries, got %d", RankingSize, len(scores))
	}
	for _, e := range scores {
		if e.Name == "late" {
			t.Error("lowest score should have been pruned")
		}
	}

	// A high score pushes out the lowest entry.
	if err := store.RecordScore("champ", 5000); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	scores, _ = store.ListTopScores()
	if scores[0].Name != "champ" {
		t.Errorf("Expected champ first, got %s", scores[0].Name)
	}
	if last := scores[len(scores)-1]; last.Score != 200 {
		t.Errorf("Expected 100 to drop out, lowest is now %d", last.Score)
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"first", "second", "third"} {
		if err := store.RecordScore(name, 42); err != nil {
			t.Fatalf("RecordScore() failed: %v", err)
		}
	}

	scores, err := store.ListTopScores()
	if err != nil {
		t.Fatalf("ListTopScores() failed: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if scores[i].Name != want {
			t.Errorf("rank %d = %s, expected %s", i+1, scores[i].Name, want)
		}
	}
}

func TestStoreNormalizesNames(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordScore("   ", 10); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	if err := store.RecordScore("averyverylongname", 20); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}

	scores, _ := store.ListTopScores()
	if scores[0].Name != "averyver" {
		t.Errorf("Expected truncated name, got %q", scores[0].Name)
	}
	if scores[1].Name != DefaultName {
		t.Errorf("Expected %q for blank name, got %q", DefaultName, scores[1].Name)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty ranking, got %d", high)
	}

	store.RecordScore("a", 100)
	store.RecordScore("b", 300)
	store.RecordScore("c", 200)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordScore("a", 100)
	store.SaveGame(GameResult{Name: "a", Score: 100})

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.ListTopScores()
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	stats, _ := store.Stats()
	if stats.GamesCount != 1 {
		t.Errorf("Clearing the ranking should keep history, got %d games", stats.GamesCount)
	}
}

func TestStoreGameHistory(t *testing.T) {
	store := openTestStore(t)

	games := []GameResult{
		{Name: "kim", Score: 120, Merges: 30, MaxTier: 5, Duration: 90 * time.Second},
		{Name: "lee", Score: 40, Merges: 12, MaxTier: 3, Duration: 30 * time.Second},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	recent, err := store.RecentGames(10)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Name != "lee" {
		t.Fatalf("Expected newest first, got %+v", recent)
	}
	if recent[1].Duration != 90*time.Second || recent[1].MaxTier != 5 {
		t.Errorf("history row = %+v", recent[1])
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 120 || stats.BestTier != 5 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 80 {
		t.Errorf("Expected average 80, got %v", stats.AvgScore)
	}
	if stats.TotalMerges != 42 || stats.PlayTime != 2*time.Minute {
		t.Errorf("totals = %d merges, %v play time", stats.TotalMerges, stats.PlayTime)
	}
}

func TestStoreStatsEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.suika/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".suika", "scores.db")); err != nil {
		t.Errorf("Database not created under home: %v", err)
	}
}
