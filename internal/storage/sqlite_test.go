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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	wins := []ResultEntry{
		{Won: true, Moves: 120, DurationSecs: 600, Seed: 1},
		{Won: true, Moves: 95, DurationSecs: 480, Seed: 2},
		{Won: true, Moves: 140, DurationSecs: 300, Seed: 3},
	}
	for _, e := range wins {
		if _, err := store.SaveResult(e); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// An abandoned game must not appear among wins
	if _, err := store.SaveResult(ResultEntry{Won: false, Moves: 30, DurationSecs: 90, Seed: 4}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	best, err := store.BestWins(10)
	if err != nil {
		t.Fatalf("BestWins() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 wins, got %d", len(best))
	}

	// Sorted by fewest moves
	if best[0].Moves != 95 || best[1].Moves != 120 || best[2].Moves != 140 {
		t.Errorf("Wins not sorted by moves: %d, %d, %d",
			best[0].Moves, best[1].Moves, best[2].Moves)
	}
	if !best[0].Won || best[0].Seed != 2 {
		t.Errorf("Best win should be seed 2, got %+v", best[0])
	}

	fastest, err := store.FastestWins(10)
	if err != nil {
		t.Fatalf("FastestWins() failed: %v", err)
	}
	if len(fastest) != 3 || fastest[0].DurationSecs != 300 {
		t.Errorf("Fastest win should take 300s, got %+v", fastest)
	}
}

func TestStoreBestWinsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(ResultEntry{Won: true, Moves: 100 + i*10, DurationSecs: 60, Seed: int64(i)})
	}

	best, err := store.BestWins(3)
	if err != nil {
		t.Fatalf("BestWins() failed: %v", err)
	}

	if len(best) != 3 {
		t.Errorf("Expected 3 wins with limit, got %d", len(best))
	}
	if best[0].Moves != 100 || best[1].Moves != 110 || best[2].Moves != 120 {
		t.Errorf("Wins not in expected order: %v", best)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveResult(ResultEntry{Won: i%2 == 0, Moves: 50 + i, DurationSecs: 100, Seed: int64(i)})
	}

	recent, err := store.RecentResults(0)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 20 {
		t.Errorf("Expected 20 results, got %d", len(recent))
	}

	// Most recent first: insertion order ties on created_at, id breaks them
	if recent[0].Seed != 19 {
		t.Errorf("Expected most recent result first (seed 19), got seed %d", recent[0].Seed)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// No games yet
	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.GamesWon != 0 || stats.WinRate() != 0 {
		t.Errorf("Empty store should have zero stats, got %+v", stats)
	}

	store.SaveResult(ResultEntry{Won: true, Moves: 110, DurationSecs: 420, Seed: 1})
	store.SaveResult(ResultEntry{Won: true, Moves: 90, DurationSecs: 510, Seed: 2})
	store.SaveResult(ResultEntry{Won: false, Moves: 40, DurationSecs: 120, Seed: 3})
	store.SaveResult(ResultEntry{Won: false, Moves: 20, DurationSecs: 60, Seed: 4})

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}

	if stats.GamesPlayed != 4 {
		t.Errorf("Expected 4 games played, got %d", stats.GamesPlayed)
	}
	if stats.GamesWon != 2 {
		t.Errorf("Expected 2 games won, got %d", stats.GamesWon)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("Expected win rate 0.5, got %f", stats.WinRate())
	}
	// Best moves/time only consider wins
	if stats.BestMoves != 90 {
		t.Errorf("Expected best moves 90, got %d", stats.BestMoves)
	}
	if stats.BestTimeSecs != 420 {
		t.Errorf("Expected best time 420, got %d", stats.BestTimeSecs)
	}
	if stats.AvgMoves != 65 {
		t.Errorf("Expected average moves 65, got %f", stats.AvgMoves)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(ResultEntry{Won: true, Moves: 100, DurationSecs: 300, Seed: 1})
	store.SaveResult(ResultEntry{Won: false, Moves: 10, DurationSecs: 30, Seed: 2})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	recent, _ := store.RecentResults(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(recent))
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
