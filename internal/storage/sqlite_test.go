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

func TestStoreCreatesParentDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{Score: 100, Wave: 3, Kills: 12, Duration: 95, Difficulty: "normal"},
		{Score: 50, Wave: 2, Kills: 6, Duration: 40, Difficulty: "normal"},
		{Score: 200, Wave: 5, Kills: 31, Duration: 180, Difficulty: "hard"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Unexpected order: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].Wave != 5 || top[0].Kills != 31 || top[0].Difficulty != "hard" {
		t.Errorf("Run details lost: %+v", top[0])
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(RunEntry{Score: i * 10, Wave: 1, Difficulty: "normal"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 40 {
		t.Errorf("Expected best score 40, got %d", top[0].Score)
	}
}

func TestStoreRunsByDifficulty(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunEntry{
		{Score: 10, Wave: 1, Difficulty: "easy"},
		{Score: 20, Wave: 1, Difficulty: "hard"},
		{Score: 30, Wave: 2, Difficulty: "hard"},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	hard, err := store.RunsByDifficulty("hard", 10)
	if err != nil {
		t.Fatalf("RunsByDifficulty() failed: %v", err)
	}
	if len(hard) != 2 || hard[0].Score != 30 {
		t.Errorf("Unexpected hard runs: %+v", hard)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database returns 0
	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty database, got %d", score)
	}

	store.SaveRun(RunEntry{Score: 150, Wave: 4, Difficulty: "normal"})
	store.SaveRun(RunEntry{Score: 90, Wave: 2, Difficulty: "normal"})

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 150 {
		t.Errorf("Expected high score 150, got %d", score)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Score: 100, Wave: 1, Difficulty: "normal"})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(top))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Score: 100, Wave: 3, Kills: 10, Difficulty: "normal"})
	store.SaveRun(RunEntry{Score: 300, Wave: 7, Kills: 40, Difficulty: "normal"})

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.HighScore != 300 || stats.BestWave != 7 {
		t.Errorf("Unexpected bests: %+v", stats)
	}
	if stats.TotalKills != 50 {
		t.Errorf("Expected 50 total kills, got %d", stats.TotalKills)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %.1f", stats.AvgScore)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveRun(RunEntry{Score: 42, Wave: 2, Difficulty: "normal"})
	store.Close()

	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store2.Close()

	score, err := store2.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 42 {
		t.Errorf("Expected persisted score 42, got %d", score)
	}
}
