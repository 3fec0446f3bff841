package storage

import (
	"os"
	"path/filepath"
	"testing"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, e := range []struct {
		score, level int
	}{
		{100, 2},
		{50, 1},
		{200, 3},
	} {
		if _, err := store.SaveSession("invasion", e.score, e.level); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	sessions, err := store.TopSessions("invasion", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(sessions))
	}

	// Sorted by score descending
	if sessions[0].Score != 200 || sessions[1].Score != 100 || sessions[2].Score != 50 {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}
	if sessions[0].Level != 3 {
		t.Errorf("Expected top session at level 3, got %d", sessions[0].Level)
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession("invasion", (i+1)*100, i+1)
	}

	sessions, err := store.TopSessions("invasion", 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}

	if len(sessions) != 3 {
		t.Errorf("Expected 3 sessions with limit, got %d", len(sessions))
	}
	if sessions[0].Score != 500 || sessions[1].Score != 400 || sessions[2].Score != 300 {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invasion")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveSession("invasion", 100, 1)
	store.SaveSession("invasion", 300, 4)
	store.SaveSession("invasion", 200, 2)

	high, err = store.HighScore("invasion")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("invasion", 100, 1)
	store.SaveSession("invasion", 200, 2)
	store.SaveSession("other", 300, 1)

	if err := store.ClearSessions("invasion"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	sessions, _ := store.TopSessions("invasion", 10)
	if len(sessions) != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", len(sessions))
	}

	other, _ := store.TopSessions("other", 10)
	if len(other) != 1 {
		t.Error("Other games should not be affected by the clear")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession("invasion", 100, 1)
	store.SaveSession("invasion", 300, 4)

	stats, err := store.Stats("invasion")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.SessionCount != 2 {
		t.Errorf("SessionCount = %d, expected 2", stats.SessionCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.BestLevel != 4 {
		t.Errorf("BestLevel = %d, expected 4", stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
