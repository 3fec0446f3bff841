package score

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileInitializes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hi_score.json")

	if got := Load(path); got != 0 {
		t.Errorf("Load() = %d on a missing file, expected 0", got)
	}

	// Load writes a valid default record back so the next run finds one.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default record not written: %v", err)
	}
	if string(data) != `{"hi_score":0}` {
		t.Errorf("default record = %s", data)
	}
}

func TestLoadMalformedFileResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hi_score.json")
	if err := os.WriteFile(path, []byte("not json{"), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := Load(path); got != 0 {
		t.Errorf("Load() = %d on a malformed file, expected 0", got)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", "hi_score.json")

	if err := Save(path, 4350); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := Load(path); got != 4350 {
		t.Errorf("Load() = %d, expected 4350", got)
	}
}

func TestLoadSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hi_score.json")

	if err := Save(path, 100); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, 250); err != nil {
		t.Fatal(err)
	}

	if got := Load(path); got != 250 {
		t.Errorf("Load() = %d, expected the latest save 250", got)
	}
}
