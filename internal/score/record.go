// Package score persists the all-time high score as a small JSON record.
// The sqlite score history is a separate concern (internal/storage); this
// file-based record is what seeds the in-game HI readout.
package score

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Record is the on-disk high score document.
type Record struct {
	HiScore int `json:"hi_score"`
}

// Load reads the high score from path. A missing or unparseable file is
// not an error: the record is re-initialized to zero and written back
// best-effort, so a fresh install starts with a valid file on disk.
func Load(path string) int {
	data, err := os.ReadFile(path)
	if err == nil {
		var rec Record
		if jsonErr := json.Unmarshal(data, &rec); jsonErr == nil {
			return rec.HiScore
		}
		log.Warn("high score file unreadable, resetting", "path", path)
	}

	if err := Save(path, 0); err != nil {
		log.Warn("failed to initialize high score file", "path", path, "error", err)
	}
	return 0
}

// Save writes the high score to path, creating parent directories as
// needed.
func Save(path string, hiScore int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	data, err := json.Marshal(Record{HiScore: hiScore})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
