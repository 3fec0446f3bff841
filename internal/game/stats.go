package game

import "github.com/okhromenko/tui-invasion/internal/config"

// Stats tracks the session counters: lives, score, level, plus the
// process-lifetime maximum and the persisted all-time high.
type Stats struct {
	settings *config.Settings

	Lives    int
	Score    int
	Level    int
	MaxScore int // best score this process lifetime
	HiScore  int // all-time best, persisted across runs
}

// NewStats creates stats seeded with the persisted all-time high score.
func NewStats(settings *config.Settings, hiScore int) *Stats {
	st := &Stats{settings: settings, HiScore: hiScore}
	st.Reset()
	return st
}

// Reset restores the per-session counters for a fresh session. MaxScore
// and HiScore survive the reset.
func (st *Stats) Reset() {
	st.Lives = st.settings.Gameplay.StartingLives
	st.Score = 0
	st.Level = 1
}

// RecordKills adds the point value of n destroyed aliens to the score and
// raises the running maximum and the all-time high when exceeded.
func (st *Stats) RecordKills(n int) {
	st.Score += n * st.settings.Fleet.AlienPoints
	if st.Score > st.MaxScore {
		st.MaxScore = st.Score
	}
	if st.Score > st.HiScore {
		st.HiScore = st.Score
	}
}

// AdvanceLevel increments the level counter.
func (st *Stats) AdvanceLevel() {
	st.Level++
}
