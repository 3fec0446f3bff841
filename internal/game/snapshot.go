package game

// Snapshot captures the observable simulation state at a tick. Used by
// determinism tests: two games stepped with the same inputs must produce
// identical snapshot sequences.
type Snapshot struct {
	Tick       int
	State      string
	Score      int
	MaxScore   int
	HiScore    int
	Lives      int
	Level      int
	ShotCount  int
	AlienCount int
	Direction  float64
	ShipY      float64
}

// TakeSnapshot returns the current snapshot.
func (g *Game) TakeSnapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      g.stats.Score,
		MaxScore:   g.stats.MaxScore,
		HiScore:    g.stats.HiScore,
		Lives:      g.stats.Lives,
		Level:      g.stats.Level,
		ShotCount:  g.arsenal.Count(),
		AlienCount: g.fleet.Count(),
		Direction:  g.fleet.Direction(),
		ShipY:      g.ship.Y,
	}
}
