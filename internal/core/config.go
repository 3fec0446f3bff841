package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt rendering to the terminal size; the simulation
// itself runs in logical units from the game config.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, reserved for deterministic extensions
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current session score
	MaxScore int  // Highest score reached this session
	HiScore  int  // All-time high score, persisted across runs
	Lives    int  // Remaining lives
	Level    int  // Current level, starting at 1
	Active   bool // True while a session is being simulated
}

// Events reports notable occurrences of a single simulation tick.
// The platform routes them to external collaborators (sound, storage).
type Events struct {
	FiredShot   bool // A projectile was fired (admission control passed)
	Impact      bool // At least one enemy was destroyed this tick
	SessionOver bool // The session just ended (last life lost)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events Events
}
