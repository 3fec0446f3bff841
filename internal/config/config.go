// Package config provides YAML-based game configuration loading and the
// dynamic, difficulty-scaled settings for the invasion game.
package config

import "fmt"

// InvasionConfig contains all static configuration for the invasion game.
// All dimensions and speeds are in logical units (a fixed coordinate space
// independent of the terminal size).
type InvasionConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Ship     ShipConfig     `yaml:"ship"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	UI       UIConfig       `yaml:"ui"`
}

// ScreenConfig defines the logical playfield dimensions and tick rate.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Base speed, logical units per tick
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`            // Base speed, logical units per tick
	Cap             int     `yaml:"cap"`              // Max simultaneous live projectiles
	OffscreenMargin float64 `yaml:"offscreen_margin"` // Pruning margin past the right edge
}

// FleetConfig defines the enemy fleet parameters.
type FleetConfig struct {
	AlienWidth  float64 `yaml:"alien_width"`
	AlienHeight float64 `yaml:"alien_height"`
	Speed       float64 `yaml:"speed"`      // Base scroll speed, logical units per tick
	DropSpeed   float64 `yaml:"drop_speed"` // Backward shift on edge contact
	Direction   float64 `yaml:"direction"`  // Initial scroll direction, +1 or -1
	AlienPoints int     `yaml:"alien_points"`
}

// GameplayConfig defines session-level parameters.
type GameplayConfig struct {
	StartingLives   int     `yaml:"starting_lives"`
	DifficultyScale float64 `yaml:"difficulty_scale"`   // Per-level speed multiplier, > 1
	LifeLossPauseMS int     `yaml:"life_loss_pause_ms"` // Full-loop stall after a life loss
}

// UIConfig defines the title-screen Play control, in logical units.
type UIConfig struct {
	ButtonWidth  float64 `yaml:"button_width"`
	ButtonHeight float64 `yaml:"button_height"`
}

// Validate checks the positivity invariants on sizes and speeds.
func (c InvasionConfig) Validate() error {
	positive := map[string]float64{
		"screen.width":              c.Screen.Width,
		"screen.height":             c.Screen.Height,
		"ship.width":                c.Ship.Width,
		"ship.height":               c.Ship.Height,
		"ship.speed":                c.Ship.Speed,
		"bullet.width":              c.Bullet.Width,
		"bullet.height":             c.Bullet.Height,
		"bullet.speed":              c.Bullet.Speed,
		"fleet.alien_width":         c.Fleet.AlienWidth,
		"fleet.alien_height":        c.Fleet.AlienHeight,
		"fleet.speed":               c.Fleet.Speed,
		"fleet.drop_speed":          c.Fleet.DropSpeed,
		"gameplay.difficulty_scale": c.Gameplay.DifficultyScale,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", name, v)
		}
	}
	if c.Fleet.Direction != 1 && c.Fleet.Direction != -1 {
		return fmt.Errorf("config: fleet.direction must be +1 or -1, got %v", c.Fleet.Direction)
	}
	if c.Bullet.Cap <= 0 {
		return fmt.Errorf("config: bullet.cap must be positive, got %d", c.Bullet.Cap)
	}
	if c.Gameplay.StartingLives <= 0 {
		return fmt.Errorf("config: gameplay.starting_lives must be positive, got %d", c.Gameplay.StartingLives)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyInvasionPreset modifies the config based on a difficulty preset.
func ApplyInvasionPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartingLives = 5
		cfg.Fleet.Speed = 4
	case DifficultyHard:
		cfg.Gameplay.StartingLives = 2
		cfg.Fleet.Speed = 7
	case DifficultyFixed:
		// Level clears no longer speed the game up
		cfg.Gameplay.DifficultyScale = 1.0
	}
}
