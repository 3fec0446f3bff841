package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// DefaultInvasionConfig returns the default invasion configuration.
// Kept in sync with the embedded defaults/invasion.yaml.
func DefaultInvasionConfig() InvasionConfig {
	return InvasionConfig{
		Screen: ScreenConfig{
			Width:  1200,
			Height: 800,
			FPS:    60,
		},
		Ship: ShipConfig{
			Width:  40,
			Height: 60,
			Speed:  10,
		},
		Bullet: BulletConfig{
			Width:           80,
			Height:          25,
			Speed:           20,
			Cap:             50,
			OffscreenMargin: 80,
		},
		Fleet: FleetConfig{
			AlienWidth:  40,
			AlienHeight: 40,
			Speed:       5,
			DropSpeed:   40,
			Direction:   1,
			AlienPoints: 50,
		},
		Gameplay: GameplayConfig{
			StartingLives:   3,
			DifficultyScale: 1.1,
			LifeLossPauseMS: 500,
		},
		UI: UIConfig{
			ButtonWidth:  200,
			ButtonHeight: 50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvasionYAML
}
