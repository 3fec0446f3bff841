package config

import (
	"math"
	"testing"
)

func TestResetDynamic(t *testing.T) {
	s := NewSettings(DefaultInvasionConfig())

	if s.ShipSpeed != s.Ship.Speed {
		t.Errorf("ShipSpeed = %v, expected base %v", s.ShipSpeed, s.Ship.Speed)
	}
	if s.BulletSpeed != s.Bullet.Speed {
		t.Errorf("BulletSpeed = %v, expected base %v", s.BulletSpeed, s.Bullet.Speed)
	}
	if s.FleetSpeed != s.Fleet.Speed {
		t.Errorf("FleetSpeed = %v, expected base %v", s.FleetSpeed, s.Fleet.Speed)
	}

	// Scaling then resetting restores the base values
	s.ScaleDifficulty()
	s.ScaleDifficulty()
	s.ResetDynamic()

	if s.ShipSpeed != s.Ship.Speed || s.BulletSpeed != s.Bullet.Speed || s.FleetSpeed != s.Fleet.Speed {
		t.Error("ResetDynamic did not restore base speeds")
	}
}

func TestScaleDifficulty(t *testing.T) {
	cfg := DefaultInvasionConfig()
	cfg.Gameplay.DifficultyScale = 1.5
	s := NewSettings(cfg)

	s.ScaleDifficulty()

	if math.Abs(s.ShipSpeed-cfg.Ship.Speed*1.5) > 1e-9 {
		t.Errorf("ShipSpeed = %v, expected %v", s.ShipSpeed, cfg.Ship.Speed*1.5)
	}
	if math.Abs(s.BulletSpeed-cfg.Bullet.Speed*1.5) > 1e-9 {
		t.Errorf("BulletSpeed = %v, expected %v", s.BulletSpeed, cfg.Bullet.Speed*1.5)
	}
	if math.Abs(s.FleetSpeed-cfg.Fleet.Speed*1.5) > 1e-9 {
		t.Errorf("FleetSpeed = %v, expected %v", s.FleetSpeed, cfg.Fleet.Speed*1.5)
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := DefaultInvasionConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvasionConfig)
	}{
		{"zero ship speed", func(c *InvasionConfig) { c.Ship.Speed = 0 }},
		{"negative alien width", func(c *InvasionConfig) { c.Fleet.AlienWidth = -40 }},
		{"zero bullet cap", func(c *InvasionConfig) { c.Bullet.Cap = 0 }},
		{"zero lives", func(c *InvasionConfig) { c.Gameplay.StartingLives = 0 }},
		{"bad direction", func(c *InvasionConfig) { c.Fleet.Direction = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvasionConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestApplyPresets(t *testing.T) {
	easy := DefaultInvasionConfig()
	ApplyInvasionPreset(&easy, DifficultyEasy)
	if easy.Gameplay.StartingLives != 5 {
		t.Errorf("easy lives = %d, expected 5", easy.Gameplay.StartingLives)
	}

	hard := DefaultInvasionConfig()
	ApplyInvasionPreset(&hard, DifficultyHard)
	if hard.Gameplay.StartingLives != 2 {
		t.Errorf("hard lives = %d, expected 2", hard.Gameplay.StartingLives)
	}
	if hard.Fleet.Speed <= DefaultInvasionConfig().Fleet.Speed {
		t.Error("hard preset should raise the fleet speed")
	}

	fixed := DefaultInvasionConfig()
	ApplyInvasionPreset(&fixed, DifficultyFixed)
	if fixed.Gameplay.DifficultyScale != 1.0 {
		t.Errorf("fixed scale = %v, expected 1.0", fixed.Gameplay.DifficultyScale)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if len(GetDefaultYAML()) == 0 {
		t.Fatal("embedded default YAML is empty")
	}
}

func TestLoadInvasionFallsBackToDefault(t *testing.T) {
	// No custom path, no user/local config in the test environment:
	// the embedded default must load and validate.
	cfg, err := LoadInvasion("")
	if err != nil {
		t.Fatalf("LoadInvasion() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate, got %v", err)
	}
	if cfg.Screen.Width != 1200 || cfg.Screen.Height != 800 {
		t.Errorf("unexpected screen dims %vx%v", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadInvasionMissingCustomPath(t *testing.T) {
	if _, err := LoadInvasion("/nonexistent/invasion.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}
