package config

// Settings holds the static configuration plus the dynamic values that
// change with difficulty. Dynamic values are set in ResetDynamic so they
// can be restored between sessions; ScaleDifficulty multiplies them once
// per cleared level. Nothing else mutates them.
type Settings struct {
	InvasionConfig

	// Dynamic values, difficulty-scaled
	ShipSpeed   float64
	BulletSpeed float64
	FleetSpeed  float64
}

// NewSettings creates settings from a static config with dynamic values
// at their session-start base.
func NewSettings(cfg InvasionConfig) *Settings {
	s := &Settings{InvasionConfig: cfg}
	s.ResetDynamic()
	return s
}

// ResetDynamic restores all difficulty-affected values to their base.
// Called on game start and restart. Idempotent.
func (s *Settings) ResetDynamic() {
	s.ShipSpeed = s.Ship.Speed
	s.BulletSpeed = s.Bullet.Speed
	s.FleetSpeed = s.Fleet.Speed
}

// ScaleDifficulty multiplies the dynamic speeds by the difficulty scale
// factor. Called once per cleared level.
func (s *Settings) ScaleDifficulty() {
	scale := s.Gameplay.DifficultyScale
	s.ShipSpeed *= scale
	s.BulletSpeed *= scale
	s.FleetSpeed *= scale
}
