package game

import (
	"github.com/okhromenko/tui-invasion/internal/config"
	"github.com/okhromenko/tui-invasion/internal/core"
)

// Ship is the player-controlled ship. It sits at the left edge of the
// playfield and moves vertically; movement intent is expressed through
// the MovingUp/MovingDown flags set by the controller from input.
// The ship owns its arsenal.
type Ship struct {
	settings *config.Settings
	arsenal  *Arsenal

	X, Y       float64
	MovingUp   bool
	MovingDown bool
}

// NewShip creates a ship centered at the left edge, owning the given
// arsenal.
func NewShip(settings *config.Settings, arsenal *Arsenal) *Ship {
	sh := &Ship{settings: settings, arsenal: arsenal}
	sh.Recenter()
	return sh
}

// Rect returns the ship's bounding box.
func (sh *Ship) Rect() core.Rect {
	return core.NewRect(sh.X, sh.Y, sh.settings.Ship.Width, sh.settings.Ship.Height)
}

// Arsenal returns the ship's projectile pool.
func (sh *Ship) Arsenal() *Arsenal {
	return sh.arsenal
}

// Update applies the movement intent at the ship speed, clamped so the
// bounding box stays within the screen, then advances the arsenal.
// The clamp runs every time the position is modified.
func (sh *Ship) Update() {
	speed := sh.settings.ShipSpeed
	if sh.MovingUp {
		sh.Y -= speed
	}
	if sh.MovingDown {
		sh.Y += speed
	}
	sh.Y = core.Clamp(sh.Y, 0, sh.settings.Screen.Height-sh.settings.Ship.Height)

	sh.arsenal.Advance()
}

// Fire delegates to the arsenal. Returns whether a projectile was created.
func (sh *Ship) Fire() bool {
	return sh.arsenal.Fire(sh.Rect())
}

// Recenter resets the ship to the vertical screen midpoint at the left
// edge. Called on life loss and on level/session start.
func (sh *Ship) Recenter() {
	sh.X = 0
	sh.Y = (sh.settings.Screen.Height - sh.settings.Ship.Height) / 2
}

// CheckCollision reports whether the ship overlaps any alien. On a hit
// the ship is immediately recentered; at most one hit is processed per
// call even if multiple aliens overlap.
func (sh *Ship) CheckCollision(fleet *Fleet) bool {
	rect := sh.Rect()
	for _, al := range fleet.Aliens() {
		if rect.Intersects(fleet.Rect(al)) {
			sh.Recenter()
			return true
		}
	}
	return false
}
