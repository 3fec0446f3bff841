package game

import (
	"github.com/okhromenko/tui-invasion/internal/config"
	"github.com/okhromenko/tui-invasion/internal/core"
)

// Projectile is a single shot fired by the ship. Position is the top-left
// corner in logical units; the bounding box is derived from settings.
type Projectile struct {
	X, Y float64
}

// Arsenal owns the live projectiles fired by the ship. It is the sole
// admission-control point for projectile creation: Fire refuses once the
// configured cap is reached.
type Arsenal struct {
	settings *config.Settings
	shots    []*Projectile
}

// NewArsenal creates an empty arsenal.
func NewArsenal(settings *config.Settings) *Arsenal {
	return &Arsenal{settings: settings}
}

// Fire creates a projectile at the ship's mid-left point if the pool is
// under the cap. Returns false without side effects when at the cap; the
// caller may use the result to suppress the fire sound.
func (a *Arsenal) Fire(ship core.Rect) bool {
	if len(a.shots) >= a.settings.Bullet.Cap {
		return false
	}
	x, my := ship.MidLeft()
	a.shots = append(a.shots, &Projectile{
		X: x,
		Y: my - a.settings.Bullet.Height/2,
	})
	return true
}

// Advance moves every live projectile forward by the bullet speed (a fixed
// per-tick increment), then prunes every projectile whose leading edge has
// passed the configured margin beyond the right screen boundary.
func (a *Arsenal) Advance() {
	for _, p := range a.shots {
		p.X += a.settings.BulletSpeed
	}

	limit := a.settings.Screen.Width + a.settings.Bullet.OffscreenMargin
	kept := a.shots[:0]
	for _, p := range a.shots {
		if p.X+a.settings.Bullet.Width < limit {
			kept = append(kept, p)
		}
	}
	a.shots = kept
}

// Rect returns the projectile's bounding box.
func (a *Arsenal) Rect(p *Projectile) core.Rect {
	return core.NewRect(p.X, p.Y, a.settings.Bullet.Width, a.settings.Bullet.Height)
}

// Shots returns the live projectiles for rendering and collision checks.
func (a *Arsenal) Shots() []*Projectile {
	return a.shots
}

// Count returns the number of live projectiles.
func (a *Arsenal) Count() int {
	return len(a.shots)
}

// Clear removes all projectiles. Called on level and session resets.
func (a *Arsenal) Clear() {
	a.shots = a.shots[:0]
}

// remove deletes a single projectile, preserving order.
func (a *Arsenal) remove(target *Projectile) {
	for i, p := range a.shots {
		if p == target {
			a.shots = append(a.shots[:i], a.shots[i+1:]...)
			return
		}
	}
}
