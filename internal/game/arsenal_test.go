package game

import (
	"testing"

	"github.com/okhromenko/tui-invasion/internal/core"
)

func TestFireSpawnPosition(t *testing.T) {
	s := testSettings()
	a := NewArsenal(s)
	ship := core.NewRect(0, 370, s.Ship.Width, s.Ship.Height)

	if !a.Fire(ship) {
		t.Fatal("Fire() = false on an empty arsenal")
	}

	p := a.Shots()[0]
	if p.X != 0 {
		t.Errorf("X = %v, expected the ship's left edge", p.X)
	}
	// Vertically centered on the ship's mid-left point.
	wantY := 400 - s.Bullet.Height/2
	if p.Y != wantY {
		t.Errorf("Y = %v, expected %v", p.Y, wantY)
	}
}

func TestFireRefusesAtCap(t *testing.T) {
	s := testSettings()
	a := NewArsenal(s)
	ship := core.NewRect(0, 370, s.Ship.Width, s.Ship.Height)

	for i := 0; i < s.Bullet.Cap; i++ {
		if !a.Fire(ship) {
			t.Fatalf("Fire() = false at %d live shots, cap is %d", i, s.Bullet.Cap)
		}
	}
	if a.Fire(ship) {
		t.Error("Fire() = true at the cap")
	}
	if a.Count() != s.Bullet.Cap {
		t.Errorf("Count() = %d, expected exactly %d", a.Count(), s.Bullet.Cap)
	}
}

func TestAdvanceMovesAndPrunes(t *testing.T) {
	s := testSettings()
	a := NewArsenal(s)
	limit := s.Screen.Width + s.Bullet.OffscreenMargin

	a.shots = []*Projectile{
		{X: 100, Y: 400},
		// Leading edge reaches the prune limit after one advance.
		{X: limit - s.Bullet.Width - s.BulletSpeed, Y: 400},
	}

	a.Advance()

	if a.Count() != 1 {
		t.Fatalf("Count() = %d, expected the off-screen projectile pruned", a.Count())
	}
	if a.Shots()[0].X != 100+s.BulletSpeed {
		t.Errorf("X = %v, expected %v", a.Shots()[0].X, 100+s.BulletSpeed)
	}
}

func TestAdvancePrunesAfterMoving(t *testing.T) {
	s := testSettings()
	a := NewArsenal(s)
	limit := s.Screen.Width + s.Bullet.OffscreenMargin

	// Just under the limit: survives the advance that moves it past.
	a.shots = []*Projectile{{X: limit - s.Bullet.Width - s.BulletSpeed - 1, Y: 400}}
	a.Advance()
	if a.Count() != 1 {
		t.Fatal("projectile under the limit was pruned")
	}

	a.Advance()
	if a.Count() != 0 {
		t.Error("projectile past the limit was kept")
	}
}

func TestClearEmptiesPool(t *testing.T) {
	s := testSettings()
	a := NewArsenal(s)
	ship := core.NewRect(0, 370, s.Ship.Width, s.Ship.Height)

	a.Fire(ship)
	a.Fire(ship)
	a.Clear()

	if a.Count() != 0 {
		t.Errorf("Count() = %d after Clear()", a.Count())
	}
	if !a.Fire(ship) {
		t.Error("Fire() should succeed after Clear()")
	}
}
