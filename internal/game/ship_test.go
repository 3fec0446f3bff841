package game

import "testing"

func TestShipStartsCentered(t *testing.T) {
	s := testSettings()
	sh := NewShip(s, NewArsenal(s))

	if sh.X != 0 {
		t.Errorf("X = %v, expected the left edge", sh.X)
	}
	wantY := (s.Screen.Height - s.Ship.Height) / 2
	if sh.Y != wantY {
		t.Errorf("Y = %v, expected %v", sh.Y, wantY)
	}
}

func TestUpdateClampsToScreen(t *testing.T) {
	s := testSettings()
	sh := NewShip(s, NewArsenal(s))

	sh.MovingUp = true
	for i := 0; i < 200; i++ {
		sh.Update()
	}
	if sh.Y != 0 {
		t.Errorf("Y = %v, holding up should pin the ship to the top edge", sh.Y)
	}

	sh.MovingUp = false
	sh.MovingDown = true
	for i := 0; i < 200; i++ {
		sh.Update()
	}
	wantY := s.Screen.Height - s.Ship.Height
	if sh.Y != wantY {
		t.Errorf("Y = %v, holding down should pin the ship to %v", sh.Y, wantY)
	}
}

func TestUpdateAdvancesArsenal(t *testing.T) {
	s := testSettings()
	sh := NewShip(s, NewArsenal(s))

	if !sh.Fire() {
		t.Fatal("Fire() = false")
	}
	before := sh.Arsenal().Shots()[0].X
	sh.Update()
	after := sh.Arsenal().Shots()[0].X

	if after != before+s.BulletSpeed {
		t.Errorf("projectile moved %v, expected %v", after-before, s.BulletSpeed)
	}
}

func TestCheckCollisionRecenters(t *testing.T) {
	s := testSettings()
	sh := NewShip(s, NewArsenal(s))
	f := NewFleet(s)

	sh.Y = 0
	f.aliens = []*Alien{{X: 0, Y: 10}}

	if !sh.CheckCollision(f) {
		t.Fatal("overlapping alien not detected")
	}
	wantY := (s.Screen.Height - s.Ship.Height) / 2
	if sh.X != 0 || sh.Y != wantY {
		t.Errorf("ship at (%v, %v), expected recenter to (0, %v)", sh.X, sh.Y, wantY)
	}
}

func TestCheckCollisionMiss(t *testing.T) {
	s := testSettings()
	sh := NewShip(s, NewArsenal(s))
	f := NewFleet(s)

	if sh.CheckCollision(f) {
		t.Error("default formation should not overlap a centered ship")
	}
}
