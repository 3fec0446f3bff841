package game

import (
	"github.com/okhromenko/tui-invasion/internal/config"
	"github.com/okhromenko/tui-invasion/internal/core"
)

// Alien is a single enemy unit. Position is the top-left corner in
// logical units; dimensions are shared fleet configuration.
type Alien struct {
	X, Y float64
}

// Fleet owns the grid of enemy units plus their shared scroll direction.
// The fleet occupies the right half of the playfield and scrolls
// vertically; on contact with the top or bottom edge it reverses and
// drops backward toward the ship (the horizontal analogue of the classic
// invader descent - intentional for this game's left-right orientation).
type Fleet struct {
	settings  *config.Settings
	aliens    []*Alien
	direction float64 // +1 or -1, shared by every unit
}

// NewFleet creates a fleet and lays out the initial formation.
func NewFleet(settings *config.Settings) *Fleet {
	f := &Fleet{
		settings:  settings,
		direction: settings.Fleet.Direction,
	}
	f.Layout()
	return f
}

// gridCount computes one dimension of the formation grid. The raw
// quotient screenDim/unitDim is decremented to the next-lower odd number
// (by 1 if even, by 2 if odd) so the checkerboard skip below yields a
// non-degenerate fleet with a symmetric margin.
func gridCount(screenDim, unitDim float64) int {
	n := int(screenDim / unitDim)
	if n%2 == 0 {
		n--
	} else {
		n -= 2
	}
	return n
}

// Layout computes the formation grid and populates it. Rows span the full
// screen height, columns the right half of the screen width; the block is
// centered vertically on the screen and horizontally within the right
// half. A cell is populated only when both its row and column indices are
// odd, producing the sparse diagonal formation.
func (f *Fleet) Layout() {
	alienW := f.settings.Fleet.AlienWidth
	alienH := f.settings.Fleet.AlienHeight
	screenW := f.settings.Screen.Width
	screenH := f.settings.Screen.Height

	rows := gridCount(screenH, alienH)
	cols := gridCount(screenW/2, alienW)

	halfScreen := screenW / 2
	yOffset := (screenH - float64(rows)*alienH) / 2
	xOffset := halfScreen + (halfScreen-float64(cols)*alienW)/2

	f.aliens = f.aliens[:0]
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			if row%2 == 0 || col%2 == 0 {
				continue
			}
			f.aliens = append(f.aliens, &Alien{
				X: xOffset + float64(col)*alienW,
				Y: yOffset + float64(row)*alienH,
			})
		}
	}
}

// Rect returns the alien's bounding box.
func (f *Fleet) Rect(al *Alien) core.Rect {
	return core.NewRect(al.X, al.Y, f.settings.Fleet.AlienWidth, f.settings.Fleet.AlienHeight)
}

// Advance runs the edge check, then moves every alien along the scroll
// axis by the fleet speed times the shared direction.
func (f *Fleet) Advance() {
	f.checkEdges()
	for _, al := range f.aliens {
		al.Y += f.settings.FleetSpeed * f.direction
	}
}

// checkEdges reverses the scroll direction and drops the whole fleet
// backward toward the ship when any alien touches a vertical screen edge.
func (f *Fleet) checkEdges() {
	screenH := f.settings.Screen.Height
	for _, al := range f.aliens {
		if al.Y <= 0 || al.Y+f.settings.Fleet.AlienHeight >= screenH {
			f.drop()
			f.direction *= -1
			break
		}
	}
}

// drop shifts every alien backward (toward the ship) by the drop speed.
func (f *Fleet) drop() {
	for _, al := range f.aliens {
		al.X -= f.settings.Fleet.DropSpeed
	}
}

// ResolveCollisions removes every alien whose bounding box overlaps a live
// projectile, consuming the projectile too. A projectile consumed by one
// alien is not matched again within the same pass. Returns the number of
// destroyed aliens for scoring.
func (f *Fleet) ResolveCollisions(arsenal *Arsenal) int {
	kills := 0
	consumed := make(map[*Projectile]bool)

	kept := f.aliens[:0]
	for _, al := range f.aliens {
		alienRect := f.Rect(al)
		hit := false
		for _, p := range arsenal.Shots() {
			if consumed[p] {
				continue
			}
			if alienRect.Intersects(arsenal.Rect(p)) {
				consumed[p] = true
				hit = true
				break
			}
		}
		if hit {
			kills++
			continue
		}
		kept = append(kept, al)
	}
	f.aliens = kept

	for p := range consumed {
		arsenal.remove(p)
	}
	return kills
}

// ReachedLeftBoundary reports whether any surviving alien's trailing edge
// has crossed fully past the left screen edge - the loss condition of an
// enemy escaping past the player. The alien is not removed by this check.
func (f *Fleet) ReachedLeftBoundary() bool {
	for _, al := range f.aliens {
		if al.X+f.settings.Fleet.AlienWidth < 0 {
			return true
		}
	}
	return false
}

// IsCleared reports whether every alien has been destroyed.
func (f *Fleet) IsCleared() bool {
	return len(f.aliens) == 0
}

// Aliens returns the live enemy units for rendering and collision checks.
func (f *Fleet) Aliens() []*Alien {
	return f.aliens
}

// Count returns the number of live aliens.
func (f *Fleet) Count() int {
	return len(f.aliens)
}

// Direction returns the shared scroll direction, +1 or -1.
func (f *Fleet) Direction() float64 {
	return f.direction
}

// Clear removes all aliens and restores the initial scroll direction.
// Called before a re-layout on level and session resets.
func (f *Fleet) Clear() {
	f.aliens = f.aliens[:0]
	f.direction = f.settings.Fleet.Direction
}
