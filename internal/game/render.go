package game

import (
	"fmt"
	"strings"

	"github.com/okhromenko/tui-invasion/internal/core"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Render draws the current state into the screen buffer. The simulation
// runs in logical units; rendering projects entity rects into cells, so
// the same session looks right at any terminal size.
func (g *Game) Render(dst *core.Screen) {
	g.cellW = dst.Width()
	g.cellH = dst.Height()

	g.renderHUD(dst)

	switch g.state {
	case StatePlaying:
		g.renderPlayfield(dst)
	case StateTitle:
		g.renderPlayfield(dst)
		g.renderTitle(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf(" SCORE %d  BEST %d  HI %d", g.stats.Score, g.stats.MaxScore, g.stats.HiScore)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("LV %d  %s ", g.stats.Level, strings.Repeat("♥", core.Max(g.stats.Lives, 0)))
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorRed)
}

func (g *Game) renderPlayfield(dst *core.Screen) {
	for _, p := range g.arsenal.Shots() {
		g.fillLogical(dst, g.arsenal.Rect(p), '-', core.ColorBrightYellow)
	}
	for _, al := range g.fleet.Aliens() {
		g.fillLogical(dst, g.fleet.Rect(al), 'M', core.ColorMagenta)
	}
	g.fillLogical(dst, g.ship.Rect(), '>', core.ColorBrightGreen)
}

func (g *Game) renderTitle(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()

	// Play control, hit-testable at its logical rect
	bx, by, bw, bh := g.toCells(g.playButton)
	dst.FillRect(bx, by, bw, bh, ' ', core.ColorDefault)
	dst.DrawBox(bx, by, bw, bh)
	dst.DrawTextColored(bx+(bw-7)/2, by+bh/2, "P L A Y", core.ColorBrightGreen)

	dst.DrawTextCentered(core.Max(by-2, hudRows), "A L I E N   I N V A S I O N")
	if g.stats.MaxScore > 0 {
		dst.DrawTextCentered(core.Min(by+bh+1, h-2), fmt.Sprintf("last best %d", g.stats.MaxScore))
	}
	dst.DrawTextColored((w-50)/2, h-1, "enter/click: play  w/s: move  space: fire  q: quit", core.ColorGray)
}

// fillLogical projects a logical rect into cells and fills it. Entities
// always occupy at least one cell so nothing vanishes at small sizes.
func (g *Game) fillLogical(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, y, w, h := g.toCells(r)
	dst.FillRect(x, y, w, h, ch, c)
}

// toCells projects a logical rect into cell coordinates below the HUD.
func (g *Game) toCells(r core.Rect) (x, y, w, h int) {
	sx, sy := g.scale()
	x = int(r.X * sx)
	y = hudRows + int(r.Y*sy)
	w = core.Max(int(r.W*sx), 1)
	h = core.Max(int(r.H*sy), 1)
	return x, y, w, h
}

// toLogical projects a cell position (e.g. a mouse click) back into
// logical units, using the cell center.
func (g *Game) toLogical(cx, cy int) (float64, float64) {
	sx, sy := g.scale()
	return (float64(cx) + 0.5) / sx, (float64(cy-hudRows) + 0.5) / sy
}

func (g *Game) scale() (sx, sy float64) {
	cw, ch := g.cellW, g.cellH
	if cw <= 0 {
		cw = g.runtime.ScreenW
	}
	if ch <= 0 {
		ch = g.runtime.ScreenH
	}
	sx = float64(cw) / g.settings.Screen.Width
	sy = float64(core.Max(ch-hudRows, 1)) / g.settings.Screen.Height
	return sx, sy
}
