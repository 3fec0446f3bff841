// Package game implements the invasion simulation: a ship on the left
// edge firing at a fleet of aliens that scrolls down the right half of
// the playfield. The simulation runs in fixed logical units, decoupled
// from the terminal size; the render step projects into cells.
package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/okhromenko/tui-invasion/internal/config"
	"github.com/okhromenko/tui-invasion/internal/core"
	"github.com/okhromenko/tui-invasion/internal/registry"
	"github.com/okhromenko/tui-invasion/internal/score"
)

// Session states.
const (
	StateTitle   = "title"
	StatePlaying = "playing"
)

var (
	configPath       string
	scoresPath       = "hi_score.json"
	difficultyPreset = config.DifficultyNormal
)

// SetConfigPath sets a custom config file path for subsequent Reset
// calls. Empty means the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetScoresPath sets the JSON high score file location for subsequent
// Reset calls.
func SetScoresPath(path string) {
	scoresPath = path
}

// SetDifficultyPreset selects the difficulty preset applied on top of
// the loaded config for subsequent Reset calls.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

// Game is the invasion controller. It owns the entities and the session
// state machine, and steps them one fixed tick at a time.
type Game struct {
	settings *config.Settings
	runtime  core.RuntimeConfig

	arsenal *Arsenal
	ship    *Ship
	fleet   *Fleet
	stats   *Stats

	state      string
	tick       int
	playButton core.Rect
	scoresFile string

	// last rendered screen size in cells, for click projection
	cellW, cellH int

	// fixed overrides config loading when non-nil (tests)
	fixed *config.InvasionConfig

	// pause blocks the loop after a non-final life loss; swapped out in
	// tests
	pause func(time.Duration)
}

// New creates an invasion game that loads its config through the
// package-level path and preset on Reset.
func New() *Game {
	return &Game{pause: time.Sleep}
}

// NewWithConfig creates an invasion game pinned to the given config and
// score file, bypassing loading and presets. Used by tests.
func NewWithConfig(cfg config.InvasionConfig, scoresFile string) *Game {
	return &Game{fixed: &cfg, scoresFile: scoresFile, pause: time.Sleep}
}

func init() {
	registry.Register("invasion", func() registry.Game { return New() })
}

// ID returns the game identifier.
func (g *Game) ID() string { return "invasion" }

// Title returns the display name.
func (g *Game) Title() string { return "Alien Invasion" }

// Reset loads configuration, seeds the high score from disk and builds
// the entities. The game starts at the title screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc

	var cfg config.InvasionConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		loaded, err := config.LoadInvasion(configPath)
		if err != nil {
			log.Warn("config load failed, using defaults", "error", err)
			loaded = config.DefaultInvasionConfig()
		}
		config.ApplyInvasionPreset(&loaded, difficultyPreset)
		cfg = loaded
		g.scoresFile = scoresPath
	}
	g.settings = config.NewSettings(cfg)

	hi := score.Load(g.scoresFile)

	g.arsenal = NewArsenal(g.settings)
	g.ship = NewShip(g.settings, g.arsenal)
	g.fleet = NewFleet(g.settings)
	g.stats = NewStats(g.settings, hi)

	g.playButton = core.NewRect(
		(cfg.Screen.Width-cfg.UI.ButtonWidth)/2,
		(cfg.Screen.Height-cfg.UI.ButtonHeight)/2,
		cfg.UI.ButtonWidth,
		cfg.UI.ButtonHeight,
	)

	if g.pause == nil {
		g.pause = time.Sleep
	}
	g.state = StateTitle
	g.tick = 0
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := core.Events{}

	switch g.state {
	case StateTitle:
		if in.Has(core.ActionStart) || g.clickedPlay(in) {
			g.startSession()
		}
	case StatePlaying:
		g.stepPlaying(in, &events)
	}

	g.tick++
	return core.StepResult{State: g.State(), Events: events}
}

// startSession restores base speeds and counters and begins a fresh
// level 1.
func (g *Game) startSession() {
	g.settings.ResetDynamic()
	g.stats.Reset()
	g.resetLevel()
	g.state = StatePlaying
}

func (g *Game) stepPlaying(in core.InputFrame, events *core.Events) {
	// Terminal input has no key-up events, so movement intent is
	// re-derived from the actions present each frame.
	g.ship.MovingUp = in.Has(core.ActionUp)
	g.ship.MovingDown = in.Has(core.ActionDown)

	if in.Has(core.ActionFire) && g.ship.Fire() {
		events.FiredShot = true
	}

	g.ship.Update()
	g.fleet.Advance()
	g.resolveCollisions(events)
}

// resolveCollisions runs the per-tick collision checks in a fixed order:
// ship against fleet, fleet against the left boundary, projectiles
// against the fleet, then the level-clear check. At most one life is
// lost per tick; a loss ends the checks for the tick.
func (g *Game) resolveCollisions(events *core.Events) {
	if g.ship.CheckCollision(g.fleet) {
		g.loseLife(events)
		return
	}
	if g.fleet.ReachedLeftBoundary() {
		g.loseLife(events)
		return
	}

	if kills := g.fleet.ResolveCollisions(g.arsenal); kills > 0 {
		events.Impact = true
		g.stats.RecordKills(kills)
	}

	if g.fleet.IsCleared() {
		g.resetLevel()
		g.settings.ScaleDifficulty()
		g.stats.AdvanceLevel()
	}
}

// loseLife decrements lives and either ends the session (back to the
// title screen) or resets the level and pauses so the player can see
// what happened.
func (g *Game) loseLife(events *core.Events) {
	g.stats.Lives--
	if g.stats.Lives <= 0 {
		g.state = StateTitle
		events.SessionOver = true
		return
	}
	g.resetLevel()
	g.pause(time.Duration(g.settings.Gameplay.LifeLossPauseMS) * time.Millisecond)
}

// resetLevel clears projectiles, rebuilds the fleet formation with the
// initial direction and recenters the ship. Score and level counters are
// untouched.
func (g *Game) resetLevel() {
	g.arsenal.Clear()
	g.fleet.Clear()
	g.fleet.Layout()
	g.ship.Recenter()
}

// clickedPlay reports whether the frame's mouse click, projected into
// logical units, lands on the Play button.
func (g *Game) clickedPlay(in core.InputFrame) bool {
	click, ok := in.Click()
	if !ok {
		return false
	}
	x, y := g.toLogical(click.X, click.Y)
	return g.playButton.Contains(x, y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		MaxScore: g.stats.MaxScore,
		HiScore:  g.stats.HiScore,
		Lives:    g.stats.Lives,
		Level:    g.stats.Level,
		Active:   g.state == StatePlaying,
	}
}

// PersistScores writes the all-time high score to disk. Called by the
// platform on quit; failures are logged, never fatal.
func (g *Game) PersistScores() {
	if g.stats == nil {
		return
	}
	if err := score.Save(g.scoresFile, g.stats.HiScore); err != nil {
		log.Warn("failed to persist high score", "path", g.scoresFile, "error", err)
	}
}
