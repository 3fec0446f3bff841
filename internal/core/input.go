package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows the game to work with high-level intents rather
// than raw input events.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move the ship up
	ActionDown           // S, Down arrow - move the ship down
	ActionFire           // Space - fire a projectile
	ActionStart          // Enter - start/restart a session from the title screen
	ActionScores         // Tab - open the scoreboard from the title screen
	ActionQuit           // Q, Ctrl+C - quit, persisting scores
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Click is a mouse press position in screen cell coordinates.
// The game projects it into logical units to hit-test the Play control.
type Click struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame, plus an
// optional mouse click.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	click    Click
	hasClick bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a mouse press for this frame.
func (f *InputFrame) SetClick(x, y int) {
	f.click = Click{X: x, Y: y}
	f.hasClick = true
}

// Click returns the recorded mouse press, if any.
func (f InputFrame) Click() (Click, bool) {
	return f.click, f.hasClick
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.hasClick = false
}
