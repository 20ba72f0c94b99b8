package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move up
	ActionDown              // S, Down arrow - move down
	ActionLeft              // A, Left arrow - move left
	ActionRight             // D, Right arrow - move right
	ActionShoot             // Space - throw shurikens
	ActionGrenade           // R - throw a grenade
	ActionMissile           // E - launch a homing missile
	ActionConfirm           // Enter - confirm selection in menu
	ActionBackspace         // Backspace - delete last typed rune
	ActionBack              // Escape - go back
	ActionQuit              // Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
	ActionScoreboard        // Tab - open the scoreboard
)

var actionNames = [...]string{
	ActionNone:       "None",
	ActionUp:         "Up",
	ActionDown:       "Down",
	ActionLeft:       "Left",
	ActionRight:      "Right",
	ActionShoot:      "Shoot",
	ActionGrenade:    "Grenade",
	ActionMissile:    "Missile",
	ActionConfirm:    "Confirm",
	ActionBackspace:  "Backspace",
	ActionBack:       "Back",
	ActionQuit:       "Quit",
	ActionPause:      "Pause",
	ActionScoreboard: "Scoreboard",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// IsMovement reports whether the action is one of the four directions.
func (a Action) IsMovement() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame represents the input state for a single tick.
//
// Actions holds everything that is active this tick, including held
// directions and held fire keys. Text holds printable runes typed during
// the tick, used by name entry.
type InputFrame struct {
	Actions map[Action]bool
	Text    []rune
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

// Type appends typed runes to the frame.
func (f *InputFrame) Type(runes ...rune) {
	f.Text = append(f.Text, runes...)
}

// Axis returns the raw movement vector: right minus left, down minus up.
func (f InputFrame) Axis() Vec2 {
	var v Vec2
	if f.Has(ActionRight) {
		v.X++
	}
	if f.Has(ActionLeft) {
		v.X--
	}
	if f.Has(ActionDown) {
		v.Y++
	}
	if f.Has(ActionUp) {
		v.Y--
	}
	return v
}

// Clear resets all actions and text for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}
