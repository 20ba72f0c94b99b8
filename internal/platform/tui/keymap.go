package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// DefaultHoldTicks is how long a held action stays active after its key
// event. Terminals only report presses and auto-repeats, so a key counts
// as held until its repeats stop arriving.
const DefaultHoldTicks = 12

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionShoot, false
	case "r":
		return core.ActionGrenade, false
	case "e":
		return core.ActionMissile, false
	case "enter":
		return core.ActionConfirm, false
	case "backspace":
		return core.ActionBackspace, false
	case "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "tab":
		return core.ActionScoreboard, false
	}
	return core.ActionNone, false
}

// TypedRunes returns the printable runes a key message carries, for text entry.
func (km *KeyMapper) TypedRunes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	}
	return nil
}

// IsHeld reports whether an action is treated as a held key rather than
// a single press.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionShoot, core.ActionGrenade, core.ActionMissile:
		return true
	}
	return a.IsMovement()
}

var opposite = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HeldKeys keeps held actions alive between key repeats.
type HeldKeys struct {
	hold int
	ttl  map[core.Action]int
}

// NewHeldKeys creates a tracker that holds each press for hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &HeldKeys{hold: hold, ttl: make(map[core.Action]int)}
}

// Press (re)starts the hold window for a. Pressing a direction releases
// its opposite.
func (h *HeldKeys) Press(a core.Action) {
	if o, ok := opposite[a]; ok {
		delete(h.ttl, o)
	}
	h.ttl[a] = h.hold
}

// Apply sets every held action on frame and ages the holds by one tick.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.ttl {
		frame.Set(a)
		if n <= 1 {
			delete(h.ttl, a)
		} else {
			h.ttl[a] = n - 1
		}
	}
}

// Release drops every hold.
func (h *HeldKeys) Release() {
	clear(h.ttl)
}

// held reports whether a is currently held.
func (h *HeldKeys) held(a core.Action) bool {
	return h.ttl[a] > 0
}
