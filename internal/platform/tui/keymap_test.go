package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionShoot, false},
		{"r", runeKey('r'), core.ActionGrenade, false},
		{"e", runeKey('e'), core.ActionMissile, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBackspace, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"q is a name letter", runeKey('q'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey = (%v, %v), want (%v, %v)", got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestTypedRunes(t *testing.T) {
	km := NewKeyMapper()

	if got := string(km.TypedRunes(runeKey('k'))); got != "k" {
		t.Errorf("runes = %q, want k", got)
	}
	if got := string(km.TypedRunes(tea.KeyMsg{Type: tea.KeySpace})); got != " " {
		t.Errorf("space = %q", got)
	}
	if got := km.TypedRunes(tea.KeyMsg{Type: tea.KeyEnter}); got != nil {
		t.Errorf("enter typed %q", got)
	}
	if got := km.TypedRunes(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}); got != nil {
		t.Errorf("alt+x typed %q", got)
	}
}

func TestHeldKeys(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionRight)

	for tick := 1; tick <= 4; tick++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		want := tick <= 3
		if frame.Has(core.ActionRight) != want {
			t.Errorf("tick %d: right held = %v, want %v", tick, frame.Has(core.ActionRight), want)
		}
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	if h.held(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !h.held(core.ActionUp) || !h.held(core.ActionRight) {
		t.Error("up and right should both be held")
	}

	h.Release()
	if h.held(core.ActionUp) {
		t.Error("Release should drop every hold")
	}
}

func TestIsHeld(t *testing.T) {
	for _, a := range []core.Action{core.ActionUp, core.ActionLeft, core.ActionShoot, core.ActionMissile} {
		if !IsHeld(a) {
			t.Errorf("%v should be held", a)
		}
	}
	for _, a := range []core.Action{core.ActionConfirm, core.ActionPause, core.ActionBackspace} {
		if IsHeld(a) {
			t.Errorf("%v should be a single press", a)
		}
	}
}
