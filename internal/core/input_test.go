package core

import "testing"

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Vec2
	}{
		{"idle", nil, V(0, 0)},
		{"right", []Action{ActionRight}, V(1, 0)},
		{"up left", []Action{ActionUp, ActionLeft}, V(-1, -1)},
		{"opposites cancel", []Action{ActionLeft, ActionRight, ActionDown}, V(0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Axis(); got != tc.expected {
				t.Errorf("Axis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionShoot)
	f.Type('a', 'b')

	f.Clear()

	if f.Has(ActionShoot) || len(f.Text) != 0 {
		t.Error("Clear should drop actions and text")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame has no actions")
	}
	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionMissile.String() != "Missile" {
		t.Errorf("ActionMissile.String() = %q", ActionMissile.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
	if !ActionLeft.IsMovement() || ActionShoot.IsMovement() {
		t.Error("IsMovement mismatch")
	}
}
