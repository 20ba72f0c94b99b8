package ninja

import (
	"testing"

	"github.com/vovakirdan/ninja-killers/internal/config"
	"github.com/vovakirdan/ninja-killers/internal/core"
)

func TestArenaInside(t *testing.T) {
	a := Arena{Width: 20, Height: 10}
	half := core.V(1, 0.5)

	tests := []struct {
		pos  core.Vec2
		want bool
	}{
		{core.V(10, 5), true},
		{core.V(1, 5), false},
		{core.V(1.01, 5), true},
		{core.V(19, 5), false},
		{core.V(10, 0.5), false},
		{core.V(10, 9.4), true},
	}
	for _, tt := range tests {
		if got := a.Inside(tt.pos, half); got != tt.want {
			t.Errorf("Inside(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestArenaClamp(t *testing.T) {
	a := Arena{Width: 20, Height: 10}
	half := core.V(1, 0.5)

	if got := a.Clamp(core.V(-5, 30), half); got != core.V(1, 9.5) {
		t.Errorf("Clamp = %v, want (1, 9.5)", got)
	}
	if got := a.Clamp(core.V(7, 3), half); got != core.V(7, 3) {
		t.Errorf("Clamp moved an inside point to %v", got)
	}
}

func TestSpawnTimerHalving(t *testing.T) {
	dm := config.NewDifficultyManager(config.DefaultNinjaConfig().Difficulty)
	st := NewSpawnTimer(dm)

	want := []float64{2.5, 1.25, 0.625, 0.3125, 0.25, 0.25}
	for i, w := range want {
		if got := st.Halve(); got != w {
			t.Errorf("halving %d: %v, want %v", i+1, got, w)
		}
	}

	st.Reset()
	if got := st.Interval(); got != 5 {
		t.Errorf("after Reset interval = %v, want 5", got)
	}
}

func TestPlayerNameOrDefault(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "Anonymous"},
		{"   ", "Anonymous"},
		{" Ren ", "Ren"},
	}
	for _, tt := range tests {
		r := &Resources{PlayerName: []rune(tt.name)}
		if got := r.PlayerNameOrDefault(); got != tt.want {
			t.Errorf("PlayerNameOrDefault(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
