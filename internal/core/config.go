package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase names reported through GameState.Phase.
const (
	PhaseLoading = "loading"
	PhaseMenu    = "menu"
	PhasePlaying = "playing"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended for good
	Paused   bool   // Whether the game is paused
	Phase    string // Current state machine phase, see Phase* constants
}

// RunRecord is a finished run ready to be persisted.
type RunRecord struct {
	Player string
	Score  int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Runs lists runs that ended during this tick.
	Runs []RunRecord
}
