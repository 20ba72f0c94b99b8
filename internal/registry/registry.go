// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the platform can
// create them by ID without importing their internals.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// Game is the interface the platform drives.
// Games hold pure logic and never import Bubble Tea: the platform maps
// keys to actions, owns the tick clock and paints the screen.
type Game interface {
	// ID returns a unique identifier (e.g. "ninja").
	// It keys score storage.
	ID() string

	// Title returns a human-readable name (e.g. "Ninja Killers").
	Title() string

	// Reset builds a fresh world for the given screen size and seed.
	// Called once at start and again on resize.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// The result carries the state and any runs that finished this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, phase, paused).
	State() core.GameState
}

// ScoreSeeder is implemented by games that keep an in-memory leaderboard.
// The platform seeds it from storage before the first Step.
type ScoreSeeder interface {
	SeedScores(runs []core.RunRecord)
}

// PlayerNamer is implemented by games that ask for a player name.
// The SSH server pre-fills it with the session user.
type PlayerNamer interface {
	SetPlayerName(name string)
}

// Resizer is implemented by games that can adapt to a new screen size
// in place. Games without it are Reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
