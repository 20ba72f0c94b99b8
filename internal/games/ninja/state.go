package ninja

import (
	"time"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// State is the top-level game state.
type State int

const (
	StateLoading State = iota
	StateMenu
	StatePlaying
)

// Phase maps the state onto the platform's phase names.
func (s State) Phase() string {
	switch s {
	case StateMenu:
		return core.PhaseMenu
	case StatePlaying:
		return core.PhasePlaying
	default:
		return core.PhaseLoading
	}
}

func (s State) String() string {
	return s.Phase()
}

// system runs once per tick while its state is active.
type system func(g *Game, in core.InputFrame, dt time.Duration)

// hook runs on a state transition.
type hook func(g *Game)

// schedule lists the systems and transition hooks of each state.
// Systems run in slice order. Playing systems are skipped while paused.
type schedule struct {
	update  map[State][]system
	onEnter map[State][]hook
	onExit  map[State][]hook
}

func newSchedule() *schedule {
	return &schedule{
		update: map[State][]system{
			StateLoading: {loadAssets},
			StateMenu:    {menuInput},
			StatePlaying: {
				updateActions,
				movePlayer,
				accelerateSpawns,
				spawnEnemy,
				moveEnemies,
				fireShuriken,
				throwGrenade,
				launchMissile,
				moveShurikens,
				moveGrenades,
				moveMissiles,
				expireExplosions,
				resolveHits,
				levelUp,
			},
		},
		onEnter: map[State][]hook{
			StatePlaying: {spawnPlayer},
		},
		onExit: map[State][]hook{
			StatePlaying: {finishLevel},
		},
	}
}

// requestState asks for a transition at the end of the current tick.
// The last request in a tick wins.
func (g *Game) requestState(s State) {
	g.next = s
	g.hasNext = true
}

// applyTransition runs OnExit of the old state, then OnEnter of the new one.
func (g *Game) applyTransition() {
	if !g.hasNext {
		return
	}
	next := g.next
	g.hasNext = false
	if next == g.state {
		return
	}

	for _, h := range g.sched.onExit[g.state] {
		h(g)
	}
	g.logger().Debug("state change", "from", g.state, "to", next)
	g.state = next
	for _, h := range g.sched.onEnter[next] {
		h(g)
	}
}
