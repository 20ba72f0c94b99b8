package ninja

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DeathEvent is sent when a ninja touches the player.
type DeathEvent struct {
	Message string
}

// KillCause names what killed a ninja.
type KillCause string

const (
	KillByShuriken KillCause = "shuriken"
	KillByGrenade  KillCause = "grenade"
	KillByMissile  KillCause = "missile"
	KillByBlast    KillCause = "blast"
)

// EnemyKilledEvent is sent for every ninja removed by a weapon.
type EnemyKilledEvent struct {
	Level int
	By    KillCause
}

// LevelUpEvent is sent when the player reaches a new level.
type LevelUpEvent struct {
	Level  int
	ExpMax int
}

// gameEvents are the event types of one Game. Each donburi event type
// keeps a per-world query cache, so games never share them.
type gameEvents struct {
	death   *events.EventType[DeathEvent]
	killed  *events.EventType[EnemyKilledEvent]
	levelUp *events.EventType[LevelUpEvent]
}

// newGameEvents registers fresh event types. Registration bumps donburi's
// component type counter, so it runs under ecsMu.
func newGameEvents() *gameEvents {
	ecsMu.Lock()
	defer ecsMu.Unlock()
	return &gameEvents{
		death:   events.NewEventType[DeathEvent](),
		killed:  events.NewEventType[EnemyKilledEvent](),
		levelUp: events.NewEventType[LevelUpEvent](),
	}
}

var deathMessages = []string{
	"The ninjas got to you!",
	"Oh no you got hit again :(",
	"Did you try running away from the ninjas?",
	"Press Space to throw your shuriken!",
	"That was great, but you can do better!",
	"You need to practice turning into a cactus when you are still.",
}

// subscribe wires the game's event handlers into a fresh world.
func (g *Game) subscribe(w donburi.World) {
	g.ev.death.Subscribe(w, func(_ donburi.World, ev DeathEvent) {
		g.res.LastDeath = ev.Message
		g.logger().Debug("player died", "score", g.res.Score, "message", ev.Message)
	})
	g.ev.killed.Subscribe(w, func(_ donburi.World, ev EnemyKilledEvent) {
		g.res.Kills++
		g.logger().Debug("ninja killed", "level", ev.Level, "by", ev.By)
	})
	g.ev.levelUp.Subscribe(w, func(_ donburi.World, ev LevelUpEvent) {
		g.res.LevelUps++
		g.logger().Debug("level up", "level", ev.Level, "exp_max", ev.ExpMax)
	})
}

// processEvents delivers queued events in a fixed order.
func (g *Game) processEvents() {
	g.ev.killed.ProcessEvents(g.world)
	g.ev.levelUp.ProcessEvents(g.world)
	g.ev.death.ProcessEvents(g.world)
}
