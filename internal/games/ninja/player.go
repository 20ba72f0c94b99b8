package ninja

import (
	"math"
	"time"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// updateActions turns held keys into this tick's intents.
func updateActions(g *Game, in core.InputFrame, _ time.Duration) {
	move := in.Axis().Normalize()
	g.res.Actions = Actions{
		Movement: move,
		Moving:   !move.IsZero(),
		Shoot:    in.Has(core.ActionShoot),
		Grenade:  in.Has(core.ActionGrenade),
		Missile:  in.Has(core.ActionMissile),
	}
}

// spawnPlayer starts a run: a fresh player and fresh run counters.
func spawnPlayer(g *Game) {
	pc := g.cfg.Player
	pos := g.res.Arena.Center().Sub(core.V(0, pc.SpawnOffset))
	half := core.V(pc.HalfWidth, pc.HalfHeight)

	e := g.world.Create(Transform, Sprite, Player, Collider)
	entry := g.world.Entry(e)
	Transform.SetValue(entry, TransformData{Pos: g.res.Arena.Clamp(pos, half)})
	Sprite.SetValue(entry, SpriteData{Key: SpriteCactus})
	Player.SetValue(entry, PlayerData{
		Facing: core.V(1, 0),
		Level:  1,
		ExpMax: g.cfg.Progression.ExpMax,
	})
	Collider.SetValue(entry, ColliderData{Half: half})

	g.res.Score = 0
	g.res.Kills = 0
	g.res.LevelUps = 0
	g.res.LastRank = 0
	g.res.Level = LevelInfo{Value: 1, ExpMax: g.cfg.Progression.ExpMax}
	g.res.SpawnTimer.Reset()
	g.res.SpawnModifier = core.TimerFromSeconds(g.dm.HalvingPeriod(), core.TimerRepeating)
	g.res.Cooldowns = newCooldowns(g.cfg.Weapons.CooldownMS)
	g.res.Actions = Actions{}
	g.res.Paused = false

	g.logger().Debug("run started", "player", g.res.PlayerNameOrDefault())
}

// movePlayer moves the player and ends the run when a ninja touches it.
// An idle player is disguised as a cactus and cannot be caught.
func movePlayer(g *Game, _ core.InputFrame, dt time.Duration) {
	entry := g.playerEntry()
	sprite := Sprite.Get(entry)
	act := g.res.Actions
	if !act.Moving {
		sprite.Key = SpriteCactus
		return
	}

	sprite.Key = SpriteNinja
	p := Player.Get(entry)
	p.Facing = act.Movement

	t := Transform.Get(entry)
	half := Collider.Get(entry).Half
	next := t.Pos.Add(act.Movement.Scale(g.cfg.Player.Speed * dt.Seconds()))
	if g.res.Arena.Inside(next, half) {
		t.Pos = next
	}

	box := bounds(entry)
	caught := false
	g.q.enemies.Each(g.world, func(enemy *donburi.Entry) {
		if !caught && box.Intersects(bounds(enemy)) {
			caught = true
		}
	})
	if caught {
		msg := deathMessages[g.res.Rand.Intn(len(deathMessages))]
		g.ev.death.Publish(g.world, DeathEvent{Message: msg})
		g.requestState(StateMenu)
	}
}

// gainExp credits experience to the player.
func gainExp(g *Game, exp int) {
	p := Player.Get(g.playerEntry())
	p.Exp += exp
}

// levelUp promotes the player while its exp covers exp max and publishes
// the HUD snapshot.
func levelUp(g *Game, _ core.InputFrame, _ time.Duration) {
	p := Player.Get(g.playerEntry())
	growth := g.cfg.Progression.ExpGrowth
	for p.ExpMax > 0 && p.Exp >= p.ExpMax {
		p.Exp -= p.ExpMax
		p.Level++
		p.ExpMax = int(math.Ceil(float64(p.ExpMax) * growth))
		g.ev.levelUp.Publish(g.world, LevelUpEvent{Level: p.Level, ExpMax: p.ExpMax})
	}
	g.res.Level = LevelInfo{Value: p.Level, Exp: p.Exp, ExpMax: p.ExpMax}
}
