package ninja

import (
	"math"
	"math/rand"
	"time"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// randomDirection returns a uniformly distributed unit vector.
func randomDirection(r *rand.Rand) core.Vec2 {
	a := r.Float64() * 2 * math.Pi
	return core.V(math.Cos(a), math.Sin(a))
}

// accelerateSpawns halves the spawn interval each time the modifier fires.
func accelerateSpawns(g *Game, _ core.InputFrame, dt time.Duration) {
	if !g.res.SpawnModifier.Tick(dt) || !g.dm.IsEnabled() {
		return
	}
	prev := g.res.SpawnTimer.Interval()
	next := g.res.SpawnTimer.Halve()
	g.logger().Debug("spawn interval halved", "from", prev, "to", next)
}

// spawnEnemy adds a ninja each time the spawn timer fires, up to the cap.
func spawnEnemy(g *Game, _ core.InputFrame, dt time.Duration) {
	ec := g.cfg.Enemies
	if g.q.enemies.Count(g.world) > ec.MaxEnemies {
		return
	}
	if !g.res.SpawnTimer.Tick(dt) {
		return
	}

	r := g.res.Rand
	level := max(1, g.res.Level.Value-1+r.Intn(4))
	half := core.V(ec.HalfWidth, ec.HalfHeight)
	player := Transform.Get(g.playerEntry()).Pos

	var pos core.Vec2
	for try := 0; try <= ec.SpawnRetries; try++ {
		pos = g.spawnPoint(half)
		if pos.Distance(player) >= ec.SafeRadius {
			break
		}
	}

	turn := ec.TurnMin + r.Float64()*(ec.TurnMax-ec.TurnMin)
	e := g.world.Create(Transform, Sprite, Enemy, Collider)
	entry := g.world.Entry(e)
	Transform.SetValue(entry, TransformData{Pos: pos})
	Sprite.SetValue(entry, SpriteData{Key: SpriteCharacter})
	Enemy.SetValue(entry, EnemyData{
		Direction: randomDirection(r),
		Level:     level,
		Turn:      core.TimerFromSeconds(turn, core.TimerRepeating),
	})
	Collider.SetValue(entry, ColliderData{Half: half})

	g.logger().Debug("ninja spawned", "level", level, "x", pos.X, "y", pos.Y)
}

// spawnPoint picks a random point in the spawn region around the centre.
func (g *Game) spawnPoint(half core.Vec2) core.Vec2 {
	ec := g.cfg.Enemies
	r := g.res.Rand
	offset := core.V(
		(r.Float64()*2-1)*ec.SpawnHalfWidth,
		(r.Float64()*2-1)*ec.SpawnHalfHeight,
	)
	return g.res.Arena.Clamp(g.res.Arena.Center().Add(offset), half)
}

// moveEnemies walks ninjas along their heading and re-aims them when their
// turn timer fires. Ninjas chase a moving player and wander otherwise.
func moveEnemies(g *Game, _ core.InputFrame, dt time.Duration) {
	player := Transform.Get(g.playerEntry()).Pos
	chasing := g.res.Actions.Moving
	perLevel := g.cfg.Enemies.SpeedPerLevel

	g.q.enemies.Each(g.world, func(entry *donburi.Entry) {
		en := Enemy.Get(entry)
		t := Transform.Get(entry)

		speed := g.dm.EnemySpeed(perLevel, en.Level)
		next := t.Pos.Add(en.Direction.Scale(speed * dt.Seconds()))
		if g.res.Arena.Inside(next, Collider.Get(entry).Half) {
			t.Pos = next
		}

		if !en.Turn.Tick(dt) {
			return
		}
		dir := player.Sub(t.Pos).Normalize()
		if !chasing || dir.IsZero() {
			dir = randomDirection(g.res.Rand)
		}
		en.Direction = dir
	})
}
