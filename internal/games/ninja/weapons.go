package ninja

import (
	"math"
	"time"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// projectileRoom reports whether another Damage entity fits under the cap.
func (g *Game) projectileRoom() bool {
	return g.q.damage.Count(g.world) <= g.cfg.Weapons.MaxProjectiles
}

// aim is the direction weapons fire in: the movement, or facing when idle.
func (g *Game) aim(player *donburi.Entry) core.Vec2 {
	if g.res.Actions.Moving {
		return g.res.Actions.Movement
	}
	return Player.Get(player).Facing
}

// fireShuriken throws a fan of stars. Higher levels throw more at once.
func fireShuriken(g *Game, _ core.InputFrame, dt time.Duration) {
	ready := g.res.Cooldowns.Shuriken.Tick(dt)
	if !ready || !g.res.Actions.Shoot || !g.projectileRoom() {
		return
	}

	sc := g.cfg.Weapons.Shuriken
	player := g.playerEntry()
	origin := Transform.Get(player).Pos
	dir := g.aim(player)
	count := Player.Get(player).Level/sc.LevelsPerStar + 1
	spread := sc.SpreadDegrees * math.Pi / 180

	hits := sc.Durability
	if hits <= 0 {
		hits = -1
	}
	for i := range count {
		offset := (float64(i) - float64(count-1)/2) * spread
		e := g.world.Create(Transform, Sprite, Shuriken, Damage, Collider)
		entry := g.world.Entry(e)
		Transform.SetValue(entry, TransformData{Pos: origin})
		Sprite.SetValue(entry, SpriteData{Key: SpriteShuriken})
		Shuriken.SetValue(entry, ShurikenData{
			Speed:     sc.Speed,
			Lifetime:  sc.Lifetime,
			Direction: dir.Rotate(offset),
			Anim:      core.TimerFromSeconds(sc.Animation, core.TimerRepeating),
			HitsLeft:  hits,
		})
		Collider.SetValue(entry, ColliderData{Half: core.V(sc.HalfSize, sc.HalfSize)})
	}
}

// throwGrenade lobs a grenade ahead of the player. One may be live at a time.
func throwGrenade(g *Game, _ core.InputFrame, dt time.Duration) {
	ready := g.res.Cooldowns.Grenade.Tick(dt)
	if !ready || !g.res.Actions.Grenade || g.q.grenades.Count(g.world) > 0 {
		return
	}

	gc := g.cfg.Weapons.Grenade
	player := g.playerEntry()
	origin := Transform.Get(player).Pos
	half := core.V(gc.HalfSize, gc.HalfSize)
	target := g.res.Arena.Clamp(origin.Add(Player.Get(player).Facing.Scale(gc.Range)), half)

	e := g.world.Create(Transform, Sprite, Grenade, Damage, Collider)
	entry := g.world.Entry(e)
	Transform.SetValue(entry, TransformData{Pos: origin})
	Sprite.SetValue(entry, SpriteData{Key: SpriteGrenade})
	Grenade.SetValue(entry, GrenadeData{Target: target, Speed: gc.Speed, Lifetime: gc.Lifetime})
	Collider.SetValue(entry, ColliderData{Half: half})
}

// launchMissile fires a homing missile at the nearest ninja.
func launchMissile(g *Game, _ core.InputFrame, dt time.Duration) {
	ready := g.res.Cooldowns.Missile.Tick(dt)
	if !ready || !g.res.Actions.Missile || !g.projectileRoom() {
		return
	}

	origin := Transform.Get(g.playerEntry()).Pos
	var (
		nearest donburi.Entity
		target  core.Vec2
		found   bool
		best    = math.Inf(1)
	)
	g.q.enemies.Each(g.world, func(entry *donburi.Entry) {
		pos := Transform.Get(entry).Pos
		if d := pos.Distance(origin); d < best {
			best, nearest, target, found = d, entry.Entity(), pos, true
		}
	})
	if !found {
		return
	}

	mc := g.cfg.Weapons.Missile
	e := g.world.Create(Transform, Sprite, HomingMissile, Damage, Collider)
	entry := g.world.Entry(e)
	Transform.SetValue(entry, TransformData{Pos: origin})
	Sprite.SetValue(entry, SpriteData{Key: SpriteMissile})
	HomingMissile.SetValue(entry, HomingMissileData{
		Target:   target,
		Tracked:  nearest,
		Tracking: true,
		Speed:    mc.Speed,
		Lifetime: mc.Lifetime,
		Anim:     core.TimerFromSeconds(mc.Animation, core.TimerRepeating),
	})
	Collider.SetValue(entry, ColliderData{Half: core.V(mc.HalfSize, mc.HalfSize)})
}

// stepToward moves pos toward target by at most step and reports arrival.
func stepToward(pos, target core.Vec2, step float64) (core.Vec2, bool) {
	delta := target.Sub(pos)
	if delta.Len() <= step {
		return target, true
	}
	return pos.Add(delta.Normalize().Scale(step)), false
}

func moveShurikens(g *Game, _ core.InputFrame, dt time.Duration) {
	secs := dt.Seconds()
	var gone []donburi.Entity
	g.q.shurikens.Each(g.world, func(entry *donburi.Entry) {
		s := Shuriken.Get(entry)
		t := Transform.Get(entry)
		s.Lifetime -= secs
		t.Pos = t.Pos.Add(s.Direction.Scale(s.Speed * secs))
		if s.Lifetime <= 0 || !g.res.Arena.Contains(t.Pos) {
			gone = append(gone, entry.Entity())
			return
		}
		if s.Anim.Tick(dt) {
			sp := Sprite.Get(entry)
			sp.Frame = (sp.Frame + 1) % 2
		}
	})
	despawn(g.world, gone)
}

// moveGrenades flies grenades to their target and detonates them on
// arrival or when their fuse runs out.
func moveGrenades(g *Game, _ core.InputFrame, dt time.Duration) {
	secs := dt.Seconds()
	var blasts []core.Vec2
	var gone []donburi.Entity
	g.q.grenades.Each(g.world, func(entry *donburi.Entry) {
		gr := Grenade.Get(entry)
		t := Transform.Get(entry)
		gr.Lifetime -= secs
		pos, arrived := stepToward(t.Pos, gr.Target, gr.Speed*secs)
		t.Pos = pos
		if arrived || gr.Lifetime <= 0 {
			blasts = append(blasts, pos)
			gone = append(gone, entry.Entity())
		}
	})
	despawn(g.world, gone)
	for _, at := range blasts {
		g.detonate(at)
	}
}

// detonate spawns an explosion and kills every ninja in the blast radius.
func (g *Game) detonate(at core.Vec2) {
	gc := g.cfg.Weapons.Grenade
	e := g.world.Create(Transform, Sprite, Explosion)
	entry := g.world.Entry(e)
	Transform.SetValue(entry, TransformData{Pos: at})
	Sprite.SetValue(entry, SpriteData{Key: SpriteExplosion})
	Explosion.SetValue(entry, ExplosionData{Lifetime: core.TimerFromSeconds(gc.Explosion, core.TimerOnce)})

	var killed []donburi.Entity
	g.q.enemies.Each(g.world, func(enemy *donburi.Entry) {
		if Transform.Get(enemy).Pos.Distance(at) > gc.BlastRadius {
			return
		}
		killed = append(killed, enemy.Entity())
		g.awardKill(Enemy.Get(enemy).Level, KillByBlast)
	})
	despawn(g.world, killed)
	g.logger().Debug("grenade detonated", "x", at.X, "y", at.Y, "kills", len(killed))
}

// moveMissiles steers missiles at their ninja while it lives, then at its
// last known position.
func moveMissiles(g *Game, _ core.InputFrame, dt time.Duration) {
	secs := dt.Seconds()
	var gone []donburi.Entity
	g.q.missiles.Each(g.world, func(entry *donburi.Entry) {
		m := HomingMissile.Get(entry)
		if m.Tracking {
			if g.world.Valid(m.Tracked) && g.world.Entry(m.Tracked).HasComponent(Enemy) {
				m.Target = Transform.Get(g.world.Entry(m.Tracked)).Pos
			} else {
				m.Tracking = false
			}
		}

		t := Transform.Get(entry)
		t.Pos, _ = stepToward(t.Pos, m.Target, m.Speed*secs)
		m.Lifetime -= secs
		if m.Lifetime <= 0 {
			gone = append(gone, entry.Entity())
			return
		}
		if m.Anim.Tick(dt) {
			sp := Sprite.Get(entry)
			sp.Frame = (sp.Frame + 1) % 2
		}
	})
	despawn(g.world, gone)
}

func expireExplosions(g *Game, _ core.InputFrame, dt time.Duration) {
	var gone []donburi.Entity
	g.q.explosions.Each(g.world, func(entry *donburi.Entry) {
		ex := Explosion.Get(entry)
		if ex.Lifetime.Tick(dt) {
			gone = append(gone, entry.Entity())
			return
		}
		if n := g.res.Textures.FrameCount(SpriteExplosion); n > 0 {
			Sprite.Get(entry).Frame = min(int(ex.Lifetime.Fraction()*float64(n)), n-1)
		}
	})
	despawn(g.world, gone)
}
