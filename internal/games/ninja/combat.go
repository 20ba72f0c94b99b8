package ninja

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// awardKill credits score and exp for a ninja and announces the kill.
func (g *Game) awardKill(level int, by KillCause) {
	g.res.Score += g.cfg.Progression.ScorePerKill
	gainExp(g, g.cfg.Progression.ExpPerKill)
	g.ev.killed.Publish(g.world, EnemyKilledEvent{Level: level, By: by})
}

// causeOf names the weapon behind a Damage entity.
func causeOf(e *donburi.Entry) KillCause {
	switch {
	case e.HasComponent(Grenade):
		return KillByGrenade
	case e.HasComponent(HomingMissile):
		return KillByMissile
	default:
		return KillByShuriken
	}
}

// resolveHits kills ninjas touched by Damage entities. A ninja dies at most
// once per tick even when several projectiles overlap it.
func resolveHits(g *Game, _ core.InputFrame, _ time.Duration) {
	enemies := collect(g.world, g.q.enemies)
	if len(enemies) == 0 {
		return
	}

	dead := make(map[donburi.Entity]bool)
	var spent []donburi.Entity
	for _, d := range collect(g.world, g.q.damage) {
		weapon := g.world.Entry(d)
		box := bounds(weapon)
		for _, en := range enemies {
			if dead[en] {
				continue
			}
			enemy := g.world.Entry(en)
			if !box.Intersects(bounds(enemy)) {
				continue
			}
			dead[en] = true
			g.awardKill(Enemy.Get(enemy).Level, causeOf(weapon))

			if !weapon.HasComponent(Shuriken) {
				continue
			}
			s := Shuriken.Get(weapon)
			if s.HitsLeft < 0 {
				continue
			}
			s.HitsLeft--
			if s.HitsLeft == 0 {
				spent = append(spent, d)
				break
			}
		}
	}

	killed := make([]donburi.Entity, 0, len(dead))
	for _, en := range enemies {
		if dead[en] {
			killed = append(killed, en)
		}
	}
	despawn(g.world, killed)
	despawn(g.world, spent)
}
