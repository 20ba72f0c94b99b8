package ninja

import (
	"math"

	"github.com/yohamta/donburi"
)

// Snapshot is a compact summary of a run, used to compare replays.
// Positions are in hundredths of a cell.
type Snapshot struct {
	Tick          uint64
	State         string
	Score         int
	Level         int
	Exp           int
	ExpMax        int
	Kills         int
	PlayerX       int
	PlayerY       int
	Enemies       int
	Projectiles   int
	Explosions    int
	SpawnInterval int // milliseconds

	// EnemyData holds 3 ints per ninja: X, Y, Level.
	EnemyData []int
}

// Snapshot returns the current run summary.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		State:  g.state.String(),
		Score:  g.res.Score,
		Level:  g.res.Level.Value,
		Exp:    g.res.Level.Exp,
		ExpMax: g.res.Level.ExpMax,
		Kills:  g.res.Kills,

		Projectiles:   g.q.damage.Count(g.world),
		Explosions:    g.q.explosions.Count(g.world),
		SpawnInterval: int(g.res.SpawnTimer.Interval() * 1000),
	}

	if p, ok := g.q.player.First(g.world); ok {
		pos := Transform.Get(p).Pos
		snap.PlayerX, snap.PlayerY = fixed(pos.X), fixed(pos.Y)
	}

	g.q.enemies.Each(g.world, func(e *donburi.Entry) {
		pos := Transform.Get(e).Pos
		snap.EnemyData = append(snap.EnemyData, fixed(pos.X), fixed(pos.Y), Enemy.Get(e).Level)
	})
	snap.Enemies = len(snap.EnemyData) / 3
	return snap
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Score, snap.Level, snap.Exp, snap.ExpMax, snap.Kills,
		snap.PlayerX, snap.PlayerY, snap.Enemies, snap.Projectiles,
		snap.Explosions, snap.SpawnInterval,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	return h
}
