package ninja

import (
	"sync"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// ecsMu guards donburi's package-level counters. World IDs and component
// type IDs are handed out without locking, and SSH sessions create games
// on their own goroutines.
var ecsMu sync.Mutex

// newWorld creates a donburi world with a unique ID.
func newWorld() donburi.World {
	ecsMu.Lock()
	defer ecsMu.Unlock()
	return donburi.NewWorld()
}

// queries are owned by one Game. A donburi query caches matches per world,
// so sharing one between games would share that cache across goroutines.
type queries struct {
	positioned *query.Query
	player     *query.Query
	enemies    *query.Query
	damage     *query.Query
	shurikens  *query.Query
	grenades   *query.Query
	missiles   *query.Query
	explosions *query.Query
	runEnts    *query.Query

	// layers are drawn back to front.
	layers []*query.Query
}

func newQueries() *queries {
	return &queries{
		positioned: query.NewQuery(filter.Contains(Transform)),
		player:     query.NewQuery(filter.Contains(Player, Transform)),
		enemies:    query.NewQuery(filter.Contains(Enemy, Transform, Collider)),
		damage:     query.NewQuery(filter.Contains(Damage, Transform, Collider)),
		shurikens:  query.NewQuery(filter.Contains(Shuriken, Transform)),
		grenades:   query.NewQuery(filter.Contains(Grenade, Transform)),
		missiles:   query.NewQuery(filter.Contains(HomingMissile, Transform)),
		explosions: query.NewQuery(filter.Contains(Explosion)),
		runEnts: query.NewQuery(filter.Or(
			filter.Contains(Player),
			filter.Contains(Enemy),
			filter.Contains(Damage),
			filter.Contains(Explosion),
		)),
		layers: []*query.Query{
			query.NewQuery(filter.Contains(Explosion, Transform, Sprite)),
			query.NewQuery(filter.Contains(Enemy, Transform, Sprite)),
			query.NewQuery(filter.And(
				filter.Contains(Damage, Transform, Sprite),
				filter.Not(filter.Contains(Enemy)),
			)),
			query.NewQuery(filter.Contains(Player, Transform, Sprite)),
		},
	}
}

// collect snapshots matching entities so systems can create and remove
// entities without mutating the storage they iterate.
func collect(w donburi.World, q *query.Query) []donburi.Entity {
	var out []donburi.Entity
	q.Each(w, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}

// playerEntry returns the player. A missing player is a programming error.
func (g *Game) playerEntry() *donburi.Entry {
	e, ok := g.q.player.First(g.world)
	if !ok {
		panic("ninja: no player in world")
	}
	return e
}

// despawn removes entities that are still alive. Duplicates are ignored.
func despawn(w donburi.World, ents []donburi.Entity) {
	for _, e := range ents {
		if w.Valid(e) {
			w.Remove(e)
		}
	}
}
