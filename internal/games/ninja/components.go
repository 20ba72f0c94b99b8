package ninja

import (
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

// TransformData is an entity's centre in arena cells.
type TransformData struct {
	Pos core.Vec2
}

// SpriteData selects a frame from the texture assets.
type SpriteData struct {
	Key   string
	Frame int
}

// PlayerData holds the player's facing and experience.
type PlayerData struct {
	Facing core.Vec2
	Level  int
	Exp    int
	ExpMax int
}

// EnemyData holds a ninja's heading and level.
// Turn is a repeating timer; when it fires the ninja picks a new heading.
type EnemyData struct {
	Direction core.Vec2
	Level     int
	Turn      core.Timer
}

// ShurikenData is a thrown star. HitsLeft < 0 means unlimited.
type ShurikenData struct {
	Speed     float64
	Lifetime  float64
	Direction core.Vec2
	Anim      core.Timer
	HitsLeft  int
}

// GrenadeData flies to Target and detonates there or when Lifetime runs out.
type GrenadeData struct {
	Target   core.Vec2
	Speed    float64
	Lifetime float64
}

// HomingMissileData chases Tracked while it lives, then flies to Target.
type HomingMissileData struct {
	Target   core.Vec2
	Tracked  donburi.Entity
	Tracking bool
	Speed    float64
	Lifetime float64
	Anim     core.Timer
}

// ExplosionData is a short-lived blast marker. Its sprite frames play
// once over the lifetime.
type ExplosionData struct {
	Lifetime core.Timer
}

// DamageData tags entities that kill ninjas on contact.
type DamageData struct{}

// ColliderData is the half size used for AABB tests.
type ColliderData struct {
	Half core.Vec2
}

var (
	Transform     = donburi.NewComponentType[TransformData]()
	Sprite        = donburi.NewComponentType[SpriteData]()
	Player        = donburi.NewComponentType[PlayerData]()
	Enemy         = donburi.NewComponentType[EnemyData]()
	Shuriken      = donburi.NewComponentType[ShurikenData]()
	Grenade       = donburi.NewComponentType[GrenadeData]()
	HomingMissile = donburi.NewComponentType[HomingMissileData]()
	Explosion     = donburi.NewComponentType[ExplosionData]()
	Damage        = donburi.NewComponentType[DamageData]()
	Collider      = donburi.NewComponentType[ColliderData]()
)

// bounds returns the entity's collision box.
func bounds(e *donburi.Entry) core.AABB {
	return core.NewAABB(Transform.Get(e).Pos, Collider.Get(e).Half)
}
