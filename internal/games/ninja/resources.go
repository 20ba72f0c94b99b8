package ninja

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/ninja-killers/internal/config"
	"github.com/vovakirdan/ninja-killers/internal/core"
	"github.com/vovakirdan/ninja-killers/internal/leaderboard"
)

// Actions is the per-tick intent derived from input.
type Actions struct {
	Movement core.Vec2 // unit vector, zero when idle
	Moving   bool
	Shoot    bool
	Grenade  bool
	Missile  bool
}

// LevelInfo is the snapshot the HUD reads.
type LevelInfo struct {
	Value  int
	Exp    int
	ExpMax int
}

// SpawnTimer paces ninja spawns. Its interval halves over a run down to a floor.
type SpawnTimer struct {
	timer core.Timer
	dm    *config.DifficultyManager
}

// NewSpawnTimer starts a repeating timer at the initial interval.
func NewSpawnTimer(dm *config.DifficultyManager) *SpawnTimer {
	return &SpawnTimer{
		timer: core.TimerFromSeconds(dm.InitialInterval(), core.TimerRepeating),
		dm:    dm,
	}
}

// Tick advances the timer and reports whether a ninja should spawn.
func (s *SpawnTimer) Tick(dt time.Duration) bool {
	return s.timer.Tick(dt)
}

// Reset restores the initial interval.
func (s *SpawnTimer) Reset() {
	s.timer = core.TimerFromSeconds(s.dm.InitialInterval(), core.TimerRepeating)
}

// Halve shortens the interval and returns the new value in seconds.
func (s *SpawnTimer) Halve() float64 {
	next := s.dm.Halve(s.Interval())
	s.timer = core.TimerFromSeconds(next, core.TimerRepeating)
	return next
}

// Interval returns the current spawn interval in seconds.
func (s *SpawnTimer) Interval() float64 {
	return s.timer.Duration().Seconds()
}

// Arena is the playfield in world cells, origin at its top-left corner.
type Arena struct {
	Width, Height float64
}

// Center returns the middle of the arena.
func (a Arena) Center() core.Vec2 {
	return core.V(a.Width/2, a.Height/2)
}

// Inside reports whether a box centred at p with the given half size lies
// strictly within the arena.
func (a Arena) Inside(p, half core.Vec2) bool {
	return p.X > half.X && p.X < a.Width-half.X &&
		p.Y > half.Y && p.Y < a.Height-half.Y
}

// Contains reports whether p lies in the arena at all.
func (a Arena) Contains(p core.Vec2) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}

// Clamp pulls p into the arena, keeping half clear of the edges where possible.
func (a Arena) Clamp(p, half core.Vec2) core.Vec2 {
	return core.V(
		core.ClampF(p.X, min(half.X, a.Width/2), max(a.Width-half.X, a.Width/2)),
		core.ClampF(p.Y, min(half.Y, a.Height/2), max(a.Height-half.Y, a.Height/2)),
	)
}

// Cooldowns rate-limit each weapon. A weapon may fire on the tick its timer wraps.
type Cooldowns struct {
	Shuriken core.Timer
	Grenade  core.Timer
	Missile  core.Timer
}

func newCooldowns(ms int) Cooldowns {
	d := time.Duration(ms) * time.Millisecond
	return Cooldowns{
		Shuriken: core.NewTimer(d, core.TimerRepeating),
		Grenade:  core.NewTimer(d, core.TimerRepeating),
		Missile:  core.NewTimer(d, core.TimerRepeating),
	}
}

// Resources are the world's singletons.
type Resources struct {
	Actions       Actions
	Score         int
	Level         LevelInfo
	SpawnTimer    *SpawnTimer
	SpawnModifier core.Timer
	PlayerName    []rune
	Leaderboard   *leaderboard.Leaderboard
	Textures      *TextureAssets
	Arena         Arena
	Rand          *rand.Rand
	Cooldowns     Cooldowns

	LastDeath string // message of the most recent Death event
	LastRank  int    // leaderboard rank of the last finished run, 0 if it missed
	Kills     int
	LevelUps  int
	Paused    bool

	// runs collects RunRecords finished during the current tick.
	runs []core.RunRecord
}

// PlayerNameOrDefault returns the typed name, or the anonymous name when blank.
func (r *Resources) PlayerNameOrDefault() string {
	name := trimName(string(r.PlayerName))
	if name == "" {
		return leaderboard.AnonymousName
	}
	return name
}
