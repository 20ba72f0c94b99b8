// Package config provides YAML-based game configuration loading,
// difficulty presets and environment settings for Ninja Killers.
package config

import (
	"errors"
	"fmt"
)

// NinjaConfig contains all tuning for a Ninja Killers world.
// Distances are in terminal cells, durations in seconds.
type NinjaConfig struct {
	Arena       ArenaConfig       `yaml:"arena"`
	Player      PlayerConfig      `yaml:"player"`
	Enemies     EnemyConfig       `yaml:"enemies"`
	Weapons     WeaponsConfig     `yaml:"weapons"`
	Progression ProgressionConfig `yaml:"progression"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// ArenaConfig defines the playfield. A zero width or height fits the screen.
type ArenaConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	HUDRows int `yaml:"hud_rows"`
}

// PlayerConfig defines the player's body and movement.
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`
	HalfWidth   float64 `yaml:"half_width"`
	HalfHeight  float64 `yaml:"half_height"`
	SpawnOffset float64 `yaml:"spawn_offset"` // rows above the arena centre
}

// EnemyConfig defines ninja spawning and steering.
type EnemyConfig struct {
	MaxEnemies      int     `yaml:"max_enemies"`
	SpeedPerLevel   float64 `yaml:"speed_per_level"`
	HalfWidth       float64 `yaml:"half_width"`
	HalfHeight      float64 `yaml:"half_height"`
	SpawnHalfWidth  float64 `yaml:"spawn_half_width"`
	SpawnHalfHeight float64 `yaml:"spawn_half_height"`
	SafeRadius      float64 `yaml:"safe_radius"`
	SpawnRetries    int     `yaml:"spawn_retries"`
	TurnMin         float64 `yaml:"turn_min"`
	TurnMax         float64 `yaml:"turn_max"`
}

// WeaponsConfig groups the three weapons and their shared limits.
type WeaponsConfig struct {
	CooldownMS     int            `yaml:"cooldown_ms"`
	MaxProjectiles int            `yaml:"max_projectiles"`
	Shuriken       ShurikenConfig `yaml:"shuriken"`
	Grenade        GrenadeConfig  `yaml:"grenade"`
	Missile        MissileConfig  `yaml:"missile"`
}

// ShurikenConfig defines the thrown star. Durability 0 means unlimited hits.
type ShurikenConfig struct {
	Speed         float64 `yaml:"speed"`
	Lifetime      float64 `yaml:"lifetime"`
	HalfSize      float64 `yaml:"half_size"`
	SpreadDegrees float64 `yaml:"spread_degrees"`
	LevelsPerStar int     `yaml:"levels_per_star"`
	Animation     float64 `yaml:"animation"`
	Durability    int     `yaml:"durability"`
}

// GrenadeConfig defines the thrown grenade and its blast.
type GrenadeConfig struct {
	Speed       float64 `yaml:"speed"`
	Lifetime    float64 `yaml:"lifetime"`
	HalfSize    float64 `yaml:"half_size"`
	Range       float64 `yaml:"range"`
	BlastRadius float64 `yaml:"blast_radius"`
	Explosion   float64 `yaml:"explosion"`
}

// MissileConfig defines the homing missile.
type MissileConfig struct {
	Speed     float64 `yaml:"speed"`
	Lifetime  float64 `yaml:"lifetime"`
	HalfSize  float64 `yaml:"half_size"`
	Animation float64 `yaml:"animation"`
}

// ProgressionConfig defines experience and scoring.
type ProgressionConfig struct {
	ExpMax       int     `yaml:"exp_max"`
	ExpGrowth    float64 `yaml:"exp_growth"`
	ExpPerKill   int     `yaml:"exp_per_kill"`
	ScorePerKill int     `yaml:"score_per_kill"`
}

// DifficultyConfig defines the spawn schedule.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"` // false keeps the spawn interval fixed
	SpawnInterval   float64 `yaml:"spawn_interval"`
	MinSpawn        float64 `yaml:"min_spawn"`
	HalvingPeriod   float64 `yaml:"halving_period"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"`
}

// Validate reports every setting that would make the world unplayable.
func (c NinjaConfig) Validate() error {
	var errs []error
	if c.Arena.Width < 0 || c.Arena.Height < 0 || c.Arena.HUDRows < 0 {
		errs = append(errs, errors.New("arena dimensions must not be negative"))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player.speed must be positive, got %v", c.Player.Speed))
	}
	if c.Player.HalfWidth <= 0 || c.Player.HalfHeight <= 0 {
		errs = append(errs, errors.New("player half size must be positive"))
	}
	if c.Enemies.MaxEnemies < 0 {
		errs = append(errs, errors.New("enemies.max_enemies must not be negative"))
	}
	if c.Enemies.TurnMin <= 0 || c.Enemies.TurnMax < c.Enemies.TurnMin {
		errs = append(errs, fmt.Errorf("enemies turn range [%v, %v) is invalid", c.Enemies.TurnMin, c.Enemies.TurnMax))
	}
	if c.Weapons.CooldownMS < 0 {
		errs = append(errs, errors.New("weapons.cooldown_ms must not be negative"))
	}
	if c.Weapons.Shuriken.LevelsPerStar <= 0 {
		errs = append(errs, errors.New("weapons.shuriken.levels_per_star must be positive"))
	}
	if c.Progression.ExpMax <= 0 {
		errs = append(errs, errors.New("progression.exp_max must be positive"))
	}
	if c.Progression.ExpGrowth < 1 {
		errs = append(errs, errors.New("progression.exp_growth must be at least 1"))
	}
	if c.Difficulty.SpawnInterval <= 0 {
		errs = append(errs, errors.New("difficulty.spawn_interval must be positive"))
	}
	if c.Difficulty.MinSpawn <= 0 || c.Difficulty.MinSpawn > c.Difficulty.SpawnInterval {
		errs = append(errs, errors.New("difficulty.min_spawn must be in (0, spawn_interval]"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables spawn acceleration.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
