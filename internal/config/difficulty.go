package config

import "math"

// PresetScaling holds the multipliers a difficulty preset applies.
type PresetScaling struct {
	SpawnInterval float64
	HalvingPeriod float64
	EnemySpeed    float64
}

// ScalingForPreset returns the multipliers for a difficulty preset.
func ScalingForPreset(preset DifficultyPreset) PresetScaling {
	switch preset {
	case DifficultyEasy:
		return PresetScaling{SpawnInterval: 1.5, HalvingPeriod: 1.5, EnemySpeed: 0.75}
	case DifficultyHard:
		return PresetScaling{SpawnInterval: 0.6, HalvingPeriod: 0.75, EnemySpeed: 1.25}
	default:
		return PresetScaling{SpawnInterval: 1, HalvingPeriod: 1, EnemySpeed: 1}
	}
}

// DifficultyManager calculates the spawn schedule and enemy speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	if cfg.SpeedMultiplier <= 0 {
		cfg.SpeedMultiplier = 1
	}
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the spawn interval shrinks over time.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.HalvingPeriod > 0
}

// InitialInterval returns the spawn interval at the start of a run.
func (d *DifficultyManager) InitialInterval() float64 {
	return d.cfg.SpawnInterval
}

// HalvingPeriod returns how often the spawn interval halves.
func (d *DifficultyManager) HalvingPeriod() float64 {
	return d.cfg.HalvingPeriod
}

// Halve returns the next, shorter spawn interval, never below the floor.
// With acceleration disabled the interval is returned unchanged.
func (d *DifficultyManager) Halve(current float64) float64 {
	if !d.IsEnabled() {
		return current
	}
	return clampF(current/2, d.minSpawn(), math.Max(current, d.minSpawn()))
}

// EnemySpeed returns the movement speed of a ninja of the given level.
func (d *DifficultyManager) EnemySpeed(perLevel float64, level int) float64 {
	return perLevel * float64(level) * d.cfg.SpeedMultiplier
}

func (d *DifficultyManager) minSpawn() float64 {
	if d.cfg.MinSpawn <= 0 {
		return math.SmallestNonzeroFloat64
	}
	return d.cfg.MinSpawn
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
