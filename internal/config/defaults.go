package config

import (
	_ "embed"
)

//go:embed defaults/ninja.yaml
var defaultNinjaYAML []byte

// DefaultNinjaConfig returns the default Ninja Killers configuration.
// It mirrors defaults/ninja.yaml and is the fallback when the embed cannot be parsed.
func DefaultNinjaConfig() NinjaConfig {
	return NinjaConfig{
		Arena: ArenaConfig{
			HUDRows: 2,
		},
		Player: PlayerConfig{
			Speed:       24,
			HalfWidth:   1.0,
			HalfHeight:  0.5,
			SpawnOffset: 4,
		},
		Enemies: EnemyConfig{
			MaxEnemies:      50,
			SpeedPerLevel:   3,
			HalfWidth:       1.0,
			HalfHeight:      0.5,
			SpawnHalfWidth:  20,
			SpawnHalfHeight: 8,
			SafeRadius:      10,
			SpawnRetries:    8,
			TurnMin:         1,
			TurnMax:         2,
		},
		Weapons: WeaponsConfig{
			CooldownMS:     100,
			MaxProjectiles: 100,
			Shuriken: ShurikenConfig{
				Speed:         30,
				Lifetime:      10,
				HalfSize:      0.5,
				SpreadDegrees: 15,
				LevelsPerStar: 5,
				Animation:     0.1,
			},
			Grenade: GrenadeConfig{
				Speed:       25,
				Lifetime:    5,
				HalfSize:    0.5,
				Range:       15,
				BlastRadius: 8,
				Explosion:   0.5,
			},
			Missile: MissileConfig{
				Speed:     30,
				Lifetime:  10,
				HalfSize:  0.5,
				Animation: 0.1,
			},
		},
		Progression: ProgressionConfig{
			ExpMax:       10,
			ExpGrowth:    1.5,
			ExpPerKill:   1,
			ScorePerKill: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			SpawnInterval:   5,
			MinSpawn:        0.25,
			HalvingPeriod:   20,
			SpeedMultiplier: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "ninja":
		return defaultNinjaYAML
	default:
		return nil
	}
}
