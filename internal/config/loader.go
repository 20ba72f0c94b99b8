package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadNinja loads Ninja Killers configuration.
// Search order: customPath -> ~/.ninja/configs/ninja.yaml -> ./configs/ninja.yaml -> embedded default
func LoadNinja(customPath string) (NinjaConfig, error) {
	// Start from the defaults so a partial file only overrides what it names.
	cfg := DefaultNinjaConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("ninja.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "ninja.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultNinjaYAML, &cfg); err != nil {
		return DefaultNinjaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (NinjaConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NinjaConfig{}, false
	}
	cfg := DefaultNinjaConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NinjaConfig{}, false
	}
	if cfg.Validate() != nil {
		return NinjaConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ninja", "configs", filename)
}

// ApplyNinjaPreset modifies the config based on a difficulty preset.
// Scales are relative, so a preset applied to a custom file keeps its proportions.
func ApplyNinjaPreset(cfg *NinjaConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	s := ScalingForPreset(preset)
	cfg.Difficulty.SpawnInterval *= s.SpawnInterval
	cfg.Difficulty.HalvingPeriod *= s.HalvingPeriod
	cfg.Difficulty.SpeedMultiplier *= s.EnemySpeed
	if cfg.Difficulty.MinSpawn > cfg.Difficulty.SpawnInterval {
		cfg.Difficulty.MinSpawn = cfg.Difficulty.SpawnInterval
	}
}
