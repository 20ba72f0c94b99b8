package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg NinjaConfig
	if err := yaml.Unmarshal(GetDefaultYAML("ninja"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultNinjaConfig()) {
		t.Errorf("embedded defaults drifted from DefaultNinjaConfig:\n yaml: %+v\n code: %+v", cfg, DefaultNinjaConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("unknown") != nil {
		t.Error("expected nil for unknown game")
	}
}

func TestLoadNinjaCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ninja.yaml")
	data := []byte("player:\n  speed: 40\nenemies:\n  max_enemies: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadNinja(path)
	if err != nil {
		t.Fatalf("LoadNinja: %v", err)
	}
	if cfg.Player.Speed != 40 {
		t.Errorf("player speed = %v, expected 40", cfg.Player.Speed)
	}
	if cfg.Enemies.MaxEnemies != 5 {
		t.Errorf("max enemies = %d, expected 5", cfg.Enemies.MaxEnemies)
	}
	if cfg.Weapons.Grenade.Range != DefaultNinjaConfig().Weapons.Grenade.Range {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadNinjaCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("progression:\n  exp_max: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"malformed yaml", bad},
		{"fails validation", invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadNinja(tt.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadNinjaSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := LoadNinja("")
	if err != nil {
		t.Fatalf("LoadNinja: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultNinjaConfig()) {
		t.Error("expected embedded defaults when no config files exist")
	}

	// Local configs directory.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "ninja.yaml"), []byte("enemies:\n  max_enemies: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadNinja("")
	if cfg.Enemies.MaxEnemies != 7 {
		t.Errorf("local config: max enemies = %d, expected 7", cfg.Enemies.MaxEnemies)
	}

	// User config wins over local.
	userDir := filepath.Join(home, ".ninja", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "ninja.yaml"), []byte("enemies:\n  max_enemies: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadNinja("")
	if cfg.Enemies.MaxEnemies != 9 {
		t.Errorf("user config: max enemies = %d, expected 9", cfg.Enemies.MaxEnemies)
	}

	// An invalid user file is skipped.
	if err := os.WriteFile(filepath.Join(userDir, "ninja.yaml"), []byte("player:\n  speed: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadNinja("")
	if cfg.Enemies.MaxEnemies != 7 {
		t.Errorf("invalid user config should fall through to local, got max enemies %d", cfg.Enemies.MaxEnemies)
	}
}

func TestApplyNinjaPreset(t *testing.T) {
	base := DefaultNinjaConfig().Difficulty

	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		spawn       float64
		halving     float64
		speedFactor float64
	}{
		{DifficultyEasy, true, base.SpawnInterval * 1.5, base.HalvingPeriod * 1.5, 0.75},
		{DifficultyNormal, true, base.SpawnInterval, base.HalvingPeriod, 1},
		{DifficultyHard, true, base.SpawnInterval * 0.6, base.HalvingPeriod * 0.75, 1.25},
		{DifficultyFixed, false, base.SpawnInterval, base.HalvingPeriod, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultNinjaConfig()
			ApplyNinjaPreset(&cfg, tt.preset)
			d := cfg.Difficulty
			if d.Enabled != tt.enabled {
				t.Errorf("enabled = %v, expected %v", d.Enabled, tt.enabled)
			}
			if d.SpawnInterval != tt.spawn {
				t.Errorf("spawn interval = %v, expected %v", d.SpawnInterval, tt.spawn)
			}
			if d.HalvingPeriod != tt.halving {
				t.Errorf("halving period = %v, expected %v", d.HalvingPeriod, tt.halving)
			}
			if d.SpeedMultiplier != base.SpeedMultiplier*tt.speedFactor {
				t.Errorf("speed multiplier = %v, expected %v", d.SpeedMultiplier, base.SpeedMultiplier*tt.speedFactor)
			}
		})
	}
}

func TestApplyNinjaPresetKeepsFloorBelowInterval(t *testing.T) {
	cfg := DefaultNinjaConfig()
	cfg.Difficulty.SpawnInterval = 1
	cfg.Difficulty.MinSpawn = 0.8
	ApplyNinjaPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.MinSpawn > cfg.Difficulty.SpawnInterval {
		t.Errorf("min spawn %v above interval %v", cfg.Difficulty.MinSpawn, cfg.Difficulty.SpawnInterval)
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"brutal", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficultyPreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficultyPreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyHard) {
		t.Error("IsFixedPreset mismatch")
	}
}

func TestDifficultyManagerHalve(t *testing.T) {
	dm := NewDifficultyManager(DefaultNinjaConfig().Difficulty)

	want := []float64{2.5, 1.25, 0.625, 0.3125, 0.25, 0.25}
	interval := dm.InitialInterval()
	for i, w := range want {
		interval = dm.Halve(interval)
		if interval != w {
			t.Fatalf("halving %d: interval = %v, expected %v", i+1, interval, w)
		}
	}

	cfg := DefaultNinjaConfig().Difficulty
	cfg.Enabled = false
	dm = NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Error("expected disabled")
	}
	if got := dm.Halve(4); got != 4 {
		t.Errorf("disabled Halve(4) = %v, expected 4", got)
	}
}

func TestDifficultyManagerEnemySpeed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{SpeedMultiplier: 1.25})
	if got := dm.EnemySpeed(4, 3); got != 15 {
		t.Errorf("EnemySpeed(4, 3) = %v, expected 15", got)
	}
	// Zero multiplier falls back to 1.
	dm = NewDifficultyManager(DifficultyConfig{})
	if got := dm.EnemySpeed(3, 2); got != 6 {
		t.Errorf("EnemySpeed(3, 2) = %v, expected 6", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NinjaConfig)
	}{
		{"negative arena", func(c *NinjaConfig) { c.Arena.Width = -1 }},
		{"zero player speed", func(c *NinjaConfig) { c.Player.Speed = 0 }},
		{"inverted turn range", func(c *NinjaConfig) { c.Enemies.TurnMax = 0.5 }},
		{"zero levels per star", func(c *NinjaConfig) { c.Weapons.Shuriken.LevelsPerStar = 0 }},
		{"shrinking exp", func(c *NinjaConfig) { c.Progression.ExpGrowth = 0.5 }},
		{"floor above interval", func(c *NinjaConfig) { c.Difficulty.MinSpawn = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultNinjaConfig()
			tt.mutate(&cfg)
			if cfg.Validate() == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("NINJA_FPS", "30")
	t.Setenv("NINJA_SEED", "42")
	t.Setenv("NINJA_DIFFICULTY", "hard")
	t.Setenv("NINJA_IDLE_TIMEOUT", "5m")
	t.Setenv("NINJA_DB", "/tmp/x.db")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.FPS != 30 || s.Seed != 42 || s.Difficulty != "hard" {
		t.Errorf("unexpected settings: %+v", s)
	}
	if s.IdleTimeout != 5*time.Minute {
		t.Errorf("idle timeout = %v, expected 5m", s.IdleTimeout)
	}
	if s.DBPath != "/tmp/x.db" {
		t.Errorf("db path = %q", s.DBPath)
	}
	if s.SSHAddr != ":23234" || s.LogLevel != "warn" {
		t.Errorf("defaults not applied: addr %q level %q", s.SSHAddr, s.LogLevel)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non-numeric fps", "NINJA_FPS", "fast"},
		{"zero fps", "NINJA_FPS", "0"},
		{"bad duration", "NINJA_IDLE_TIMEOUT", "soon"},
		{"unknown difficulty", "NINJA_DIFFICULTY", "brutal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadSettings(); err == nil {
				t.Errorf("%s=%s: expected error", tt.key, tt.value)
			}
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := DefaultNinjaConfig()
	cfg.Player.Speed = 0
	cfg.Progression.ExpGrowth = 0.5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"player.speed", "progression.exp_growth"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
