package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds process-level options read from NINJA_* environment variables.
// Command-line flags override these when set explicitly.
type Settings struct {
	DBPath      string        `env:"NINJA_DB" envDefault:"~/.ninja/scores.db"`
	FPS         int           `env:"NINJA_FPS" envDefault:"60"`
	Seed        int64         `env:"NINJA_SEED" envDefault:"0"`
	ConfigPath  string        `env:"NINJA_CONFIG"`
	AssetsPath  string        `env:"NINJA_ASSETS"`
	Difficulty  string        `env:"NINJA_DIFFICULTY"`
	LogLevel    string        `env:"NINJA_LOG_LEVEL" envDefault:"warn"`
	LogFile     string        `env:"NINJA_LOG_FILE"`
	SSHAddr     string        `env:"NINJA_SSH_ADDR" envDefault:":23234"`
	HostKeyPath string        `env:"NINJA_HOST_KEY"`
	IdleTimeout time.Duration `env:"NINJA_IDLE_TIMEOUT" envDefault:"30m"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadSettings reads Settings from the environment and checks them.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return s, err
	}
	if s.FPS <= 0 {
		return s, fmt.Errorf("NINJA_FPS must be positive, got %d", s.FPS)
	}
	if _, err := ParseDifficultyPreset(s.Difficulty); err != nil {
		return s, fmt.Errorf("NINJA_DIFFICULTY: %w", err)
	}
	return s, nil
}
