package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ninja-killers/internal/config"
	"github.com/vovakirdan/ninja-killers/internal/games/ninja"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the embedded default config as YAML. Save it to
~/.ninja/configs/ninja.yaml (or pass --config) to tune the game.

With --effective, print the config the game would actually use after
loading --config and applying --difficulty.

Examples:
  ninja config > ~/.ninja/configs/ninja.yaml
  ninja config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved config instead of the defaults")
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if !flagEffective {
		_, err := os.Stdout.Write(config.GetDefaultYAML(ninja.GameID))
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("config") {
		settings.ConfigPath = flagConfig
	}
	if flags.Changed("difficulty") {
		settings.Difficulty = flagDifficulty
	}
	preset, err := config.ParseDifficultyPreset(settings.Difficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadNinja(settings.ConfigPath)
	if err != nil {
		return err
	}
	if preset != "" {
		config.ApplyNinjaPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
