package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ninja-killers/internal/config"
	"github.com/vovakirdan/ninja-killers/internal/core"
	"github.com/vovakirdan/ninja-killers/internal/games/ninja"
	"github.com/vovakirdan/ninja-killers/internal/platform/tui"
	"github.com/vovakirdan/ninja-killers/internal/registry"
	"github.com/vovakirdan/ninja-killers/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagAssets     string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Ninja Killers",
	Long: `Start a local game.

Controls:
  WASD/Arrows  - Move (stand still to hide as a cactus)
  Space        - Throw shurikens
  R            - Throw a grenade
  E            - Launch a homing missile
  P/Esc        - Pause
  Enter        - Start a run from the menu
  Tab          - Scoreboard (from the menu)
  Ctrl+S       - Screenshot
  Ctrl+C       - Quit

Difficulty options:
  easy   - Slower spawns and ninjas
  normal - The default pace
  hard   - Faster spawns and ninjas
  fixed  - Spawn rate never speeds up

Examples:
  ninja play
  ninja play --difficulty hard
  ninja play --name kai
  ninja play --config ./my-ninja.yaml --assets ./sprites.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagAssets, "assets", "", "Path to custom sprite sheet YAML")
	cmd.Flags().StringVar(&flagName, "name", "", "Pre-fill the player name")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if err := applyGameSettings(cmd); err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.FPS,
		Seed:     settings.Seed,
	}

	// Without a log file, stderr would draw over the game.
	if settings.LogFile == "" {
		logger.SetOutput(io.Discard)
	}

	game, err := registry.Create(ninja.GameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, tui.Options{
		Logger:     logger,
		PlayerName: flagName,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// applyGameSettings hands config, difficulty and asset paths to the game
// package. Flags win over the environment.
func applyGameSettings(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("config") {
		settings.ConfigPath = flagConfig
	}
	if flags.Changed("difficulty") {
		settings.Difficulty = flagDifficulty
	}
	if flags.Changed("assets") {
		settings.AssetsPath = flagAssets
	}
	if _, err := config.ParseDifficultyPreset(settings.Difficulty); err != nil {
		return err
	}

	ninja.SetConfigPath(settings.ConfigPath)
	ninja.SetDifficultyPreset(settings.Difficulty)
	ninja.SetAssetsPath(settings.AssetsPath)
	return nil
}
