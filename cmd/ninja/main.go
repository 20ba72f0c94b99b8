// ninja is Ninja Killers, a terminal arcade shooter.
//
// Usage:
//
//	ninja                    - Play (same as "ninja play")
//	ninja play               - Play locally
//	ninja scores             - Print the leaderboard
//	ninja serve              - Start SSH server for remote play
//	ninja config             - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.ninja/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--log-file <path>    - Write logs to a file
//
// Every flag can also be set with a NINJA_* environment variable.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-killers/internal/config"
	"github.com/vovakirdan/ninja-killers/internal/games/ninja"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	// settings is the environment merged with explicitly set flags.
	settings config.Settings
	logger   *log.Logger
	logFile  io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ninja",
	Short: "Ninja Killers - a terminal arcade shooter",
	Long: `Ninja Killers: run around the arena throwing shurikens, grenades and
homing missiles at ninjas that spawn faster and faster. Stand still to turn
into a cactus. Your best runs go on the top-10 leaderboard.

Available commands:
  play     - Play locally (default)
  scores   - Print the leaderboard
  serve    - Start SSH server for remote play
  config   - Print the default game config

Examples:
  ninja
  ninja play --difficulty hard
  ninja scores --limit 20
  ninja serve --ssh :2222`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ninja/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setup merges environment settings with explicitly set flags and builds
// the logger.
func setup(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.FPS = flagFPS
	}
	if flags.Changed("seed") {
		s.Seed = flagSeed
	}
	if flags.Changed("db") {
		s.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
	if flags.Changed("log-file") {
		s.LogFile = flagLogFile
	}
	if s.FPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", s.FPS)
	}
	settings = s

	logger, logFile, err = newLogger(s, os.Stderr)
	if err != nil {
		return err
	}
	ninja.SetLogger(logger)
	return nil
}
