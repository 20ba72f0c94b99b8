package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ninja-killers/internal/games/ninja"
	"github.com/vovakirdan/ninja-killers/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets anyone with an SSH client play.

Each connection gets its own run. The SSH user name pre-fills the
player name, and finished runs go into the shared scores database.

Examples:
  ninja serve
  ninja serve --ssh :2222
  ninja serve --host-key /etc/ninja/host_key

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key (default: ~/.ninja/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Close idle sessions after this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		settings.SSHAddr = flagSSHAddr
	}
	if flags.Changed("host-key") {
		settings.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		settings.IdleTimeout = flagIdleTimeout
	}
	if err := applyGameSettings(cmd); err != nil {
		return err
	}

	srv, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     settings.SSHAddr,
		HostKeyPath: settings.HostKeyPath,
		DBPath:      settings.DBPath,
		IdleTimeout: settings.IdleTimeout,
		GameID:      ninja.GameID,
		TickRate:    settings.FPS,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(cmd.Context())
}
