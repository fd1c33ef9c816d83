package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-suika/internal/config"
	"github.com/vovakirdan/tui-suika/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the menu. The SSH user name
prefills the name prompt. Scores are stored per-server (all users share
the same top 10).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.suika/host_key

Examples:
  suika serve                           # Listen on :23234 with auto-generated key
  suika serve --ssh :2222               # Listen on port 2222
  suika serve --host-key ./my_host_key  # Use specific host key
  suika serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Session events are info level; show them unless a level was asked for
	level := log.InfoLevel
	if cmd.Flags().Changed("log-level") {
		var err error
		if level, err = log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
	}

	game, err := config.LoadSuikaLogged(flagConfig, log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "suika",
		Level:           level,
	}))
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.LogLevel = level
	cfg.Game = game

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting suika SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
