package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-suika/internal/platform/tui"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Mouse          - Aim (click drops)
  Left/Right/A/D - Move the fruit
  Space/Down     - Drop
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

At game over you are asked for a name (up to 8 characters) for the top 10.

Examples:
  suika play
  suika play --name kim
  suika play --seed 42
  suika play --config ./my-suika.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Name to prefill at game over (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	deps, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	player := flagName
	if player == "" {
		player = defaultPlayer()
	}

	return tui.Run(deps, runtimeConfig(), player)
}
