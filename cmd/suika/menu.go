package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-suika/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  suika menu
  suika menu --fps 30
  suika menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	deps, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := runtimeConfig()
	player := defaultPlayer()

	// Menu loop
	for {
		result, err := tui.RunMenu(deps, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoicePlay:
			back, err := tui.RunGame(deps, cfg, player)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		case tui.ChoiceScores:
			back, err := tui.RunScoreboard(deps, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}
