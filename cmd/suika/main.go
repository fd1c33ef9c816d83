// suika is a falling-fruit merge game for the terminal.
//
// Usage:
//
//	suika play               - Play a game
//	suika menu               - Start menu with play and high scores
//	suika serve              - Start SSH server for remote play
//	suika scores             - Show the top 10
//	suika scores clear       - Wipe the top 10
//	suika stats              - Show game history statistics
//	suika config             - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.suika/scores.db)
//	--config <path>       - Load game config from a YAML file
//	--log-level <level>   - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "suika",
	Short: "Suika - drop and merge fruit in your terminal",
	Long: `Suika is a terminal falling-fruit puzzle. Drop fruit into the pit;
two touching fruit of the same kind merge into the next bigger one.
The game ends when the pile stays above the line at the top.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  scores   - View the top 10
  stats    - View game history statistics
  config   - Print the effective game config

Examples:
  suika play
  suika menu --fps 30
  suika serve --ssh :2222
  suika scores
  suika config > ~/.suika/configs/suika.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.suika/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
