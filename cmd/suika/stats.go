package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-suika/internal/config"
	"github.com/vovakirdan/tui-suika/internal/fruit"
	"github.com/vovakirdan/tui-suika/internal/storage"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show game history statistics",
	Long: `Summarize every finished game: count, scores, merges, biggest fruit
and total play time, followed by the most recent games.

Examples:
  suika stats
  suika stats --recent 5`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent games to list")
}

func runStats(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := config.LoadSuikaLogged(flagConfig, logger)
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if stats.GamesCount == 0 {
		fmt.Fprintln(out, "No games played yet.")
		return nil
	}

	fmt.Fprintln(out, "Statistics - Suika")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Games played:  %d\n", stats.GamesCount)
	fmt.Fprintf(out, "  High score:    %d\n", stats.HighScore)
	fmt.Fprintf(out, "  Average score: %.1f\n", stats.AvgScore)
	fmt.Fprintf(out, "  Total merges:  %d\n", stats.TotalMerges)
	fmt.Fprintf(out, "  Biggest fruit: %s\n", tierName(catalog, stats.BestTier))
	fmt.Fprintf(out, "  Play time:     %s\n", stats.PlayTime.Round(time.Second))
	fmt.Fprintf(out, "  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))

	if flagRecent <= 0 {
		return nil
	}
	games, err := store.RecentGames(flagRecent)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-8s  %-6s  %-10s  %-8s  %s\n", "Name", "Score", "Merges", "Fruit", "Time", "Date")
	fmt.Fprintf(out, "  %-8s  %-8s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "------", "-----", "----", "----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-8s  %-8d  %-6d  %-10s  %-8s  %s\n",
			g.Name, g.Score, g.Merges, tierName(catalog, g.MaxTier),
			g.Duration.Round(time.Second), g.PlayedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// tierName names a tier, falling back to its index when the config changed.
func tierName(catalog *fruit.Catalog, tier int) string {
	t, err := catalog.TierAt(tier)
	if err != nil {
		return fmt.Sprintf("tier %d", tier)
	}
	return t.Name
}
