package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-suika/internal/storage"
)

var flagYes bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top 10",
	Long: `Display the top 10 scores.

Examples:
  suika scores
  suika scores --db ./scores.db
  suika scores clear --yes`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all ranking entries",
	Long: `Remove every entry from the top 10. Game history used by 'suika stats'
is kept.`,
	Args: cobra.NoArgs,
	RunE: runScoresClear,
}

func init() {
	scoresClearCmd.Flags().BoolVar(&flagYes, "yes", false, "Do not ask for confirmation")
	scoresCmd.AddCommand(scoresClearCmd)
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.ListTopScores()
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Suika")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'suika play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "----", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-8s  %-8d  %s\n", i+1, entry.Name, entry.Score, dateStr)
	}

	fmt.Fprintln(out)
	if best, err := store.HighScore(); err == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

func runScoresClear(cmd *cobra.Command, _ []string) error {
	if !flagYes {
		return fmt.Errorf("refusing to clear scores without --yes")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.ClearScores(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Ranking cleared.")
	return nil
}
