package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagMode  string
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, optionally for one mode
(tui, console, ssh or autoplay), followed by per-mode statistics.

Examples:
  term2048 scores
  term2048 scores --mode console --limit 20
  term2048 scores --mode autoplay --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse high scores full-screen",
	Args:  cobra.NoArgs,
	RunE:  runScoreboard,
}

func init() {
	scoresCmd.Flags().StringVar(&flagMode, "mode", "", "Only show this mode")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores of --mode (or all scores)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		n, err := store.ClearScores(flagMode)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d games.\n", n)
		return nil
	}

	scores, err := store.TopScores(flagMode, flagLimit)
	if err != nil {
		return err
	}

	title := "all modes"
	if flagMode != "" {
		title = flagMode
	}
	fmt.Printf("High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'term2048 play' to set the first high score!")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tScore\tTile\tMoves\tMode\tPlayer\tDate")
	fmt.Fprintln(tw, "  ----\t-----\t----\t-----\t----\t------\t----")
	for i, s := range scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(tw, "  %d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			i+1, s.Score, s.MaxTile, s.Moves, s.Mode, player, s.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return printStats(store)
}

func printStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	modes, err := store.Modes()
	if err != nil {
		return err
	}

	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Mode\tGames\tBest\tAverage\tBest tile\tWins")
	for _, mode := range modes {
		s := stats[mode]
		if s == nil || (flagMode != "" && mode != flagMode) {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%d\t%d\t%.0f\t%d\t%d\n", mode, s.GamesCount, s.HighScore, s.AvgScore, s.BestTile, s.Wins)
	}
	return tw.Flush()
}

func runScoreboard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = tui.RunScoreboard(store, 0, 0)
	return err
}
