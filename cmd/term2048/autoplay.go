package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/autoplay"
	"github.com/vovakirdan/term2048/internal/registry"
)

var (
	flagStrategy string
	flagGames    int
	flagDepth    int
	flagDelay    time.Duration
	flagVerbose  bool
	flagRecord   bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let a strategy play",
	Long: `Play one or more games with a registered strategy and print a summary.
Game i of a batch uses seed+i, so runs with a fixed --seed are repeatable.

Examples:
  term2048 autoplay
  term2048 autoplay --strategy greedy --games 100 --seed 1
  term2048 autoplay --verbose --delay 100ms
  term2048 autoplay --depth 3 --record`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().StringVar(&flagStrategy, "strategy", "expectimax", "Strategy to play with (see 'term2048 strategies')")
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games")
	autoplayCmd.Flags().IntVar(&flagDepth, "depth", 0, "Search depth (0 = from config)")
	autoplayCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Pause between moves")
	autoplayCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Print every frame")
	autoplayCmd.Flags().BoolVar(&flagRecord, "record", false, "Save games to the scores database")
}

func runAutoplay(_ *cobra.Command, _ []string) error {
	if !registry.Exists(flagStrategy) {
		return fmt.Errorf("unknown strategy %q, run 'term2048 strategies' to list them", flagStrategy)
	}
	if flagGames < 1 {
		return fmt.Errorf("--games must be at least 1, got %d", flagGames)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := solverOptions()
	if flagDepth > 0 {
		opts.Depth = flagDepth
	}

	var recorder autoplay.Recorder
	if flagRecord {
		if store := openStore(); store != nil {
			defer store.Close()
			recorder = store
		}
	}

	runner := autoplay.NewRunner(os.Stdout, logger, recorder)
	results, err := runner.Run(ctx, autoplay.Config{
		Strategy: flagStrategy,
		Options:  opts,
		Game:     gameConfig(),
		Games:    flagGames,
		Delay:    flagDelay,
		Verbose:  flagVerbose,
	})
	if len(results) > 0 {
		if werr := autoplay.WriteSummary(os.Stdout, autoplay.Summarize(results)); werr != nil {
			return werr
		}
	}
	return err
}
