package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/console"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var flagHint string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play full-screen",
	Long: `Start a full-screen game.

Controls:
  Arrows/WASD/HJKL - Slide
  ?                - Hint
  R                - Restart (after game over)
  H                - Toggle help
  Q/Ctrl+C         - Quit

Examples:
  term2048 play
  term2048 play --seed 7
  term2048 play --hint greedy`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play line by line",
	Long: `Play on standard input and output. Type w, a, s or d and press Enter
to slide up, left, down or right; q quits. Only the first character of a
line counts.

Examples:
  term2048 console
  printf 'a\nd\nq\n' | term2048 console --seed 1`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	playCmd.Flags().StringVar(&flagHint, "hint", "expectimax", "Strategy for the hint key (empty disables hints)")
}

func currentPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func runPlay(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	snap, err := tui.Run(tui.GameOptions{
		Game:         gameConfig(),
		HintStrategy: flagHint,
		HintOptions:  solverOptions(),
		Mode:         storage.ModeTUI,
		Player:       currentPlayer(),
		Store:        store,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}

	fmt.Printf("Final score: %d (max tile %d, %d moves)\n", snap.Score, snap.MaxTile, snap.Moves)
	return nil
}

func runConsole(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	runner := console.NewRunner(os.Stdin, os.Stdout, console.Options{
		InvalidDelay: cfg.Console.InvalidDelay,
		Verbose:      cfg.Console.Verbose,
		Clear:        cfg.Console.ClearScreen && term.IsTerminal(int(os.Stdout.Fd())),
	})
	runner.SetLogger(logger)

	g := game.New(gameConfig())
	start := time.Now()
	snap, err := runner.Run(ctx, g)
	saveConsoleGame(store, snap, time.Since(start))

	switch {
	case errors.Is(err, console.ErrInputClosed):
		return fmt.Errorf("console: input closed before the game finished (score %d)", snap.Score)
	case err != nil:
		return err
	}
	return nil
}

func saveConsoleGame(store *storage.Store, snap game.Snapshot, d time.Duration) {
	if store == nil || snap.Score == 0 {
		return
	}
	id, err := store.SaveGame(storage.RecordFromSnapshot(storage.ModeConsole, currentPlayer(), snap, d))
	if err != nil {
		logger.Warn("cannot save game", "err", err)
		return
	}
	logger.Debug("game stored", "id", id, "score", snap.Score, "max_tile", snap.MaxTile)
}
