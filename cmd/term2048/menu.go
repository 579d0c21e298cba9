package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu (default when no command is given)",
	Long: `Start term2048 in interactive menu mode.

Pick a new game, choose the hint strategy or browse the high scores.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down      - Navigate menu
  Left/Right   - Change hint strategy
  Enter        - Select
  Tab          - High scores
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.RunE = runMenu
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.Seed = flagSeed

	hint := flagHint
	for played := int64(0); ; {
		res, err := tui.RunMenu(store, rc, hint)
		if err != nil {
			return err
		}
		rc = res.Config
		hint = res.HintStrategy

		switch res.Action {
		case tui.MenuScoreboard:
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuPlay:
			gcfg := gameConfig()
			if rc.Seed != 0 {
				gcfg.Seed = rc.Seed + played
			}
			played++

			snap, err := tui.Run(tui.GameOptions{
				Game:         gcfg,
				HintStrategy: hint,
				HintOptions:  solverOptions(),
				Mode:         storage.ModeTUI,
				Player:       currentPlayer(),
				Store:        store,
				Logger:       logger,
			})
			if err != nil {
				return fmt.Errorf("play: %w", err)
			}
			logger.Debug("game finished", "score", snap.Score, "state", snap.State)

		default:
			return nil
		}
	}
}
