// term2048 plays 2048 in the terminal.
//
// Usage:
//
//	term2048                 - Start menu
//	term2048 play            - Play full-screen
//	term2048 console         - Play line by line with w/a/s/d and q
//	term2048 autoplay        - Let a strategy play
//	term2048 scores          - Show high scores
//	term2048 scoreboard      - Browse high scores full-screen
//	term2048 serve           - Start SSH server for remote play
//	term2048 strategies      - List autoplay strategies
//	term2048 config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.term2048 and ./configs)
//	--db <path>         - Scores database (default: ~/.term2048/scores.db)
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"

	// Register strategies
	_ "github.com/vovakirdan/term2048/internal/solver"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string

	// Set by loadConfig before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is the sliding tile game 2048 for the terminal.

Slide the board with w/a/s/d (or the arrow keys in full-screen mode).
Equal tiles merge into their sum; reach 2048 to win, then keep going.

Examples:
  term2048 play
  term2048 console --seed 42
  term2048 autoplay --strategy expectimax --games 10
  term2048 scores --mode console
  term2048 serve`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file, applies flag overrides and builds the logger.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		loaded.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "term2048",
		Level:           level,
	})
	logger.Debug("config loaded", "command", cmd.Name(), "db", cfg.Storage.DBPath)
	return nil
}

// gameConfig returns the rules from the config with the seed from --seed.
func gameConfig() game.Config {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return game.Config{
		Seed:   seed,
		Spawn4: cfg.Game.Spawn4Probability,
		Target: cfg.Game.Target,
	}
}

// solverOptions returns strategy options from the config.
func solverOptions() registry.Options {
	return registry.Options{
		Depth:     cfg.Solver.Depth,
		CacheSize: cfg.Solver.CacheSize,
		Seed:      flagSeed,
	}
}

// openStore opens the scores database. Playing does not need it, so a
// failure is only logged and a nil store is returned.
func openStore() *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("scores will not be saved", "err", err)
		return nil
	}
	return store
}
