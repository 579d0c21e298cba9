// Package autoplay plays games with a registered strategy and summarizes the results.
package autoplay

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/render"
	"github.com/vovakirdan/term2048/internal/storage"
)

// Recorder persists finished games. *storage.Store satisfies it.
type Recorder interface {
	SaveGame(rec storage.GameRecord) (string, error)
}

// Config controls a batch of games.
type Config struct {
	Strategy string
	Options  registry.Options
	Game     game.Config // Seed of the first game; game i uses Seed+i
	Games    int
	Delay    time.Duration // Pause between moves, for watching
	Verbose  bool          // Print every frame
}

// Result is the outcome of one game.
type Result struct {
	Seed     int64
	Snapshot game.Snapshot
	Duration time.Duration
	ID       string // Storage ID, empty when not recorded
}

// Summary aggregates a batch.
type Summary struct {
	Games     int
	Wins      int
	BestScore int
	AvgScore  float64
	BestTile  int
	TotalMove int
	Tiles     map[int]int // Highest tile reached -> games
}

// Runner plays batches of games.
type Runner struct {
	out      io.Writer
	logger   *log.Logger
	recorder Recorder
}

// NewRunner creates a runner writing frames and the summary to out.
// recorder may be nil.
func NewRunner(out io.Writer, logger *log.Logger, recorder Recorder) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{out: out, logger: logger, recorder: recorder}
}

// Run plays cfg.Games games and returns the per-game results.
// A cancelled context stops the batch after the current move.
func (r *Runner) Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Games <= 0 {
		cfg.Games = 1
	}

	results := make([]Result, 0, cfg.Games)
	for i := range cfg.Games {
		gcfg := cfg.Game
		gcfg.Seed += int64(i)

		opts := cfg.Options
		opts.Seed = gcfg.Seed

		strategy, err := registry.Create(cfg.Strategy, opts)
		if err != nil {
			return results, fmt.Errorf("autoplay: %w", err)
		}

		res, err := r.play(ctx, strategy, gcfg, cfg)
		if err != nil {
			return results, err
		}

		if r.recorder != nil {
			rec := storage.RecordFromSnapshot(storage.ModeAutoplay, strategy.Name(), res.Snapshot, res.Duration)
			id, err := r.recorder.SaveGame(rec)
			if err != nil {
				r.logger.Warn("cannot record game", "err", err)
			} else {
				res.ID = id
			}
		}

		r.logger.Info("game finished",
			"game", i+1,
			"seed", res.Seed,
			"score", res.Snapshot.Score,
			"max_tile", res.Snapshot.MaxTile,
			"moves", res.Snapshot.Moves,
			"duration", res.Duration.Round(time.Millisecond),
		)
		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) play(ctx context.Context, strategy registry.Strategy, gcfg game.Config, cfg Config) (Result, error) {
	start := time.Now()
	g := game.New(gcfg)

	var delay *time.Timer
	if cfg.Delay > 0 {
		delay = time.NewTimer(cfg.Delay)
		defer delay.Stop()
	}

	for !g.Finished() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if cfg.Verbose {
			fmt.Fprint(r.out, render.Frame(g.Snapshot(), render.Options{}))
		}

		dir, ok := strategy.BestMove(g.Grid())
		if !ok {
			break
		}
		if cfg.Verbose {
			fmt.Fprintf(r.out, "Move: %s\n\n", dir)
		}
		if _, err := g.Apply(dir); err != nil {
			return Result{}, fmt.Errorf("autoplay: cannot apply %s: %w", dir, err)
		}

		if delay != nil {
			select {
			case <-ctx.Done():
				return Result{}, ctx.Err()
			case <-delay.C:
				delay.Reset(cfg.Delay)
			}
		}
	}

	if cfg.Verbose {
		fmt.Fprint(r.out, render.Frame(g.Snapshot(), render.Options{}))
	}

	return Result{
		Seed:     gcfg.Seed,
		Snapshot: g.Snapshot(),
		Duration: time.Since(start),
	}, nil
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results), Tiles: make(map[int]int)}
	total := 0
	for _, res := range results {
		snap := res.Snapshot
		total += snap.Score
		s.TotalMove += snap.Moves
		s.Tiles[snap.MaxTile]++
		if snap.Score > s.BestScore {
			s.BestScore = snap.Score
		}
		if snap.MaxTile > s.BestTile {
			s.BestTile = snap.MaxTile
		}
		if snap.Target > 0 && snap.MaxTile >= snap.Target {
			s.Wins++
		}
	}
	if len(results) > 0 {
		s.AvgScore = float64(total) / float64(len(results))
	}
	return s
}

// WriteSummary prints the batch summary with the tile distribution, largest first.
func WriteSummary(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintln(&b, "=== Autoplay Summary ===")
	fmt.Fprintf(&b, "Games:      %d\n", s.Games)
	fmt.Fprintf(&b, "Wins:       %d\n", s.Wins)
	fmt.Fprintf(&b, "Best Score: %d\n", s.BestScore)
	fmt.Fprintf(&b, "Avg Score:  %.1f\n", s.AvgScore)
	fmt.Fprintf(&b, "Best Tile:  %d\n", s.BestTile)
	fmt.Fprintf(&b, "Moves:      %d\n", s.TotalMove)

	tiles := slices.Sorted(maps.Keys(s.Tiles))
	slices.Reverse(tiles)
	for _, tile := range tiles {
		fmt.Fprintf(&b, "  %6d: %d\n", tile, s.Tiles[tile])
	}

	_, err := io.WriteString(w, b.String())
	return err
}
