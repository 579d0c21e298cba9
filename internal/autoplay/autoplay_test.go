package autoplay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/registry"
	_ "github.com/vovakirdan/term2048/internal/solver"
	"github.com/vovakirdan/term2048/internal/storage"
)

type memRecorder struct {
	records []storage.GameRecord
	fail    bool
}

func (m *memRecorder) SaveGame(rec storage.GameRecord) (string, error) {
	if m.fail {
		return "", errors.New("disk full")
	}
	m.records = append(m.records, rec)
	return fmt.Sprintf("id-%d", len(m.records)), nil
}

func testConfig(strategy string, games int) Config {
	gcfg := game.DefaultConfig()
	gcfg.Seed = 11
	return Config{
		Strategy: strategy,
		Options:  registry.DefaultOptions(),
		Game:     gcfg,
		Games:    games,
	}
}

func TestRunRecordsGames(t *testing.T) {
	rec := &memRecorder{}
	r := NewRunner(io.Discard, nil, rec)

	results, err := r.Run(context.Background(), testConfig("random", 3))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if len(rec.records) != 3 {
		t.Fatalf("recorded %d games, want 3", len(rec.records))
	}

	for i, res := range results {
		if res.Seed != 11+int64(i) {
			t.Errorf("results[%d].Seed = %d, want %d", i, res.Seed, 11+i)
		}
		if res.Snapshot.State != game.StateGameOver {
			t.Errorf("results[%d].State = %v, want game over", i, res.Snapshot.State)
		}
		if res.ID != fmt.Sprintf("id-%d", i+1) {
			t.Errorf("results[%d].ID = %q", i, res.ID)
		}
		r := rec.records[i]
		if r.Mode != storage.ModeAutoplay || r.Player != "random" || r.Score != res.Snapshot.Score {
			t.Errorf("records[%d] = %+v", i, r)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	first, err := NewRunner(io.Discard, nil, nil).Run(context.Background(), testConfig("random", 2))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	second, err := NewRunner(io.Discard, nil, nil).Run(context.Background(), testConfig("random", 2))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	for i := range first {
		if first[i].Snapshot != second[i].Snapshot {
			t.Errorf("game %d differs between runs with equal seeds", i)
		}
	}
}

func TestRunRecorderFailure(t *testing.T) {
	r := NewRunner(io.Discard, nil, &memRecorder{fail: true})
	results, err := r.Run(context.Background(), testConfig("greedy", 1))
	if err != nil {
		t.Fatalf("Run() should not fail on recorder errors: %v", err)
	}
	if results[0].ID != "" {
		t.Errorf("ID = %q, want empty", results[0].ID)
	}
}

func TestRunVerbose(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig("greedy", 1)
	cfg.Verbose = true

	if _, err := NewRunner(&out, nil, nil).Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(out.String(), "Move: ") {
		t.Error("verbose output should list moves")
	}
	if !strings.HasSuffix(out.String(), "Game Over!\n"+lastLine(out.String())+"\n") {
		t.Errorf("verbose output should end with the final frame")
	}
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	return lines[len(lines)-1]
}

func TestRunErrors(t *testing.T) {
	if _, err := NewRunner(io.Discard, nil, nil).Run(context.Background(), testConfig("nope", 1)); err == nil {
		t.Error("Run() with unknown strategy should fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRunner(io.Discard, nil, nil).Run(ctx, testConfig("random", 1)); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() with cancelled context error = %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Snapshot: game.Snapshot{Score: 100, MaxTile: 64, Moves: 50, Target: 2048}},
		{Snapshot: game.Snapshot{Score: 30000, MaxTile: 2048, Moves: 1500, Target: 2048}},
		{Snapshot: game.Snapshot{Score: 200, MaxTile: 64, Moves: 70, Target: 2048}},
	}

	s := Summarize(results)
	if s.Games != 3 || s.Wins != 1 || s.BestScore != 30000 || s.BestTile != 2048 {
		t.Errorf("Summarize() = %+v", s)
	}
	if s.AvgScore != 10100 {
		t.Errorf("AvgScore = %v, want 10100", s.AvgScore)
	}
	if s.TotalMove != 1620 {
		t.Errorf("TotalMove = %d, want 1620", s.TotalMove)
	}
	if s.Tiles[64] != 2 || s.Tiles[2048] != 1 {
		t.Errorf("Tiles = %v", s.Tiles)
	}

	var out bytes.Buffer
	if err := WriteSummary(&out, s); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}
	text := out.String()
	if strings.Index(text, "2048: 1") > strings.Index(text, "64: 2") {
		t.Errorf("tile distribution should list larger tiles first:\n%s", text)
	}

	if empty := Summarize(nil); empty.AvgScore != 0 || empty.Games != 0 {
		t.Errorf("Summarize(nil) = %+v", empty)
	}
}

func TestRunDelay(t *testing.T) {
	cfg := testConfig("greedy", 1)
	plain, err := NewRunner(io.Discard, nil, nil).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	cfg.Delay = time.Microsecond
	delayed, err := NewRunner(io.Discard, nil, nil).Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run() with delay error: %v", err)
	}
	if delayed[0].Snapshot != plain[0].Snapshot {
		t.Error("a delay between moves should not change the game")
	}

	cfg.Delay = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := NewRunner(io.Discard, nil, nil).Run(ctx, cfg); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() cancelled during delay error = %v, want context.DeadlineExceeded", err)
	}
}
