package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/term2048/internal/game"
)

func testGame(rows [game.Size][game.Size]int, score int) *game.Game {
	cfg := game.DefaultConfig()
	cfg.Seed = 5
	return game.NewFromGrid(cfg, game.GridFromRows(rows), score)
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		line    string
		want    game.Move
		wantErr bool
	}{
		{"w", game.MoveIn(game.Up), false},
		{"a", game.MoveIn(game.Left), false},
		{"s", game.MoveIn(game.Down), false},
		{"d", game.MoveIn(game.Right), false},
		{"q", game.QuitMove, false},
		{"dance", game.MoveIn(game.Right), false},
		{"W", game.Move{}, true},
		{"x", game.Move{}, true},
		{"", game.Move{}, true},
		{" w", game.Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseMove(tt.line)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ParseMove(%q) error = %v, want ErrInvalidInput", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestInvalidMessage(t *testing.T) {
	if got := InvalidMessage("xyz"); got != "Invalid input: x. Valid inputs are w-a-s-d and q." {
		t.Errorf("InvalidMessage = %q", got)
	}
	if got := InvalidMessage(""); got != "Invalid input: . Valid inputs are w-a-s-d and q." {
		t.Errorf("InvalidMessage(empty) = %q", got)
	}
}

func TestRunQuit(t *testing.T) {
	g := testGame([game.Size][game.Size]int{{2, 2, 0, 0}}, 0)
	var out bytes.Buffer
	r := NewRunner(strings.NewReader("a\nq\n"), &out, Options{})

	snap, err := r.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if snap.State != game.StateQuit {
		t.Errorf("State = %v, want %v", snap.State, game.StateQuit)
	}
	if snap.Score != 4 {
		t.Errorf("Score = %d, want 4", snap.Score)
	}
	if !strings.HasSuffix(out.String(), "Game Quit\nFinal Score: 4\n") {
		t.Errorf("output should end with the quit banner:\n%s", out.String())
	}
	if strings.Contains(out.String(), clearScreen) {
		t.Error("screen should not be cleared when Clear is off")
	}
}

func TestRunInvalidInput(t *testing.T) {
	g := testGame([game.Size][game.Size]int{{2, 2, 0, 0}}, 0)
	var out bytes.Buffer
	r := NewRunner(strings.NewReader("x\n\nW\nq\n"), &out, Options{})

	if _, err := r.Run(context.Background(), g); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	for _, want := range []string{
		"Invalid input: x. Valid inputs are w-a-s-d and q.\n",
		"Invalid input: . Valid inputs are w-a-s-d and q.\n",
		"Invalid input: W. Valid inputs are w-a-s-d and q.\n",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
	if g.MoveCount() != 0 {
		t.Errorf("MoveCount = %d, invalid input must not move", g.MoveCount())
	}
}

func TestRunNoChangeMove(t *testing.T) {
	g := testGame([game.Size][game.Size]int{{2, 4, 0, 0}}, 0)
	before := g.Grid()
	r := NewRunner(strings.NewReader("a\nq\n"), &bytes.Buffer{}, Options{})

	if _, err := r.Run(context.Background(), g); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if g.Grid() != before {
		t.Errorf("grid changed on a no-op move:\n%v", g.Grid())
	}
}

func TestRunGameOver(t *testing.T) {
	g := testGame([game.Size][game.Size]int{
		{8, 16, 8, 16},
		{16, 8, 16, 8},
		{8, 16, 8, 16},
		{32, 64, 32, 0},
	}, 10)
	var out bytes.Buffer
	r := NewRunner(strings.NewReader("d\n"), &out, Options{Verbose: true, Clear: true})

	snap, err := r.Run(context.Background(), g)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if snap.State != game.StateGameOver {
		t.Fatalf("State = %v, want %v", snap.State, game.StateGameOver)
	}
	if !strings.HasSuffix(out.String(), "Game Over!\nFinal Score: 10\n") {
		t.Errorf("output should end with the game over banner:\n%s", out.String())
	}
	if n := strings.Count(out.String(), clearScreen); n != 2 {
		t.Errorf("clear count = %d, want 2", n)
	}
	if !strings.Contains(out.String(), "Controls:") {
		t.Error("verbose output should list controls")
	}
}

func TestRunInputClosed(t *testing.T) {
	g := testGame([game.Size][game.Size]int{{2, 2, 0, 0}}, 0)
	r := NewRunner(strings.NewReader("a"), &bytes.Buffer{}, Options{})

	snap, err := r.Run(context.Background(), g)
	if !errors.Is(err, ErrInputClosed) {
		t.Fatalf("Run error = %v, want ErrInputClosed", err)
	}
	if snap.Score != 4 {
		t.Errorf("unterminated last line should still be played, score = %d", snap.Score)
	}
}

func TestRunCancelledDuringDelay(t *testing.T) {
	g := testGame([game.Size][game.Size]int{{2, 2, 0, 0}}, 0)
	r := NewRunner(strings.NewReader("x\nq\n"), &bytes.Buffer{}, Options{InvalidDelay: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, g)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run error = %v, want context.DeadlineExceeded", err)
	}
}

func TestRunCancelledWhileWaitingForInput(t *testing.T) {
	g := testGame([game.Size][game.Size]int{{2, 2, 0, 0}}, 0)
	pr, pw := io.Pipe()
	defer pw.Close()
	r := NewRunner(pr, &bytes.Buffer{}, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx, g)
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation while waiting for input")
	}

	// A move typed after the cancellation must not be applied.
	go pw.Write([]byte("a\n"))
	time.Sleep(20 * time.Millisecond)
	if got := g.MoveCount(); got != 0 {
		t.Errorf("MoveCount() = %d after cancellation, want 0", got)
	}
}
