// Package console implements the line-oriented 2048 loop: print a frame,
// read one line, apply the move, repeat until the game ends or the player quits.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/render"
)

var (
	// ErrInputClosed is returned when input ends before the game does.
	ErrInputClosed = errors.New("console: input closed")

	// ErrInvalidInput is returned by ParseMove for lines that start with
	// anything other than w, a, s, d or q.
	ErrInvalidInput = errors.New("console: invalid input")
)

// DefaultInvalidDelay is the pause after an invalid input message.
const DefaultInvalidDelay = time.Second

// clearScreen homes the cursor and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// Options configure a Runner.
type Options struct {
	InvalidDelay time.Duration // Pause after an invalid input message
	Verbose      bool          // Show the control reference in every frame
	Clear        bool          // Clear the terminal before each frame
}

// Runner drives a game from line input.
type Runner struct {
	in     *bufio.Reader
	out    io.Writer
	opts   Options
	logger *log.Logger

	readOnce sync.Once
	lines    chan lineResult
	readErr  error // Sticky once the input has failed or ended
}

type lineResult struct {
	line string
	err  error
}

// NewRunner creates a runner reading moves from in and writing frames to out.
func NewRunner(in io.Reader, out io.Writer, opts Options) *Runner {
	if opts.InvalidDelay < 0 {
		opts.InvalidDelay = 0
	}
	return &Runner{
		in:     bufio.NewReader(in),
		out:    out,
		opts:   opts,
		logger: log.New(io.Discard),
	}
}

// SetLogger sets the logger used for debug output.
func (r *Runner) SetLogger(logger *log.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// ParseMove maps the first character of a line to a move.
// Lowercase w, a, s, d and q are accepted; everything else, including an
// empty line, wraps ErrInvalidInput.
func ParseMove(line string) (game.Move, error) {
	first, _ := utf8.DecodeRuneInString(line)
	switch first {
	case 'w':
		return game.MoveIn(game.Up), nil
	case 'a':
		return game.MoveIn(game.Left), nil
	case 's':
		return game.MoveIn(game.Down), nil
	case 'd':
		return game.MoveIn(game.Right), nil
	case 'q':
		return game.QuitMove, nil
	}
	return game.Move{}, fmt.Errorf("%w: %q", ErrInvalidInput, line)
}

// InvalidMessage is the text printed for a rejected line.
func InvalidMessage(line string) string {
	first := ""
	if r, size := utf8.DecodeRuneInString(line); size > 0 {
		first = string(r)
	}
	return fmt.Sprintf("Invalid input: %s. Valid inputs are w-a-s-d and q.", first)
}

// Run plays g until it is lost or quit and returns the final snapshot.
// A closed input returns ErrInputClosed together with the last snapshot.
func (r *Runner) Run(ctx context.Context, g *game.Game) (game.Snapshot, error) {
	for {
		if err := r.draw(g.Snapshot()); err != nil {
			return g.Snapshot(), err
		}
		if g.Finished() {
			return g.Snapshot(), nil
		}

		mv, err := r.nextMove(ctx)
		if err != nil {
			return g.Snapshot(), err
		}

		if mv.Quit {
			g.Quit()
			r.logger.Debug("player quit", "score", g.Score(), "moves", g.MoveCount())
			continue
		}

		res, err := g.Apply(mv.Dir)
		if err != nil {
			return g.Snapshot(), fmt.Errorf("console: cannot apply %s: %w", mv, err)
		}
		r.logger.Debug("move", "dir", mv.Dir, "changed", res.Changed, "gained", res.Gained)
	}
}

// nextMove reads lines until one parses, reporting and pausing after each
// invalid line. It returns as soon as ctx is cancelled, even while waiting
// for input.
func (r *Runner) nextMove(ctx context.Context) (game.Move, error) {
	for {
		line, err := r.waitLine(ctx)
		if err != nil {
			return game.Move{}, err
		}

		mv, err := ParseMove(line)
		if err == nil {
			return mv, nil
		}

		if _, err := fmt.Fprintln(r.out, InvalidMessage(line)); err != nil {
			return game.Move{}, fmt.Errorf("console: cannot write: %w", err)
		}
		if err := sleep(ctx, r.opts.InvalidDelay); err != nil {
			return game.Move{}, err
		}
	}
}

// waitLine returns the next input line or the context error, whichever
// comes first. A line that arrives together with the cancellation is dropped.
func (r *Runner) waitLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.readErr != nil {
		return "", r.readErr
	}

	r.readOnce.Do(func() {
		r.lines = make(chan lineResult, 1)
		go r.readLoop()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-r.lines:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if res.err != nil {
			r.readErr = res.err
		}
		return res.line, res.err
	}
}

// readLoop feeds input lines to r.lines until the input fails or ends.
// A read blocked in the underlying reader outlives a cancelled Run.
func (r *Runner) readLoop() {
	for {
		line, err := r.readLine()
		r.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is still returned; the EOF surfaces on the next call.
func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("console: cannot read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Runner) draw(snap game.Snapshot) error {
	var b strings.Builder
	if r.opts.Clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(render.Frame(snap, render.Options{Verbose: r.opts.Verbose}))

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("console: cannot write frame: %w", err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
