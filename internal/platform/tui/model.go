// Package tui provides the Bubble Tea front ends for term2048: the game
// screen, the scoreboard and the SSH server that serves both.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/render"
	"github.com/vovakirdan/term2048/internal/storage"
)

// GameOptions configure a game screen.
type GameOptions struct {
	Game         game.Config      // Seed 0 picks a time-based seed
	HintStrategy string           // Registered strategy used by the hint key; empty disables hints
	HintOptions  registry.Options // Options for HintStrategy
	Mode         string           // Storage mode, e.g. storage.ModeTUI
	Player       string
	Store        *storage.Store // May be nil
	Logger       *log.Logger    // May be nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	hintStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("86"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// GameModel is the Bubble Tea model for one player's 2048 session.
// Restarting replaces the game and keeps the rest of the session.
type GameModel struct {
	opts   GameOptions
	game   *game.Game
	hinter registry.Strategy
	keys   GameKeyMap
	help   help.Model
	width  int
	height int

	seed       int64
	started    time.Time
	best       int
	hint       string
	saved      bool // Whether the current game has been recorded
	lastID     string
	quitting   bool
	scoreboard bool // Set when the user asks for the scoreboard
}

// NewGameModel creates a game screen.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Game.Seed == 0 {
		opts.Game.Seed = time.Now().UnixNano()
	}
	if opts.Mode == "" {
		opts.Mode = storage.ModeTUI
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := GameModel{
		opts: opts,
		keys: DefaultGameKeyMap(),
		help: help.New(),
		seed: opts.Game.Seed,
	}

	if opts.HintStrategy != "" {
		hinter, err := registry.Create(opts.HintStrategy, opts.HintOptions)
		if err != nil {
			opts.Logger.Warn("hints disabled", "strategy", opts.HintStrategy, "err", err)
			m.keys.Hint.SetEnabled(false)
		} else {
			m.hinter = hinter
		}
	} else {
		m.keys.Hint.SetEnabled(false)
	}

	if opts.Store != nil {
		best, err := opts.Store.HighScore(opts.Mode)
		if err != nil {
			opts.Logger.Warn("cannot load high score", "err", err)
		}
		m.best = best
	}

	m.newGame()
	return m
}

func (m *GameModel) newGame() {
	cfg := m.opts.Game
	cfg.Seed = m.seed
	m.game = game.New(cfg)
	m.started = time.Now()
	m.saved = false
	m.hint = ""
	m.keys.Restart.SetEnabled(false)
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Quit()
		m.record()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.seed++
		m.newGame()
		return m, nil

	case key.Matches(msg, m.keys.Scoreboard):
		m.scoreboard = true
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Hint):
		m.hint = m.suggest()
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok || m.game.Finished() {
		return m, nil
	}

	res, err := m.game.Apply(dir)
	if err != nil {
		m.opts.Logger.Debug("move rejected", "dir", dir, "err", err)
		return m, nil
	}
	if res.Changed {
		m.hint = ""
	}
	if m.game.Score() > m.best {
		m.best = m.game.Score()
	}
	if m.game.Over() {
		m.record()
		m.keys.Restart.SetEnabled(true)
	}

	return m, nil
}

func (m GameModel) suggest() string {
	if m.hinter == nil || m.game.Finished() {
		return ""
	}
	dir, ok := m.hinter.BestMove(m.game.Grid())
	if !ok {
		return "No moves left"
	}
	return fmt.Sprintf("Hint: %s", dir)
}

// record saves a finished game once. Empty games are not recorded.
func (m *GameModel) record() {
	if m.saved || m.game.Score() == 0 {
		return
	}
	m.saved = true
	if m.opts.Store == nil {
		return
	}

	snap := m.game.Snapshot()
	rec := storage.RecordFromSnapshot(m.opts.Mode, m.opts.Player, snap, time.Since(m.started))
	id, err := m.opts.Store.SaveGame(rec)
	if err != nil {
		m.opts.Logger.Warn("cannot save game", "err", err)
		return
	}
	m.lastID = id
	m.opts.Logger.Info("game stored", "id", id, "player", m.opts.Player, "score", snap.Score, "max_tile", snap.MaxTile)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	grid := snap.Grid

	w, h := render.BoardSize(grid)
	screen := core.NewScreen(w, h)
	render.DrawBoard(screen, 0, 0, grid)

	var b strings.Builder
	b.WriteString(titleStyle.Render("2048"))
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d   Best: %d   Moves: %d", snap.Score, m.best, snap.Moves)))
	b.WriteString("\n\n")
	b.WriteString(RenderScreen(screen))
	b.WriteString("\n\n")

	switch {
	case snap.State == game.StateGameOver:
		b.WriteString(statusStyle.Render(fmt.Sprintf("Game Over! Final Score: %d", snap.Score)))
	case snap.State == game.StateWon:
		b.WriteString(statusStyle.Render(render.Banner(snap)[0]))
	case m.hint != "":
		b.WriteString(hintStyle.Render(m.hint))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Snapshot returns the state of the current game.
func (m GameModel) Snapshot() game.Snapshot {
	return m.game.Snapshot()
}

// LastSavedID returns the storage ID of the last recorded game.
func (m GameModel) LastSavedID() string {
	return m.lastID
}

// IsQuitting returns true if user requested to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user asked for the scoreboard.
func (m GameModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Run starts a full-screen game and returns the final snapshot.
func Run(opts GameOptions) (game.Snapshot, error) {
	p := tea.NewProgram(NewGameModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return game.Snapshot{}, err
	}

	m, ok := final.(GameModel)
	if !ok {
		return game.Snapshot{}, nil
	}
	return m.Snapshot(), nil
}
