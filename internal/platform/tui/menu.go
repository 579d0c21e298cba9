package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/registry"
	"github.com/vovakirdan/term2048/internal/storage"
)

// MenuAction is what the user picked in the start menu.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuPlay
	MenuScoreboard
	MenuQuit
)

// menuItems are the rows of the start menu. The hint row cycles strategies.
var menuItems = []string{"New game", "Hints", "High scores", "Quit"}

const hintRow = 1

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Left:   key.NewBinding(key.WithKeys("left", "h", "a")),
		Right:  key.NewBinding(key.WithKeys("right", "l", "d")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Scores: key.NewBinding(key.WithKeys("tab")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor     int
	strategies []string // "" first, meaning hints off
	hint       int
	best       int
	config     core.RuntimeConfig
	keys       menuKeyMap
	action     MenuAction
}

// NewMenuModel creates a start menu. hint preselects a strategy when it is registered.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, hint string) MenuModel {
	strategies := []string{""}
	for _, s := range registry.List() {
		strategies = append(strategies, s.Name)
	}

	m := MenuModel{
		strategies: strategies,
		config:     cfg,
		keys:       defaultMenuKeyMap(),
	}
	for i, s := range strategies {
		if s == hint {
			m.hint = i
		}
	}

	if store != nil {
		if best, err := store.HighScore(""); err == nil {
			m.best = best
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.action = MenuQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		if m.cursor == hintRow {
			m.hint = (m.hint + len(m.strategies) - 1) % len(m.strategies)
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor == hintRow {
			m.hint = (m.hint + 1) % len(m.strategies)
		}

	case key.Matches(msg, m.keys.Scores):
		m.action = MenuScoreboard
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case 0:
			m.action = MenuPlay
		case hintRow:
			m.hint = (m.hint + 1) % len(m.strategies)
			return m, nil
		case 2:
			m.action = MenuScoreboard
		default:
			m.action = MenuQuit
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.action == MenuQuit {
		return ""
	}

	width := m.config.ScreenW
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  2 0 4 8  ", width)))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(infoStyle.Render(centerText(fmt.Sprintf("Best score: %d", m.best), width)))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		if i == hintRow {
			item = fmt.Sprintf("%s: < %s >", item, m.hintName())
		}
		b.WriteString(centerText(cursor+item, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(helpStyle.Render(centerText(controls, width)))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) hintName() string {
	if s := m.strategies[m.hint]; s != "" {
		return s
	}
	return "off"
}

// Action returns what the user picked.
func (m MenuModel) Action() MenuAction {
	return m.action
}

// HintStrategy returns the selected hint strategy, empty when hints are off.
func (m MenuModel) HintStrategy() string {
	return m.strategies[m.hint]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Action       MenuAction
	HintStrategy string
	Config       core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, hint string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg, hint),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Action: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Action() == MenuNone {
		return MenuResult{Action: MenuQuit, Config: cfg}, nil
	}

	return MenuResult{
		Action:       m.Action(),
		HintStrategy: m.HintStrategy(),
		Config:       m.Config(),
	}, nil
}
