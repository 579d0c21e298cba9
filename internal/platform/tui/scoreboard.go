package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the mode sidebar
	sidebarWidth       = 20  // Width of mode sidebar
	maxScores          = 100 // Max games to load per mode
)

// ModeInfo names a storage mode for display.
type ModeInfo struct {
	Mode  string
	Title string
}

// knownModes are always listed, in this order, even before any game is recorded.
var knownModes = []ModeInfo{
	{Mode: storage.ModeTUI, Title: "Terminal"},
	{Mode: storage.ModeConsole, Title: "Console"},
	{Mode: storage.ModeSSH, Title: "SSH"},
	{Mode: storage.ModeAutoplay, Title: "Autoplay"},
}

// scoreboardModes returns the known modes followed by any other mode found in store.
func scoreboardModes(store *storage.Store) []ModeInfo {
	modes := append([]ModeInfo(nil), knownModes...)
	if store == nil {
		return modes
	}

	stored, err := store.Modes()
	if err != nil {
		return modes
	}
	for _, mode := range stored {
		known := false
		for _, m := range knownModes {
			if m.Mode == mode {
				known = true
				break
			}
		}
		if !known {
			modes = append(modes, ModeInfo{Mode: mode, Title: mode})
		}
	}
	return modes
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev mode"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next mode"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	modes       []ModeInfo
	modeCursor  int            // Currently selected mode index
	store       *storage.Store // Score storage
	scores      []storage.GameRecord
	stats       *storage.GameStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show mode sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		modes:       scoreboardModes(store),
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	// Initialize table
	m.table = m.createTable()

	m.loadScores(m.modes[0].Mode)

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Give spare width to the player column
	fixed := 0
	for _, c := range columns {
		fixed += c.Width + 2
	}
	if spare := tableWidth - fixed; spare > 0 {
		columns[4].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, help and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads the top games and stats for the given mode.
func (m *ScoreboardModel) loadScores(mode string) {
	m.scores = nil
	m.stats = nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if scores, err := m.store.TopScores(mode, maxScores); err == nil {
		m.scores = scores
	}
	if stats, err := m.store.GetGameStats(mode); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.MaxTile),
			fmt.Sprintf("%d", s.Moves),
			player,
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode), key.Matches(msg, m.keys.Right):
			m.modeCursor = (m.modeCursor + 1) % len(m.modes)
			m.loadScores(m.modes[m.modeCursor].Mode)
			return m, nil

		case key.Matches(msg, m.keys.PrevMode), key.Matches(msg, m.keys.Left):
			m.modeCursor--
			if m.modeCursor < 0 {
				m.modeCursor = len(m.modes) - 1
			}
			m.loadScores(m.modes[m.modeCursor].Mode)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var (
	activeModeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeTabStyle  = activeModeStyle.Background(lipgloss.Color("57")).Padding(0, 1)
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("HIGH SCORES - %s", m.modes[m.modeCursor].Title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	panel := panelStyle.Render(m.tableContent())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", panel))
	} else {
		b.WriteString(centerText(m.modeTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel))
	}

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(centerText(line, m.width)))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected mode, or returns empty when nothing was played.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d   Avg: %.0f   Best tile: %d   Wins: %d",
		m.stats.GamesCount, m.stats.AvgScore, m.stats.BestTile, m.stats.Wins)
}

// sidebar lists every mode with the selected one highlighted, and when
// the mode was last played.
func (m ScoreboardModel) sidebar() string {
	var sb strings.Builder
	sb.WriteString("Modes\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, mode := range m.modes {
		name := truncate(mode.Title, sidebarWidth-6)
		if i == m.modeCursor {
			sb.WriteString(activeModeStyle.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
		sb.WriteString("\n")
	}

	if m.stats != nil && !m.stats.LastPlayed.IsZero() {
		sb.WriteString("\nLast played\n")
		sb.WriteString(m.stats.LastPlayed.Local().Format("Jan 02 15:04"))
	}

	return panelStyle.Width(sidebarWidth).Render(sb.String())
}

// modeTabs renders the modes on one line, or just the selected one between
// arrows when they do not fit.
func (m ScoreboardModel) modeTabs() string {
	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		name := truncate(mode.Title, 10)
		if i == m.modeCursor {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = helpStyle.Render(" " + name + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.modes[m.modeCursor].Title)
	}
	return line
}

// tableContent renders the table or an empty message.
func (m ScoreboardModel) tableContent() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No games recorded yet.\nFinish a game to set a high score!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack returns true if user wants to go back to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// SelectedMode returns the mode currently shown.
func (m ScoreboardModel) SelectedMode() string {
	return m.modes[m.modeCursor].Mode
}

// RunScoreboard runs the scoreboard screen until the user leaves it.
// goBack is true when the user pressed back rather than quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
