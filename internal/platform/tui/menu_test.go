package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/storage"
)

func menuPress(m MenuModel, keys ...string) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want MenuAction
	}{
		{"play", []string{"enter"}, MenuPlay},
		{"scores row", []string{"down", "down", "enter"}, MenuScoreboard},
		{"tab", []string{"tab"}, MenuScoreboard},
		{"quit row", []string{"down", "down", "down", "down", "enter"}, MenuQuit},
		{"q", []string{"q"}, MenuQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMenuModel(nil, core.DefaultConfig(), "")
			m, cmd := menuPress(m, tc.keys...)
			if m.Action() != tc.want {
				t.Errorf("Action() = %v, want %v", m.Action(), tc.want)
			}
			if cmd == nil {
				t.Error("selection should end the menu program")
			}
		})
	}
}

func TestMenuHintStrategy(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "greedy")
	if m.HintStrategy() != "greedy" {
		t.Fatalf("HintStrategy() = %q, want greedy", m.HintStrategy())
	}

	// Left/Right only change the hint on its own row.
	m, _ = menuPress(m, "right")
	if m.HintStrategy() != "greedy" {
		t.Errorf("right on the play row changed the hint to %q", m.HintStrategy())
	}

	m, _ = menuPress(m, "down", "left", "left")
	if m.HintStrategy() != "" {
		t.Errorf("HintStrategy() = %q, want hints off", m.HintStrategy())
	}
	if !strings.Contains(m.View(), "Hints: < off >") {
		t.Error("View() should show hints off")
	}

	m, _ = menuPress(m, "enter")
	if m.Action() != MenuNone || m.HintStrategy() == "" {
		t.Errorf("enter on the hint row should cycle, got action %v hint %q", m.Action(), m.HintStrategy())
	}
}

func TestMenuBestScoreAndResize(t *testing.T) {
	opts := testOptions(t, true)
	if _, err := opts.Store.SaveGame(storage.GameRecord{Mode: storage.ModeConsole, Score: 1234}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	m := NewMenuModel(opts.Store, core.DefaultConfig(), "expectimax")
	if !strings.Contains(m.View(), "Best score: 1234") {
		t.Error("View() should show the best score across modes")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = next.(MenuModel)
	if c := m.Config(); c.ScreenW != 120 || c.ScreenH != 50 {
		t.Errorf("Config() = %+v after resize", c)
	}
}
