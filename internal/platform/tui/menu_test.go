package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register("recording", func() registry.Game { return &recordingGame{} })
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, expected MenuModel", next)
	}
	return nm
}

func TestMenuSelectModeAndDifficulty(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !strings.Contains(m.View(), "Recording") {
		t.Fatal("menu does not list registered modes")
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != nil {
		t.Fatal("mode select should open the difficulty picker first")
	}
	if !strings.Contains(m.View(), "select difficulty") {
		t.Error("difficulty picker not shown")
	}

	// Back returns to the mode list.
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(m.View(), "select difficulty") {
		t.Error("esc should leave the difficulty picker")
	}

	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for range 3 {
		m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil {
		t.Fatal("Selected() = nil after choosing difficulty")
	}
	if m.Difficulty() != DifficultyOptions[3].Preset {
		t.Errorf("Difficulty() = %q, expected %q", m.Difficulty(), DifficultyOptions[3].Preset)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m = updateMenu(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit the menu")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	m = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("Config() = %dx%d, expected 120x50", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestNewGameAppliesDifficulty(t *testing.T) {
	g, err := NewGame("recording", "hard")
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if rg := g.(*recordingGame); rg.preset != "hard" {
		t.Errorf("preset = %q, expected hard", rg.preset)
	}

	if _, err := NewGame("missing", ""); err == nil {
		t.Error("NewGame() of unknown id should fail")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil)

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// The registry is sorted, so "recording" is first unless a real mode
	// sorts before it; find it explicitly.
	for i, item := range s.menu.items {
		if item.GameID == "recording" {
			s.menu.cursor = i
		}
	}
	step(tea.KeyMsg{Type: tea.KeyEnter})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if !s.InGame() {
		t.Fatal("session did not start the game")
	}
	if !strings.Contains(s.View(), "RECORDING") {
		t.Error("session view is not the game")
	}

	step(runeKey('b'))
	if s.InGame() {
		t.Error("b should return to the menu")
	}
	if !strings.Contains(s.View(), "Select a mode") {
		t.Error("session view is not the menu")
	}

	step(runeKey('q'))
	if s.View() != "" {
		t.Error("session view after quit should be empty")
	}
}
