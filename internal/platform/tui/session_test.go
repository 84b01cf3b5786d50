package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stunt-arcade/internal/config"
	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

type stubFactory struct {
	created []*stubGame
}

func (f *stubFactory) newGame(preset config.DifficultyPreset) Game {
	g := &stubGame{endAfter: 1, preset: preset}
	f.created = append(f.created, g)
	return g
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func TestSessionPlayAndReturnToMenu(t *testing.T) {
	store := openStore(t)
	f := &stubFactory{}

	m := NewSessionModel(store, testConfig(), "carol", f.newGame)
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}

	// Move to "Play - Hard" and select it
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	last := f.created[len(f.created)-1]
	if last.preset != config.DifficultyHard {
		t.Errorf("preset = %q, want hard", last.preset)
	}

	m = sessionStep(t, m, TickMsg{})
	m = sessionStep(t, m, runeKey('b'))

	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after back", m.screen)
	}

	best, err := store.PlayerBest("stub", "carol")
	if err != nil || best == nil {
		t.Fatalf("PlayerBest() = %v, %v", best, err)
	}
	if !strings.Contains(m.View(), "Your best 100") {
		t.Errorf("menu does not show the new record:\n%s", m.View())
	}
}

func TestSessionLeaderboard(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "stub", Player: "dave", Score: 4200, Wave: 12, MaxCombo: 9}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	f := &stubFactory{}

	m := NewSessionModel(store, testConfig(), "erin", f.newGame)
	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyTab})

	if m.screen != screenLeaderboard {
		t.Fatalf("screen = %v, want leaderboard", m.screen)
	}
	view := m.View()
	for _, want := range []string{"LEADERBOARD - Stub", "4200", "dave", "Furthest wave reached: 12"} {
		if !strings.Contains(view, want) {
			t.Errorf("leaderboard view missing %q", want)
		}
	}

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Errorf("screen = %v, want menu after esc", m.screen)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	f := &stubFactory{}
	m := NewSessionModel(nil, testConfig(), "", f.newGame)

	m = sessionStep(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("expected session to quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "stub", "Stub", 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Errorf("empty leaderboard view:\n%s", m.View())
	}
}
