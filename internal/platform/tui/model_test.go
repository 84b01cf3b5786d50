package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stunt-arcade/internal/config"
	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

// stubGame ends after a fixed number of steps with a fixed result.
type stubGame struct {
	steps    int
	endAfter int
	resets   int
	lastIn   core.InputFrame
	preset   config.DifficultyPreset
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in.Clone()
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	over := g.endAfter > 0 && g.steps >= g.endAfter
	return core.GameState{Score: 100 * g.steps, Wave: g.steps, MaxCombo: 2, GameOver: over}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func step(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAfter: 3}

	m := NewGameModel(game, store, testConfig(), "alice")
	m.Init()

	for range 6 {
		m = step(m, TickMsg{})
	}

	runs, err := store.TopRuns("stub", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Player != "alice" || r.Score != 300 || r.Wave != 3 || r.MaxCombo != 2 {
		t.Errorf("saved run = %+v", r)
	}
	if m.SaveErr() != nil {
		t.Errorf("SaveErr() = %v", m.SaveErr())
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	store := openStore(t)
	game := &stubGame{endAfter: 1}

	m := NewGameModel(game, store, testConfig(), "bob")
	m.Init()
	m = step(m, TickMsg{})

	m = step(m, runeKey('r'))
	m = step(m, TickMsg{})

	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}

	// Second game ends and is saved as a separate run
	m = step(m, TickMsg{})
	runs, _ := store.TopRuns("stub", 10)
	if len(runs) != 2 {
		t.Errorf("saved %d runs, want 2", len(runs))
	}
}

func TestGameModelForwardsInput(t *testing.T) {
	game := &stubGame{}
	m := NewGameModel(game, nil, testConfig(), "")
	m.Init()

	m = step(m, runeKey('a'))
	m = step(m, tea.KeyMsg{Type: tea.KeySpace})
	m = step(m, TickMsg{})

	if !game.lastIn.Has(core.ActionLeft) || !game.lastIn.Has(core.ActionFire) {
		t.Error("expected Left and Fire to reach the game")
	}

	m = step(m, TickMsg{})
	if game.lastIn.Has(core.ActionFire) {
		t.Error("input frame not cleared between ticks")
	}
}

func TestGameModelBackOnlyWhenOver(t *testing.T) {
	game := &stubGame{endAfter: 2}
	m := NewGameModel(game, nil, testConfig(), "")
	m.Init()

	m = step(m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back accepted during play")
	}

	m = step(m, TickMsg{})
	m = step(m, TickMsg{})
	m = step(m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back ignored after game over")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&stubGame{}, nil, testConfig(), "")
	m = step(m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("expected quit")
	}
	if m.View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestPaletteKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawTextColored(0, 0, "gold", core.ColorGold)
	scr.DrawText(0, 1, "plain")

	out := NewPalette(nil).Render(scr)
	if !strings.Contains(out, "gold") || !strings.Contains(out, "plain") {
		t.Errorf("Render() = %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rows separated by %d newlines, want 1", got)
	}
}

func TestPaletteWithoutColorSupport(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.DrawTextColored(0, 0, "WAVE 5", core.ColorGold)
	scr.DrawTextColored(7, 0, "x", core.ColorRed)
	scr.DrawText(0, 1, "Score: 40")

	// A renderer on a plain buffer detects no color support
	t.Setenv("CLICOLOR_FORCE", "")
	p := NewPalette(lipgloss.NewRenderer(&bytes.Buffer{}))
	out := p.Render(scr)

	if want := scr.Row(0) + "\n" + scr.Row(1); out != want {
		t.Errorf("Render() = %q, want %q", out, want)
	}
}
