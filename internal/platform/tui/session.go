package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stunt-arcade/internal/config"
	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

// GameFactory builds a fresh game tuned for a difficulty preset.
type GameFactory func(preset config.DifficultyPreset) Game

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenLeaderboard
)

// SessionModel manages the full session flow: menu -> game or leaderboard -> menu.
// This is the top-level model used for SSH sessions and the local menu.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	username string
	newGame  GameFactory
	gameID   string
	title    string
	renderer *lipgloss.Renderer // nil renders for the local terminal

	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	board    *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model. store may be nil.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, newGame GameFactory) SessionModel {
	probe := newGame(config.DifficultyNormal)

	m := SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		newGame:  newGame,
		gameID:   probe.ID(),
		title:    probe.Title(),
	}
	m.menu = m.newMenu()
	return m
}

// WithRenderer renders games through r, typically the renderer of an SSH session.
func (m SessionModel) WithRenderer(r *lipgloss.Renderer) SessionModel {
	m.renderer = r
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.store, m.config, m.gameID, m.title, m.username)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenLeaderboard:
		return m.updateLeaderboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.config = m.menu.Config()

	if selected.Scoreboard {
		board := NewScoreboardModel(m.store, m.gameID, m.title, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		m.screen = screenLeaderboard
		return m, m.board.Init()
	}

	// Each game gets a fresh seed from the model
	cfg := m.config
	cfg.Seed = 0
	gameModel := NewGameModel(m.newGame(selected.Preset), m.store, cfg, m.username)
	gameModel.palette = NewPalette(m.renderer)
	m.game = &gameModel
	m.screen = screenGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		return m.returnToMenu()
	}

	return m, cmd
}

// updateLeaderboard handles updates when the leaderboard is shown.
func (m SessionModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.board.Update(msg)
	if board, ok := newModel.(ScoreboardModel); ok {
		m.board = &board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.IsGoingBack() {
		return m.returnToMenu()
	}

	return m, cmd
}

// returnToMenu rebuilds the menu so the record line picks up new runs.
func (m SessionModel) returnToMenu() (tea.Model, tea.Cmd) {
	m.game = nil
	m.board = nil
	m.screen = screenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenLeaderboard:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the full menu flow in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, username string, newGame GameFactory) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, username, newGame),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
