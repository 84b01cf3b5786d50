package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stunt-arcade/internal/config"
	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

// MenuItem is a selectable entry in the main menu.
type MenuItem struct {
	Title      string
	Preset     config.DifficultyPreset // Empty for non-game entries
	Scoreboard bool
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuStatStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	gameID    string
	title     string
	player    string
	stats     menuStats
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// menuStats is the record line shown under the title.
type menuStats struct {
	highScore  int
	bestWave   int
	playerBest *storage.Run
}

// NewMenuModel creates the main menu. store may be nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, gameID, title, player string) MenuModel {
	return MenuModel{
		items: []MenuItem{
			{Title: "Play - Normal", Preset: config.DifficultyNormal},
			{Title: "Play - Easy", Preset: config.DifficultyEasy},
			{Title: "Play - Hard", Preset: config.DifficultyHard},
			{Title: "Leaderboard", Scoreboard: true},
		},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		gameID:    gameID,
		title:     title,
		player:    player,
		stats:     loadMenuStats(store, gameID, player),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// loadMenuStats reads the record line; a failing store just shows nothing.
func loadMenuStats(store *storage.Store, gameID, player string) menuStats {
	var st menuStats
	if store == nil {
		return st
	}
	st.highScore, _ = store.HighScore(gameID)
	st.bestWave, _ = store.BestWave(gameID)
	if player != "" {
		st.playerBest, _ = store.PlayerBest(gameID, player)
	}
	return st
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
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected

	case MenuActionScoreboard:
		m.selected = &MenuItem{Title: "Leaderboard", Scoreboard: true}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")

	if stats := m.statsLine(); stats != "" {
		b.WriteString(centerText(menuStatStyle.Render(stats), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) statsLine() string {
	var parts []string
	if m.stats.highScore > 0 {
		parts = append(parts, fmt.Sprintf("High score %d", m.stats.highScore))
	}
	if m.stats.bestWave > 0 {
		parts = append(parts, fmt.Sprintf("Best wave %d", m.stats.bestWave))
	}
	if pb := m.stats.playerBest; pb != nil {
		parts = append(parts, fmt.Sprintf("Your best %d (wave %d)", pb.Score, pb.Wave))
	}
	return strings.Join(parts, "  |  ")
}

// spaced turns "Stunt" into "S T U N T".
func spaced(s string) string {
	return "  " + strings.Join(strings.Split(strings.ToUpper(s), ""), " ") + "  "
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
