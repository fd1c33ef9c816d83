package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-suika/internal/core"
)

// MenuChoice is what the player picked in the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      int
	preview   string // Colored fruit row
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(deps Deps, renderer *ScreenRenderer, cfg core.RuntimeConfig) MenuModel {
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}

	best := 0
	if entries, err := deps.Ranking.ListTopScores(); err != nil {
		deps.Logger.Warn("could not load ranking", "error", err)
	} else if len(entries) > 0 {
		best = entries[0].Score
	}

	// One dot per tier, smallest first
	var preview strings.Builder
	for i, t := range deps.Catalog.Tiers() {
		if i > 0 {
			preview.WriteString(" ")
		}
		preview.WriteString(renderer.Lipgloss().NewStyle().Foreground(lipgloss.Color(t.Color)).Render("●"))
	}

	return MenuModel{
		items: []MenuItem{
			{Title: "Play", Choice: ChoicePlay},
			{Title: "High Scores", Choice: ChoiceScores},
			{Title: "Quit", Choice: ChoiceQuit},
		},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		best:      best,
		preview:   preview.String(),
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		m.choice = ChoiceQuit
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
		m.choice = m.items[m.cursor].Choice
		if m.choice == ChoiceQuit {
			m.quitting = true
		}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.choice = ChoiceScores
		return m, tea.Quit
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
	b.WriteString(centerText("  S U I K A  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.preview))
	b.WriteString("\n\n")

	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best: %d", m.best), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-12s", cursor, item.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or ChoiceNone.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(deps Deps, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(deps, nil, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}

