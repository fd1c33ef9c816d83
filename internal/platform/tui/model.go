package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-suika/internal/core"
	"github.com/vovakirdan/tui-suika/internal/game"
	"github.com/vovakirdan/tui-suika/internal/storage"
)

// phase tracks where a game screen is in its lifecycle.
type phase int

const (
	phasePlaying phase = iota
	phaseNaming        // Game over, name prompt open
	phaseRanked        // Score recorded, ranking shown
)

// gameOverLog logs the final score of a session.
type gameOverLog struct {
	logger *log.Logger
	player string
}

func (l gameOverLog) OnGameOver(final int) {
	l.logger.Info("game over", "player", l.player, "score", final)
}

// GameModel is the Bubble Tea model for one game screen: it ticks the
// game, maps keys and mouse to input frames, prompts for a name at game
// over and records the score.
type GameModel struct {
	deps       Deps
	game       *game.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	config     core.RuntimeConfig
	fixedSeed  bool
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	phase      phase
	entry      NameEntry
	quitting   bool
	backToMenu bool
	exitOnBack bool // Back ends the program; the caller shows the menu
}

// NewGameModel creates a game screen. A zero seed picks a time-based seed
// for every game; a fixed seed is reused on restart.
func NewGameModel(deps Deps, renderer *ScreenRenderer, cfg core.RuntimeConfig, player string) GameModel {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}

	g := deps.NewGame()
	g.SetGameOverNotifier(gameOverLog{logger: deps.Logger, player: storage.NormalizeName(player)})

	return GameModel{
		deps:       deps,
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   renderer,
		config:     cfg,
		fixedSeed:  fixed,
		player:     player,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.startGame()
	return tickCmd(m.config.TickRate)
}

// startGame resets the game and loads the best score for the HUD.
// The game is a pointer, so this works from value receivers.
func (m GameModel) startGame() {
	m.game.Reset(m.config)
	entries, err := m.deps.Ranking.ListTopScores()
	if err != nil {
		m.deps.Logger.Warn("could not load ranking", "error", err)
		return
	}
	if len(entries) > 0 {
		m.game.SetBest(entries[0].Score)
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.phase == phaseNaming {
		return m.updateNaming(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionBack:
		// Back leaves a finished or paused game; while playing it pauses
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
			return m, nil
		}
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.phase == phaseRanked {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.startGame()
		m.gameState = m.game.State()
		m.phase = phasePlaying
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver && m.phase == phasePlaying {
		m.saveHistory()
		entries, err := m.deps.Ranking.ListTopScores()
		if err != nil {
			m.deps.Logger.Warn("could not load ranking", "error", err)
		} else if !storage.Qualifies(entries, m.gameState.Score) {
			// Nothing to record: show the board without asking for a name
			m.game.SetBoard(boardLines(entries))
			m.phase = phaseRanked
			return m, tickCmd(m.config.TickRate)
		}
		m.phase = phaseNaming
		m.entry = NewNameEntry(m.renderer.Lipgloss(), m.player)
		return m, tea.Batch(m.entry.Init(), tickCmd(m.config.TickRate))
	}

	return m, tickCmd(m.config.TickRate)
}

// updateNaming routes messages to the name prompt until it is submitted.
// Ticks keep flowing so the loop stays alive.
func (m GameModel) updateNaming(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m, tickCmd(m.config.TickRate)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	if m.entry.Submitted() {
		m.recordScore(m.entry.Name())
		m.phase = phaseRanked
	}
	return m, cmd
}

// saveHistory stores the finished session. Best-effort: failures are
// logged and play continues.
func (m GameModel) saveHistory() {
	if m.deps.History == nil {
		return
	}
	sum := m.game.Summary()
	_, err := m.deps.History.SaveGame(storage.GameResult{
		Name:     m.player,
		Score:    sum.Score,
		Merges:   sum.Merges,
		MaxTier:  sum.MaxTier,
		Duration: sum.Elapsed,
	})
	if err != nil {
		m.deps.Logger.Warn("could not save game", "error", err)
	}
}

// recordScore writes the ranking entry and shows the updated board.
func (m GameModel) recordScore(name string) {
	score := m.gameState.Score
	if err := m.deps.Ranking.RecordScore(name, score); err != nil {
		m.deps.Logger.Warn("could not record score", "name", name, "score", score, "error", err)
	}

	entries, err := m.deps.Ranking.ListTopScores()
	if err != nil {
		m.deps.Logger.Warn("could not load ranking", "error", err)
		return
	}
	m.game.SetBoard(boardLines(entries))
}

// boardLines formats ranking entries for the game sidebar.
func boardLines(entries []storage.RankEntry) []string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%2d %-8s %6d", i+1, e.Name, e.Score)
	}
	return lines
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".suika", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.deps.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := m.renderer.Render(m.screen)

	if m.phase == phaseNaming {
		// The prompt replaces the bottom rows of the frame
		lines := strings.Split(out, "\n")
		keep := core.Max(0, len(lines)-m.entry.Height())
		prompt := lipgloss.PlaceHorizontal(m.screen.Width(), lipgloss.Center, m.entry.View())
		out = strings.Join(lines[:keep], "\n") + "\n" + prompt
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game: back and quit both end the program.
func Run(deps Deps, cfg core.RuntimeConfig, player string) error {
	_, err := RunGame(deps, cfg, player)
	return err
}

// RunGame runs one game screen in its own program.
// Returns true if the player asked to go back to the menu.
func RunGame(deps Deps, cfg core.RuntimeConfig, player string) (backToMenu bool, err error) {
	model := NewGameModel(deps, nil, cfg, player)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer aiming without a held button
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu() && !m.IsQuitting(), nil
}
