package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-suika/internal/core"
	"github.com/vovakirdan/tui-suika/internal/engine"
	"github.com/vovakirdan/tui-suika/internal/fruit"
	"github.com/vovakirdan/tui-suika/internal/storage"
)

type historyRecorder struct{ games []storage.GameResult }

func (h *historyRecorder) SaveGame(r storage.GameResult) (int64, error) {
	h.games = append(h.games, r)
	return int64(len(h.games)), nil
}

// quickDeps returns deps where the first fruit to settle ends the game.
func quickDeps() (Deps, *historyRecorder) {
	physics := engine.DefaultConfig()
	physics.CeilingY = 590
	physics.DwellTime = 0

	h := &historyRecorder{}
	return Deps{
		Catalog: fruit.Default(),
		Physics: physics,
		Ranking: storage.NewMemoryRanking(),
		History: h,
		Logger:  log.New(io.Discard),
	}, h
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func send(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func tick(m GameModel) GameModel {
	return send(m, TickMsg(time.Now()))
}

// playUntilOver drops fruit until the name prompt opens.
func playUntilOver(t *testing.T, m GameModel) GameModel {
	t.Helper()
	for i := 0; i < 2000 && m.phase == phasePlaying; i++ {
		m = send(m, runeKey(' '))
		m = tick(m)
	}
	if m.phase != phaseNaming {
		t.Fatal("Expected name prompt after game over")
	}
	return m
}

func TestGameModelRecordsScoreAtGameOver(t *testing.T) {
	deps, history := quickDeps()
	m := NewGameModel(deps, plainRenderer(), testConfig(), "kim")
	m.Init()

	m = playUntilOver(t, m)
	if len(history.games) != 1 {
		t.Fatalf("Expected one history entry, got %d", len(history.games))
	}

	// Typing q goes into the prompt instead of quitting
	m = send(m, runeKey('q'))
	if m.IsQuitting() {
		t.Fatal("q should type into the name prompt")
	}
	if !strings.Contains(m.View(), "Name:") {
		t.Error("Prompt should be visible")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.phase != phaseRanked {
		t.Fatal("Enter should submit the name")
	}

	entries, _ := deps.Ranking.ListTopScores()
	if len(entries) != 1 || entries[0].Name != "kimq" {
		t.Fatalf("ranking = %+v", entries)
	}
	if entries[0].Score != m.gameState.Score {
		t.Errorf("recorded %d, game scored %d", entries[0].Score, m.gameState.Score)
	}
	if !strings.Contains(m.View(), "TOP 10") {
		t.Error("Ranking should be shown after submitting")
	}
}

func TestGameModelRestartAfterRanking(t *testing.T) {
	deps, _ := quickDeps()
	m := NewGameModel(deps, plainRenderer(), testConfig(), "")
	m.Init()

	m = playUntilOver(t, m)
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	entries, _ := deps.Ranking.ListTopScores()
	if len(entries) != 1 || entries[0].Name != storage.DefaultName {
		t.Fatalf("Esc should record the default name, got %+v", entries)
	}

	m = send(m, runeKey('r'))
	m = tick(m)
	if m.phase != phasePlaying || m.gameState.GameOver {
		t.Error("r should start a new game")
	}
	if m.config.Seed != 7 {
		t.Errorf("fixed seed should be kept on restart, got %d", m.config.Seed)
	}
}

func TestGameModelSkipsPromptWhenScoreCannotRank(t *testing.T) {
	deps, history := quickDeps()
	for i := 0; i < storage.RankingSize; i++ {
		if err := deps.Ranking.RecordScore("pro", 1000+i); err != nil {
			t.Fatalf("RecordScore failed: %v", err)
		}
	}
	m := NewGameModel(deps, plainRenderer(), testConfig(), "kim")
	m.Init()

	for i := 0; i < 2000 && !m.gameState.GameOver; i++ {
		m = send(m, runeKey(' '))
		m = tick(m)
	}
	if !m.gameState.GameOver {
		t.Fatal("Expected game over")
	}
	if m.phase != phaseRanked {
		t.Fatalf("phase = %v, expected the board without a prompt", m.phase)
	}
	if strings.Contains(m.View(), "Name:") {
		t.Error("Prompt should not be shown")
	}
	if !strings.Contains(m.View(), "TOP 10") {
		t.Error("Ranking should be shown")
	}
	if len(history.games) != 1 {
		t.Errorf("History should still be saved, got %d", len(history.games))
	}

	entries, _ := deps.Ranking.ListTopScores()
	for _, e := range entries {
		if e.Name == "kim" {
			t.Errorf("Score should not be recorded: %+v", entries)
		}
	}

	m = send(m, runeKey('r'))
	m = tick(m)
	if m.phase != phasePlaying {
		t.Error("r should start a new game")
	}
}

func TestGameModelBackPausesThenLeaves(t *testing.T) {
	deps, _ := quickDeps()
	m := NewGameModel(deps, plainRenderer(), testConfig(), "")
	m.Init()

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(m)
	if !m.gameState.Paused {
		t.Fatal("Esc while playing should pause")
	}
	if m.BackToMenu() {
		t.Fatal("First Esc should not leave")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("Esc while paused should go back to the menu")
	}
}

func TestGameModelMouseAims(t *testing.T) {
	deps, _ := quickDeps()
	m := NewGameModel(deps, plainRenderer(), testConfig(), "")
	m.Init()

	m = send(m, tea.MouseMsg{X: 0, Action: tea.MouseActionMotion})
	m = tick(m)

	a := m.game.Snapshot().Active
	if a == nil || a.X != a.Radius {
		t.Errorf("Pointer at the left wall should pin the fruit to it, got %+v", a)
	}
}

func TestGameModelQuit(t *testing.T) {
	deps, _ := quickDeps()
	m := NewGameModel(deps, plainRenderer(), testConfig(), "")

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit while playing")
	}
	if next.(GameModel).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestBoardLines(t *testing.T) {
	lines := boardLines([]storage.RankEntry{{Name: "kim", Score: 120}, {Name: "averylon", Score: 7}})
	if lines[0] != " 1 kim         120" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " 2 averylon") {
		t.Errorf("line 1 = %q", lines[1])
	}
}
