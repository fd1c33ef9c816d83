package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-suika/internal/storage"
)

func typeText(n NameEntry, s string) NameEntry {
	for _, r := range s {
		n, _ = n.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return n
}

func TestNameEntrySubmit(t *testing.T) {
	n := NewNameEntry(lipgloss.DefaultRenderer(), "")
	n = typeText(n, "kim")

	if n.Submitted() {
		t.Fatal("typing should not submit")
	}
	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !n.Submitted() || n.Name() != "kim" {
		t.Errorf("after enter: submitted=%v name=%q", n.Submitted(), n.Name())
	}

	// Further input is ignored.
	n = typeText(n, "x")
	if n.Name() != "kim" {
		t.Errorf("name changed after submit: %q", n.Name())
	}
}

func TestNameEntryCharLimit(t *testing.T) {
	n := NewNameEntry(lipgloss.DefaultRenderer(), "")
	n = typeText(n, "abcdefghijkl")
	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := n.Name(); got != "abcdefgh" {
		t.Errorf("Name() = %q, expected 8 chars", got)
	}
}

func TestNameEntryEscUsesDefault(t *testing.T) {
	n := NewNameEntry(lipgloss.DefaultRenderer(), "sshuser")
	if n.Name() != "sshuser" {
		t.Errorf("prefill = %q", n.Name())
	}

	n, _ = n.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !n.Submitted() || n.Name() != storage.DefaultName {
		t.Errorf("after esc: submitted=%v name=%q", n.Submitted(), n.Name())
	}
}

func TestNameEntryPrefillIsTruncated(t *testing.T) {
	n := NewNameEntry(lipgloss.DefaultRenderer(), "averylongusername")
	if n.Name() != "averylon" {
		t.Errorf("prefill = %q", n.Name())
	}
}
