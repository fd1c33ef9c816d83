package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-suika/internal/storage"
)

// NameEntry is the one-shot prompt shown at game over.
// Enter submits the typed name, Esc submits the default name.
type NameEntry struct {
	input     textinput.Model
	box       lipgloss.Style
	submitted bool
}

// NewNameEntry creates a prompt prefilled with the given name.
func NewNameEntry(r *lipgloss.Renderer, initial string) NameEntry {
	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = storage.DefaultName
	ti.CharLimit = storage.MaxNameLen
	ti.Width = storage.MaxNameLen + 1
	if initial != "" {
		ti.SetValue(storage.NormalizeName(initial))
	}
	ti.Focus()

	return NameEntry{
		input: ti,
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("3")).
			Padding(0, 1),
	}
}

// Init starts the cursor blink.
func (n NameEntry) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input. Returns the updated prompt and a command.
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	if n.submitted {
		return n, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyEnter:
			n.submitted = true
			n.input.Blur()
			return n, nil
		case tea.KeyEsc:
			n.input.SetValue("")
			n.submitted = true
			n.input.Blur()
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// Submitted reports whether the player confirmed a name.
func (n NameEntry) Submitted() bool {
	return n.submitted
}

// Name returns the normalized name.
func (n NameEntry) Name() string {
	return storage.NormalizeName(n.input.Value())
}

// Height is the number of terminal rows the prompt occupies.
func (n NameEntry) Height() int {
	return 3
}

// View renders the prompt box.
func (n NameEntry) View() string {
	return n.box.Render(n.input.View() + "  enter save · esc skip")
}
