package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-suika/internal/core"
)

// ScreenRenderer turns a core.Screen into styled terminal output.
// Each SSH session gets its own renderer so color detection follows the
// remote terminal. Styles are cached per color token.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer creates a renderer. A nil lipgloss renderer uses the
// process default (local stdout).
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		r:      r,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

// Lipgloss returns the underlying lipgloss renderer, for building styles
// outside the screen buffer.
func (sr *ScreenRenderer) Lipgloss() *lipgloss.Renderer {
	return sr.r
}

// style returns the cached style for a color token.
func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if st, ok := sr.styles[c]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if c != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(c))
	}
	sr.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
