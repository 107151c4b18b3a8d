package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tack/internal/tui"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

// ============================================================================
// SEARCH MODE HANDLERS
// ============================================================================

// HandleEnterSearch focuses the search box, keeping any kept query so it
// can be refined.
func HandleEnterSearch(m *tui.Model) tea.Cmd {
	m.SearchState.Deactivate()
	m.UiState.SetMode(state.SearchMode)
	return nil
}

// HandleSearchMode handles keyboard input in search mode.
// The grid filters live as the query changes.
func HandleSearchMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.SearchState.Activate()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "esc", "ctrl+c":
		m.SearchState.Clear()
		m.SearchState.Deactivate()
		m.UiState.SetMode(state.NormalMode)
		m.UiState.ResetSelection()
		return nil
	case "backspace", "ctrl+h":
		if m.SearchState.Backspace() {
			m.UiState.ResetSelection()
		}
		return nil
	}

	if msg.Text != "" && m.SearchState.AppendText(msg.Text) {
		m.UiState.ResetSelection()
	}
	return nil
}
