package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tack/internal/tui"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

// ============================================================================
// HELP AND DETAIL MODE HANDLERS
// ============================================================================

// HandleHelpMode handles input in the help screen.
func HandleHelpMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
		return nil
	}
	return nil
}

// HandleDetailMode closes the detail view or scrolls its description.
func HandleDetailMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings
	switch msg.String() {
	case km.ViewTask, km.Quit, "esc", "enter":
		m.DetailState.Close()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case km.EditTask:
		task, err := m.Tasks.GetTask(m.Ctx, m.DetailState.TaskID)
		m.DetailState.Close()
		if err != nil {
			m.UiState.SetMode(state.NormalMode)
			return nil
		}
		return openForm(m, task.ID, task.Title, task.Description)
	case km.NextTask:
		m.DetailState.Viewport.ScrollDown(1)
		return nil
	case km.PrevTask:
		m.DetailState.Viewport.ScrollUp(1)
		return nil
	}

	var cmd tea.Cmd
	m.DetailState.Viewport, cmd = m.DetailState.Viewport.Update(msg)
	return cmd
}
