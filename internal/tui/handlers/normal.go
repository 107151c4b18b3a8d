package handlers

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tack/internal/tui"
	"github.com/thenoetrevino/tack/internal/tui/components"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.Search:
		return HandleEnterSearch(m)
	case km.AddTask:
		return handleAddTask(m)
	case km.EditTask:
		return handleEditTask(m)
	case km.DeleteTask:
		return handleDeleteTask(m)
	case km.ToggleTask:
		return handleToggleTask(m)
	case km.ViewTask:
		return handleViewTask(m)
	case km.PrevColumn, "left":
		return handleNavigate(m, -1)
	case km.NextColumn, "right":
		return handleNavigate(m, 1)
	case km.PrevTask, "up":
		return handleNavigate(m, -m.UiState.GridColumns())
	case km.NextTask, "down":
		return handleNavigate(m, m.UiState.GridColumns())
	case "esc":
		// A kept filter is dropped with esc from the grid as well
		if m.SearchState.Searching() {
			m.SearchState.Clear()
			m.SearchState.Deactivate()
			m.UiState.ResetSelection()
		}
		return nil
	}
	return nil
}

// handleNavigate moves the cursor by delta cards, where a row step is one
// column count.
func handleNavigate(m *tui.Model, delta int) tea.Cmd {
	count := len(m.VisibleTasks())
	if !m.UiState.MoveSelection(delta, count) {
		// Stepping down into a shorter last row lands on its last card
		columns := m.UiState.GridColumns()
		if delta < columns || m.UiState.Selected()/columns >= (count-1)/columns {
			return nil
		}
		m.UiState.SetSelected(count - 1)
	}
	m.UiState.EnsureSelectionVisible(components.VisibleRows(m.UiState.ContentHeight()))
	return nil
}

// handleAddTask opens the modal empty.
func handleAddTask(m *tui.Model) tea.Cmd {
	return openForm(m, "", "", "")
}

// handleEditTask opens the modal prefilled with the selected task.
func handleEditTask(m *tui.Model) tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	return openForm(m, task.ID, task.Title, task.Description)
}

// handleDeleteTask removes the selected task immediately.
func handleDeleteTask(m *tui.Model) tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if err := m.Tasks.DeleteTask(ctx, task.ID); err != nil {
		slog.Error("Error deleting task", "task_id", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to save after delete")
	}
	m.ClampSelection()
	return nil
}

// handleToggleTask flips completion of the selected task.
func handleToggleTask(m *tui.Model) tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()
	if _, err := m.Tasks.ToggleTask(ctx, task.ID); err != nil {
		slog.Error("Error toggling task", "task_id", task.ID, "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to save task")
	}
	// A toggle can change which cards match the query
	m.ClampSelection()
	return nil
}

// handleViewTask opens the detail view for the selected task.
func handleViewTask(m *tui.Model) tea.Cmd {
	task, ok := m.SelectedTask()
	if !ok {
		return nil
	}
	m.DetailState.Open(task.ID)
	m.UiState.SetMode(state.DetailMode)
	return nil
}
