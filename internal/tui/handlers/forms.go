package handlers

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	taskservice "github.com/thenoetrevino/tack/internal/services/task"
	"github.com/thenoetrevino/tack/internal/tui"
	"github.com/thenoetrevino/tack/internal/tui/huhforms"
	"github.com/thenoetrevino/tack/internal/tui/layers"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

// Rows of the modal taken by the title input, confirm and box chrome
const formChromeLines = 12

// openForm opens the shared add/edit modal. An empty taskID means adding.
func openForm(m *tui.Model, taskID, title, description string) tea.Cmd {
	m.FormState.Open(taskID, title, description)
	buildForm(m)
	m.UiState.SetMode(state.FormMode)
	return m.FormState.Form.Init()
}

// buildForm binds a fresh huh form to the current field values.
func buildForm(m *tui.Model) {
	_, height := layers.ModalSize(m.UiState.Width(), m.UiState.Height(), layers.FormMinWidth, layers.FormMaxWidth)
	descriptionLines := max(height-formChromeLines, 3)

	m.FormState.Form = huhforms.CreateTaskForm(
		&m.FormState.FormTitle,
		&m.FormState.FormDescription,
		&m.FormState.FormConfirm,
		descriptionLines,
		m.FormState.IsEditing(),
	).WithTheme(huhforms.CreateTackTheme(m.Config.ColorScheme, m.FormState.IsEditing()))
}

// closeForm returns to the grid and resets the modal.
func closeForm(m *tui.Model) tea.Cmd {
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
	m.ClampSelection()
	return tea.ClearScreen
}

// HandleFormMode handles all messages while the modal is open.
// Forms need ALL messages, not just key presses.
func HandleFormMode(m *tui.Model, msg tea.Msg) tea.Cmd {
	if !m.FormState.IsOpen() {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	// Check for keyboard shortcuts before passing to form
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return closeForm(m)
		case m.Config.KeyMappings.SaveForm:
			m.FormState.FormConfirm = true
			return submitForm(m)
		}
	}

	model, cmd := m.FormState.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.Form = form
	}

	switch m.FormState.Form.State {
	case huh.StateCompleted:
		return submitForm(m)
	case huh.StateAborted:
		return closeForm(m)
	}
	return cmd
}

// submitForm saves the modal fields. A blank title is rejected silently:
// nothing is dispatched and the modal stays open on a rebuilt form.
// Declining the confirm, or an edit that changed nothing, closes without saving.
func submitForm(m *tui.Model) tea.Cmd {
	if !m.FormState.FormConfirm {
		return closeForm(m)
	}
	if m.FormState.IsEditing() && !m.FormState.HasChanges() {
		return closeForm(m)
	}

	if m.FormState.TrimmedTitle() == "" {
		if m.FormState.Form.State != huh.StateNormal {
			buildForm(m)
			return m.FormState.Form.Init()
		}
		return nil
	}

	ctx, cancel := m.DbContext()
	defer cancel()

	var err error
	if m.FormState.IsEditing() {
		title := m.FormState.FormTitle
		description := m.FormState.FormDescription
		_, err = m.Tasks.UpdateTask(ctx, taskservice.UpdateTaskRequest{
			TaskID:      m.FormState.EditingTaskID,
			Title:       &title,
			Description: &description,
		})
	} else {
		_, err = m.Tasks.CreateTask(ctx, taskservice.CreateTaskRequest{
			Title:       m.FormState.FormTitle,
			Description: m.FormState.FormDescription,
		})
	}

	switch {
	case err == nil:
	case errors.Is(err, taskservice.ErrTaskNotFound):
		// Deleted while the modal was open
		slog.Warn("Edited task no longer exists", "task_id", m.FormState.EditingTaskID)
		m.NotificationState.Add(state.LevelWarning, "Task no longer exists")
	default:
		slog.Error("Error saving task", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to save task")
	}

	return closeForm(m)
}
