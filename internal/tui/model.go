package tui

import (
	"context"
	"time"

	"github.com/thenoetrevino/tack/internal/app"
	"github.com/thenoetrevino/tack/internal/config"
	"github.com/thenoetrevino/tack/internal/models"
	taskservice "github.com/thenoetrevino/tack/internal/services/task"
	"github.com/thenoetrevino/tack/internal/tui/components"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

// Timeout for a single storage write triggered from the UI
const timeoutDB = 10 * time.Second

// Model represents the application state for the TUI.
// Update and View live in the handlers and render packages.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Tasks  taskservice.Service
	Config *config.Config

	UiState           *state.UIState
	SearchState       *state.SearchState
	FormState         *state.FormState
	NotificationState *state.NotificationState
	DetailState       *state.DetailState
}

// InitialModel creates the TUI model over an already hydrated app
func InitialModel(ctx context.Context, application *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	return Model{
		Ctx:               ctx,
		App:               application,
		Tasks:             application.TaskService,
		Config:            cfg,
		UiState:           state.NewUIState(),
		SearchState:       state.NewSearchState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		DetailState:       state.NewDetailState(),
	}
}

// DbContext creates a child context with timeout for storage operations
func (m *Model) DbContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, timeoutDB)
}

// VisibleTasks returns the tasks shown in the grid: all tasks, or the ones
// matching the search query.
func (m *Model) VisibleTasks() []models.Task {
	if m.SearchState.Searching() {
		return m.Tasks.SearchTasks(m.Ctx, m.SearchState.Query)
	}
	return m.Tasks.ListTasks(m.Ctx)
}

// SelectedTask returns the task under the cursor, if any
func (m *Model) SelectedTask() (models.Task, bool) {
	tasks := m.VisibleTasks()
	idx := m.UiState.Selected()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}

// ClampSelection keeps the cursor on a visible card after the list changed
func (m *Model) ClampSelection() {
	m.UiState.ClampSelection(len(m.VisibleTasks()))
	m.UiState.EnsureSelectionVisible(components.VisibleRows(m.UiState.ContentHeight()))
}
