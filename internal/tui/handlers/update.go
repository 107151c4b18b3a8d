package handlers

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tack/internal/tui"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return HandleWindowResize(m, msg)

	case tui.SeedFetchedMsg:
		return HandleSeedFetched(m, msg)

	case tea.BackgroundColorMsg:
		m.UiState.SetDarkBackground(msg.IsDark())
		return nil
	}

	// Forms need ALL messages (cursor blinks, focus, etc.)
	if m.UiState.Mode() == state.FormMode {
		return HandleFormMode(m, msg)
	}

	if msg, ok := msg.(tea.KeyPressMsg); ok {
		return HandleKeyMsg(m, msg)
	}
	return nil
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.SearchMode:
		return HandleSearchMode(m, msg)
	case state.DetailMode:
		return HandleDetailMode(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	}
	return nil
}

// HandleWindowResize handles terminal resize events.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)

	// Column count may have changed, keep the cursor on screen
	m.ClampSelection()
	return nil
}

// HandleSeedFetched applies the startup seed result. Failures were already
// swallowed upstream; they are only logged here. A result that arrives
// after the user added tasks is dropped.
func HandleSeedFetched(m *tui.Model, msg tui.SeedFetchedMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Warn("Seed import failed", "url", m.App.SeedURL(), "error", msg.Err)
		return nil
	}

	applied, err := m.App.ApplySeed(msg.Tasks)
	if err != nil {
		m.NotificationState.Add(state.LevelError, "Could not save imported tasks")
		return nil
	}
	if applied {
		m.ClampSelection()
		m.NotificationState.Add(state.LevelInfo, fmt.Sprintf("Imported %d tasks", len(msg.Tasks)))
	}
	return nil
}
