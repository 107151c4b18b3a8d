package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tack/internal/tui"
	"github.com/thenoetrevino/tack/internal/tui/components"
	"github.com/thenoetrevino/tack/internal/tui/notifications"
	"github.com/thenoetrevino/tack/internal/tui/state"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true // Use alternate screen buffer

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// The grid always stays underneath; modals float over it
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(ViewTaskGrid(m)),
		lipgloss.NewLayer(viewStatusBar(m)).Y(max(m.UiState.Height()-1, 0)),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.FormMode:
		modalLayer = RenderFormLayer(m)
	case state.DetailMode:
		modalLayer = RenderDetailLayer(m)
	case state.HelpMode:
		modalLayer = RenderHelpLayer(m)
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	layers = append(layers, m.NotificationState.GetLayers(notifications.Render)...)

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}

// ViewTaskGrid renders the header, the search box and the card grid.
func ViewTaskGrid(m *tui.Model) string {
	width := m.UiState.Width()
	tasks := m.VisibleTasks()

	header := components.TitleStyle.Render("tack")
	search := components.RenderSearchBox(components.SearchBoxProps{
		Query:   m.SearchState.Query,
		Focused: m.UiState.Mode() == state.SearchMode,
		Kept:    m.SearchState.IsActive,
		Width:   width,
	})
	grid := components.RenderGrid(components.GridProps{
		Tasks:     tasks,
		Selected:  m.UiState.Selected(),
		Columns:   m.UiState.GridColumns(),
		RowOffset: m.UiState.RowOffset(),
		Width:     width,
		Height:    m.UiState.ContentHeight(),
		Searching: m.SearchState.Searching(),
	})

	return lipgloss.JoinVertical(lipgloss.Left, header, "", search, "", grid)
}

// viewStatusBar renders counts for the whole list and, while filtering, the matches.
func viewStatusBar(m *tui.Model) string {
	all := m.Tasks.ListTasks(m.Ctx)
	completed := 0
	for _, task := range all {
		if task.Completed {
			completed++
		}
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width:     m.UiState.Width(),
		Total:     len(all),
		Completed: completed,
		Shown:     len(m.VisibleTasks()),
		Searching: m.SearchState.Searching(),
	})
}
