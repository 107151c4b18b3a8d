package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tack/internal/models"
)

// SeedFetchedMsg carries the result of the one startup seed fetch
type SeedFetchedMsg struct {
	Tasks []models.Task
	Err   error
}

// FetchSeedCmd fetches seed tasks off the update loop. It returns nil when
// no seed endpoint is configured.
func (m *Model) FetchSeedCmd() tea.Cmd {
	if m.App.SeedURL() == "" {
		return nil
	}
	ctx := m.Ctx
	application := m.App
	return func() tea.Msg {
		tasks, err := application.FetchSeed(ctx)
		return SeedFetchedMsg{Tasks: tasks, Err: err}
	}
}
