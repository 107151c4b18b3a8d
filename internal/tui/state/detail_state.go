package state

import (
	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
)

// DetailState holds the task shown in the detail view and the viewport
// that scrolls its rendered description.
type DetailState struct {
	TaskID   string
	Viewport viewport.Model
}

// NewDetailState creates a DetailState with no task open.
func NewDetailState() *DetailState {
	vp := viewport.New()
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = true
	return &DetailState{Viewport: vp}
}

// Open shows taskID and scrolls back to the top.
func (s *DetailState) Open(taskID string) {
	s.TaskID = taskID
	s.Viewport.GotoTop()
}

// IsOpen reports whether a task is being viewed.
func (s *DetailState) IsOpen() bool {
	return s.TaskID != ""
}

// Close forgets the viewed task.
func (s *DetailState) Close() {
	s.TaskID = ""
}

// Resize updates the viewport dimensions, keeping at least one line.
func (s *DetailState) Resize(width, height int) {
	s.Viewport.SetWidth(max(width, 1))
	s.Viewport.SetHeight(max(height, 1))
}
