package state

import (
	"strings"

	"charm.land/huh/v2"
)

// FormState manages the shared add/edit modal.
// The modal is closed when Form is nil. EditingTaskID is empty while adding.
type FormState struct {
	Form          *huh.Form
	EditingTaskID string

	// Field values bound to the huh form
	FormTitle       string
	FormDescription string
	FormConfirm     bool

	// Values the modal opened with, for change detection
	initialTitle       string
	initialDescription string
}

// NewFormState creates a new FormState with the modal closed.
func NewFormState() *FormState {
	return &FormState{FormConfirm: true}
}

// Open prepares field values for adding (taskID empty) or editing a task.
// The caller builds the huh form against the field pointers afterwards.
func (s *FormState) Open(taskID, title, description string) {
	s.EditingTaskID = taskID
	s.FormTitle = title
	s.FormDescription = description
	s.FormConfirm = true
	s.initialTitle = title
	s.initialDescription = description
}

// IsOpen reports whether the modal is showing.
func (s *FormState) IsOpen() bool {
	return s.Form != nil
}

// IsEditing reports whether the modal edits an existing task.
func (s *FormState) IsEditing() bool {
	return s.EditingTaskID != ""
}

// HasChanges reports whether the fields differ from what the modal opened with.
func (s *FormState) HasChanges() bool {
	return s.FormTitle != s.initialTitle || s.FormDescription != s.initialDescription
}

// TrimmedTitle returns the title field with surrounding whitespace removed.
func (s *FormState) TrimmedTitle() string {
	return strings.TrimSpace(s.FormTitle)
}

// Clear closes the modal and resets all field values.
func (s *FormState) Clear() {
	*s = FormState{FormConfirm: true}
}
