package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// Field keys of the task form
const (
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyConfirm     = "confirm"
)

// CreateTaskForm creates the add/edit form. Values are written through the
// pointers as the user types, so the caller reads them after completion.
func CreateTaskForm(
	title *string,
	description *string,
	confirm *bool,
	descriptionLines int,
	editing bool,
) *huh.Form {
	confirmTitle := "Add this task?"
	if editing {
		confirmTitle = "Save changes?"
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key(KeyTitle).
			Title("Title").
			Placeholder("What needs doing?").
			CharLimit(200).
			Value(title),

		huh.NewText().
			Key(KeyDescription).
			Title("Description").
			Placeholder("Optional details (markdown)...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(description),

		huh.NewConfirm().
			Key(KeyConfirm).
			Title(confirmTitle).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	))
	return form.WithKeyMap(taskFormKeyMap()).WithShowHelp(false)
}

// taskFormKeyMap lets shift+enter break lines in the description and
// leaves esc to the caller, which closes the modal itself.
func taskFormKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	keymap.Quit = key.NewBinding(key.WithKeys("ctrl+c"))

	return keymap
}
