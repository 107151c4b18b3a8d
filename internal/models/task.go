package models

// Task is a single entry in the task list.
// The JSON shape is the one written to the persistence slot.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// GetID returns the task ID. Used by the CLI quiet output mode.
func (t Task) GetID() string {
	return t.ID
}
