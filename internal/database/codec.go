package database

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/tack/internal/models"
)

// storedTask mirrors models.Task with pointer fields so missing keys can be
// told apart from zero values during validation.
type storedTask struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// EncodeTasks serializes the full list as a JSON array.
// A nil list is written as [] rather than null.
func EncodeTasks(tasks []models.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := sonic.ConfigStd.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return data, nil
}

// DecodeTasks parses slot content, treating it as untrusted.
// Every element must carry a non-empty id and a title, and ids must be unique.
// Description and completed default to their zero values when absent.
// Any violation is reported as models.ErrMalformedSlot.
func DecodeTasks(data []byte) ([]models.Task, error) {
	var stored []*storedTask
	if err := sonic.ConfigStd.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMalformedSlot, err)
	}

	tasks := make([]models.Task, 0, len(stored))
	seen := make(map[string]struct{}, len(stored))
	for i, st := range stored {
		if st == nil {
			return nil, fmt.Errorf("%w: element %d is null", models.ErrMalformedSlot, i)
		}
		if st.ID == nil || *st.ID == "" {
			return nil, fmt.Errorf("%w: element %d has no id", models.ErrMalformedSlot, i)
		}
		if st.Title == nil {
			return nil, fmt.Errorf("%w: element %d has no title", models.ErrMalformedSlot, i)
		}
		if _, dup := seen[*st.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", models.ErrMalformedSlot, *st.ID)
		}
		seen[*st.ID] = struct{}{}

		task := models.Task{ID: *st.ID, Title: *st.Title}
		if st.Description != nil {
			task.Description = *st.Description
		}
		if st.Completed != nil {
			task.Completed = *st.Completed
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}
