package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/tack/internal/models"
)

// NewTask builds a task ready for an Add action.
// Title and description are trimmed; a blank title is rejected.
// IDs are time-ordered UUIDs so rapid creation never collides.
func NewTask(title, description string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, models.ErrEmptyTitle
	}

	id, err := uuid.NewV7()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to generate task id: %w", err)
	}

	return models.Task{
		ID:          id.String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Completed:   false,
	}, nil
}
