package task

import (
	"errors"

	"github.com/thenoetrevino/tack/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle    = models.ErrEmptyTitle
	ErrInvalidTaskID = errors.New("invalid task ID")

	// Business logic errors
	ErrTaskNotFound = models.ErrTaskNotFound
)
