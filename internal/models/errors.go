package models

import "errors"

// Domain-specific errors for task operations
var (
	// ErrEmptyTitle indicates a title that is blank after trimming
	ErrEmptyTitle = errors.New("task title cannot be empty")

	// ErrTaskNotFound indicates that no task with the given ID exists in the list
	ErrTaskNotFound = errors.New("task not found")

	// ErrMalformedSlot indicates persisted content that does not decode to a valid task list
	ErrMalformedSlot = errors.New("persisted task list is malformed")
)
