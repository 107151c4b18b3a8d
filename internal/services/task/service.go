package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/tack/internal/models"
	"github.com/thenoetrevino/tack/internal/store"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context) []models.Task
	SearchTasks(ctx context.Context, query string) []models.Task
	GetTask(ctx context.Context, taskID string) (models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error)
	ToggleTask(ctx context.Context, taskID string) (models.Task, error)
	SetCompleted(ctx context.Context, taskID string, completed bool) (models.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
	ReplaceTasks(ctx context.Context, tasks []models.Task) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
}

// UpdateTaskRequest encapsulates all data needed to update a task
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID      string
	Title       *string
	Description *string
}

// service implements Service interface
type service struct {
	store *store.Store
}

// NewService creates a new task service
func NewService(s *store.Store) Service {
	return &service{store: s}
}

// ListTasks returns the full list in insertion order
func (s *service) ListTasks(ctx context.Context) []models.Task {
	return s.store.Tasks()
}

// SearchTasks returns tasks whose title or description contains query
func (s *service) SearchTasks(ctx context.Context, query string) []models.Task {
	return store.Filter(s.store.Tasks(), query)
}

// GetTask looks a task up by ID
func (s *service) GetTask(ctx context.Context, taskID string) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrInvalidTaskID
	}
	task, ok := s.store.Find(taskID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return task, nil
}

// CreateTask validates the request, mints an ID and appends the task
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (models.Task, error) {
	task, err := store.NewTask(req.Title, req.Description)
	if err != nil {
		return models.Task{}, err
	}

	if err := s.store.Dispatch(store.Add{Task: task}); err != nil {
		return task, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask replaces the title and/or description of an existing task.
// Both fields are trimmed; completion state is preserved.
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error) {
	current, err := s.GetTask(ctx, req.TaskID)
	if err != nil {
		return models.Task{}, err
	}

	title := current.Title
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
		if title == "" {
			return models.Task{}, ErrEmptyTitle
		}
	}
	description := current.Description
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}

	updated := current
	updated.Title = title
	updated.Description = description

	action := store.Edit{ID: req.TaskID, Title: title, Description: description}
	if err := s.store.Dispatch(action); err != nil {
		return updated, fmt.Errorf("failed to update task: %w", err)
	}
	return updated, nil
}

// ToggleTask flips the completion state of a task
func (s *service) ToggleTask(ctx context.Context, taskID string) (models.Task, error) {
	current, err := s.GetTask(ctx, taskID)
	if err != nil {
		return models.Task{}, err
	}

	current.Completed = !current.Completed
	if err := s.store.Dispatch(store.Toggle{ID: taskID}); err != nil {
		return current, fmt.Errorf("failed to toggle task: %w", err)
	}
	return current, nil
}

// SetCompleted toggles the task only if its state differs from completed
func (s *service) SetCompleted(ctx context.Context, taskID string, completed bool) (models.Task, error) {
	current, err := s.GetTask(ctx, taskID)
	if err != nil {
		return models.Task{}, err
	}
	if current.Completed == completed {
		return current, nil
	}
	return s.ToggleTask(ctx, taskID)
}

// DeleteTask removes a task immediately
func (s *service) DeleteTask(ctx context.Context, taskID string) error {
	if _, err := s.GetTask(ctx, taskID); err != nil {
		return err
	}
	if err := s.store.Dispatch(store.Delete{ID: taskID}); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ReplaceTasks swaps the whole list, as done by a seed import
func (s *service) ReplaceTasks(ctx context.Context, tasks []models.Task) error {
	if err := s.store.Dispatch(store.Replace{Tasks: tasks}); err != nil {
		return fmt.Errorf("failed to replace tasks: %w", err)
	}
	return nil
}
