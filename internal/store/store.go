package store

import (
	"slices"
	"sync"

	"github.com/thenoetrevino/tack/internal/models"
)

// ChangeListener receives the full list after every effective transition.
type ChangeListener func(tasks []models.Task) error

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithChangeListener registers the listener called after each effective change
func WithChangeListener(fn ChangeListener) Option {
	return func(s *Store) {
		s.onChange = fn
	}
}

// Store holds the current task list and applies actions through Reduce.
// There is a single writer; the mutex only guards reads that happen
// from command goroutines while the update loop dispatches.
type Store struct {
	mu       sync.RWMutex
	tasks    []models.Task
	onChange ChangeListener
}

// New creates a store hydrated with initial
func New(initial []models.Task, opts ...Option) *Store {
	s := &Store{tasks: clone(initial)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch applies action and notifies the change listener when the list
// actually changed. The in-memory list is updated even if the listener fails;
// the listener error is returned to the caller.
func (s *Store) Dispatch(action Action) error {
	s.mu.Lock()
	next := Reduce(s.tasks, action)
	if slices.Equal(next, s.tasks) {
		s.mu.Unlock()
		return nil
	}
	s.tasks = next
	listener := s.onChange
	snapshot := clone(next)
	s.mu.Unlock()

	if listener == nil {
		return nil
	}
	return listener(snapshot)
}

// Tasks returns a copy of the current list
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.tasks)
}

// Len returns the number of tasks in the list
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// Find returns the task with the given ID
func (s *Store) Find(id string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return models.Task{}, false
}
