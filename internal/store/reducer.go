package store

import "github.com/thenoetrevino/tack/internal/models"

// Reduce maps the current list and an action to the next list.
// It never mutates current and always returns a fresh, non-nil slice.
// Actions referencing an unknown ID, and unrecognized actions, yield an
// unchanged copy of current.
func Reduce(current []models.Task, action Action) []models.Task {
	switch a := action.(type) {
	case Add:
		next := make([]models.Task, 0, len(current)+1)
		next = append(next, current...)
		return append(next, a.Task)

	case Delete:
		next := make([]models.Task, 0, len(current))
		for _, task := range current {
			if task.ID != a.ID {
				next = append(next, task)
			}
		}
		return next

	case Toggle:
		next := clone(current)
		for i := range next {
			if next[i].ID == a.ID {
				next[i].Completed = !next[i].Completed
			}
		}
		return next

	case Edit:
		next := clone(current)
		for i := range next {
			if next[i].ID == a.ID {
				next[i].Title = a.Title
				next[i].Description = a.Description
			}
		}
		return next

	case Replace:
		return clone(a.Tasks)

	default:
		return clone(current)
	}
}

// clone copies tasks into a new non-nil slice
func clone(tasks []models.Task) []models.Task {
	next := make([]models.Task, len(tasks))
	copy(next, tasks)
	return next
}
