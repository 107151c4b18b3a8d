// Package store holds the authoritative ordered task list and its transition function.
package store

import "github.com/thenoetrevino/tack/internal/models"

// Action is a transition request understood by Reduce.
// The set of actions is closed: only types in this package implement it.
type Action interface {
	isAction()
}

// Add appends a fully formed task to the end of the list.
// The caller is responsible for minting a unique ID.
type Add struct {
	Task models.Task
}

// Delete removes the task with the given ID.
type Delete struct {
	ID string
}

// Toggle flips the completed flag of the task with the given ID.
type Toggle struct {
	ID string
}

// Edit replaces the title and description of the task with the given ID.
// Values are applied exactly as given.
type Edit struct {
	ID          string
	Title       string
	Description string
}

// Replace substitutes the entire list. Used by seed import.
type Replace struct {
	Tasks []models.Task
}

func (Add) isAction()     {}
func (Delete) isAction()  {}
func (Toggle) isAction()  {}
func (Edit) isAction()    {}
func (Replace) isAction() {}
