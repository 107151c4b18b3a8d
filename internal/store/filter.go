package store

import (
	"strings"

	"github.com/thenoetrevino/tack/internal/models"
)

// Filter returns the tasks whose title or description contains query,
// ignoring case. An empty query matches everything. The input is not modified.
func Filter(tasks []models.Task, query string) []models.Task {
	needle := strings.ToLower(query)
	matches := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if needle == "" ||
			strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			matches = append(matches, task)
		}
	}
	return matches
}
