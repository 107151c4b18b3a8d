package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/tack/internal/models"
)

func TestFilter(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "Buy milk"},
		{ID: "2", Title: "Call Bob", Description: "milk run"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"matches title or description", "milk", []string{"1", "2"}},
		{"case insensitive", "MILK", []string{"1", "2"}},
		{"description only", "run", []string{"2"}},
		{"title only", "bob", []string{"2"}},
		{"no match", "xyz", []string{}},
		{"empty query matches all", "", []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tasks, tt.query)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	tasks := []models.Task{
		{ID: "3", Title: "c milk"},
		{ID: "1", Title: "a"},
		{ID: "2", Title: "b milk"},
	}
	got := Filter(tasks, "milk")
	assert.Equal(t, []models.Task{tasks[0], tasks[2]}, got)
	assert.Len(t, tasks, 3)
}
