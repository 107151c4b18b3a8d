package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tack/internal/models"
)

func TestNewTask_TrimsAndDefaults(t *testing.T) {
	task, err := NewTask("  Buy milk  ", "\t2 litres \n")
	require.NoError(t, err)

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2 litres", task.Description)
	assert.False(t, task.Completed)

	_, err = uuid.Parse(task.ID)
	assert.NoError(t, err, "ID should be a UUID")
}

func TestNewTask_RejectsBlankTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\n\t"} {
		_, err := NewTask(title, "desc")
		assert.ErrorIs(t, err, models.ErrEmptyTitle)
	}
}

func TestNewTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for range 1000 {
		task, err := NewTask("t", "")
		require.NoError(t, err)
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestAddThroughReducer_IncreasesLengthByOne(t *testing.T) {
	current := sampleTasks()
	task, err := NewTask(" Fresh ", " desc ")
	require.NoError(t, err)

	next := Reduce(current, Add{Task: task})

	require.Len(t, next, len(current)+1)
	added := next[len(next)-1]
	assert.Equal(t, "Fresh", added.Title)
	assert.Equal(t, "desc", added.Description)
	assert.False(t, added.Completed)
}
