package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tack/internal/models"
)

// failingSlot fails every operation
type failingSlot struct{ err error }

func (f failingSlot) Name() string                               { return "broken" }
func (f failingSlot) Load(context.Context) ([]byte, bool, error) { return nil, false, f.err }
func (f failingSlot) Save(context.Context, []byte) error         { return f.err }
func (f failingSlot) Clear(context.Context) error                { return f.err }
func (f failingSlot) Close() error                               { return nil }

func TestPersister_LoadAbsentIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	p := NewPersister(NewSQLiteSlot(db, models.DefaultSlotName), nil)

	tasks, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	empty, err := p.IsEmpty(context.Background())
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestPersister_SaveThenLoad(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	p := NewPersister(NewSQLiteSlot(db, models.DefaultSlotName), nil)
	ctx := context.Background()

	tasks := []models.Task{
		{ID: "1", Title: "A", Completed: true},
		{ID: "2", Title: "B", Description: "b"},
	}
	require.NoError(t, p.Save(ctx, tasks))

	got, err := p.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)

	empty, err := p.IsEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestPersister_MalformedFallsBackToEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	slot := NewSQLiteSlot(db, models.DefaultSlotName)
	ctx := context.Background()
	require.NoError(t, slot.Save(ctx, []byte(`this is not json`)))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	got, err := NewPersister(slot, logger).Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, logs.String(), "Ignoring malformed task slot")
}

func TestPersister_ReadErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	p := NewPersister(failingSlot{err: boom}, nil)

	_, err := p.Load(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = p.IsEmpty(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestPersister_WriteErrorPropagates(t *testing.T) {
	boom := errors.New("quota exceeded")
	p := NewPersister(failingSlot{err: boom}, nil)

	err := p.Save(context.Background(), []models.Task{{ID: "1", Title: "A"}})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to persist 1 tasks")
}
