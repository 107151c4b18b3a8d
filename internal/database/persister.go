package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tack/internal/models"
)

// Persister reads and writes the whole task list through a Slot
type Persister struct {
	slot   Slot
	logger *slog.Logger
}

// NewPersister creates a persister over slot. A nil logger uses slog's default.
func NewPersister(slot Slot, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{slot: slot, logger: logger}
}

// Load hydrates the list from the slot.
// An absent slot yields an empty list. Malformed content is logged and also
// yields an empty list; only read failures are returned as errors.
func (p *Persister) Load(ctx context.Context) ([]models.Task, error) {
	data, ok, err := p.slot.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Task{}, nil
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		p.logger.Warn("Ignoring malformed task slot", "slot", p.slot.Name(), "error", err)
		return []models.Task{}, nil
	}
	return tasks, nil
}

// IsEmpty reports whether the slot is absent or holds zero tasks.
// Malformed content counts as empty.
func (p *Persister) IsEmpty(ctx context.Context) (bool, error) {
	tasks, err := p.Load(ctx)
	if err != nil {
		return false, err
	}
	return len(tasks) == 0, nil
}

// Save serializes the full list and overwrites the slot
func (p *Persister) Save(ctx context.Context, tasks []models.Task) error {
	data, err := EncodeTasks(tasks)
	if err != nil {
		return err
	}
	if err := p.slot.Save(ctx, data); err != nil {
		return fmt.Errorf("failed to persist %d tasks: %w", len(tasks), err)
	}
	return nil
}

// Close closes the underlying slot
func (p *Persister) Close() error {
	if p.slot == nil {
		return nil
	}
	return p.slot.Close()
}
