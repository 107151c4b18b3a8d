package database

import "context"

// Slot is a single named location in a key-value store.
// Save overwrites the previous contents in full.
type Slot interface {
	// Name returns the slot key
	Name() string
	// Load returns the stored bytes; ok is false when the slot is absent
	Load(ctx context.Context) (data []byte, ok bool, err error)
	// Save overwrites the slot with data
	Save(ctx context.Context, data []byte) error
	// Clear removes the slot
	Clear(ctx context.Context) error
	// Close releases the underlying connection
	Close() error
}
