package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteSlot stores a slot as one row of the kv table
type SQLiteSlot struct {
	db  *sql.DB
	key string
}

// NewSQLiteSlot creates a slot named key backed by db.
// The kv table must already exist (see InitDB).
func NewSQLiteSlot(db *sql.DB, key string) *SQLiteSlot {
	return &SQLiteSlot{db: db, key: key}
}

// Name returns the slot key
func (s *SQLiteSlot) Name() string {
	return s.key
}

// Load reads the slot value
func (s *SQLiteSlot) Load(ctx context.Context) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %q: %w", s.key, err)
	}
	return []byte(value), true, nil
}

// Save upserts the slot value
func (s *SQLiteSlot) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = CURRENT_TIMESTAMP`,
		s.key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", s.key, err)
	}
	return nil
}

// Clear deletes the slot row
func (s *SQLiteSlot) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", s.key); err != nil {
		return fmt.Errorf("failed to clear slot %q: %w", s.key, err)
	}
	return nil
}

// Close closes the database handle
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
