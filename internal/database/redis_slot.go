package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores a slot as a plain string key in Redis
type RedisSlot struct {
	client *redis.Client
	key    string
}

// NewRedisSlot creates a slot stored under prefix+name
func NewRedisSlot(client *redis.Client, prefix, name string) *RedisSlot {
	return &RedisSlot{client: client, key: prefix + name}
}

// Name returns the full Redis key
func (s *RedisSlot) Name() string {
	return s.key
}

// Load reads the slot value
func (s *RedisSlot) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %q: %w", s.key, err)
	}
	return data, true, nil
}

// Save overwrites the slot value with no expiry
func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write slot %q: %w", s.key, err)
	}
	return nil
}

// Clear deletes the key
func (s *RedisSlot) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to clear slot %q: %w", s.key, err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisSlot) Close() error {
	return s.client.Close()
}
