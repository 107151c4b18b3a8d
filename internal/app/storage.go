package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/thenoetrevino/tack/internal/config"
	"github.com/thenoetrevino/tack/internal/database"
)

// OpenSlot opens the persistence slot selected by cfg.Driver
func OpenSlot(ctx context.Context, cfg config.StorageConfig) (database.Slot, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		path := cfg.Path
		if path == "" {
			var err error
			path, err = database.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		db, err := database.InitDB(ctx, path)
		if err != nil {
			return nil, err
		}
		return database.NewSQLiteSlot(db, cfg.Slot), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return database.NewRedisSlot(client, cfg.RedisPrefix, cfg.Slot), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
