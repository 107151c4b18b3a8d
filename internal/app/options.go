package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/tack/internal/database"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	slot       database.Slot
	httpClient *http.Client
	logger     *slog.Logger
}

// WithSlot uses slot instead of opening one from the storage config
func WithSlot(slot database.Slot) Option {
	return func(cfg *appConfig) {
		cfg.slot = slot
	}
}

// WithHTTPClient sets the client used for the seed fetch
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = client
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
