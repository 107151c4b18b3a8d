package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/tack/internal/config"
	"github.com/thenoetrevino/tack/internal/database"
	"github.com/thenoetrevino/tack/internal/models"
	"github.com/thenoetrevino/tack/internal/seed"
	taskservice "github.com/thenoetrevino/tack/internal/services/task"
	"github.com/thenoetrevino/tack/internal/store"
)

// saveTimeout bounds a single slot write triggered by a store change
const saveTimeout = 5 * time.Second

// ErrClosed is returned by operations attempted after Close
var ErrClosed = errors.New("app is closed")

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	persister *database.Persister
	store     *store.Store
	importer  *seed.Importer
	logger    *slog.Logger
	config    *config.Config

	seedStarted atomic.Bool
	closed      atomic.Bool

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New opens the configured slot, hydrates the store from it and wires
// persistence so every effective change is written back.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	slot := options.slot
	if slot == nil {
		var err error
		slot, err = OpenSlot(ctx, cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
	}

	persister := database.NewPersister(slot, logger)
	initial, err := persister.Load(ctx)
	if err != nil {
		_ = persister.Close()
		return nil, fmt.Errorf("failed to hydrate tasks: %w", err)
	}
	logger.Debug("Hydrated task list", "slot", slot.Name(), "count", len(initial))

	a := &App{
		persister: persister,
		logger:    logger,
		config:    cfg,
		importer: seed.NewImporter(persister, seed.Options{
			URL:     cfg.Seed.URL,
			Limit:   cfg.Seed.Limit,
			Timeout: cfg.Seed.Timeout,
			Client:  options.httpClient,
			Logger:  logger,
		}),
	}
	a.store = store.New(initial, store.WithChangeListener(a.persist))
	a.TaskService = taskservice.NewService(a.store)

	return a, nil
}

// persist writes the full list to the slot; it is the store change listener
func (a *App) persist(tasks []models.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := a.persister.Save(ctx, tasks); err != nil {
		a.logger.Error("Failed to persist tasks", "error", err)
		return err
	}
	a.logger.Debug("Persisted tasks", "count", len(tasks))
	return nil
}

// Config returns the configuration the app was built from
func (a *App) Config() *config.Config {
	return a.config
}

// Store returns the state store
func (a *App) Store() *store.Store {
	return a.store
}

// SeedURL returns the configured seed endpoint, empty when seeding is off
func (a *App) SeedURL() string {
	return a.importer.URL()
}

// FetchSeed runs the seed import at most once per App. Later calls return
// nil. A nil slice with a nil error also means storage was not empty or no
// endpoint is configured.
func (a *App) FetchSeed(ctx context.Context) ([]models.Task, error) {
	if a.closed.Load() {
		return nil, ErrClosed
	}
	if !a.seedStarted.CompareAndSwap(false, true) {
		return nil, nil
	}
	return a.importer.Import(ctx)
}

// ApplySeed replaces the list with seeded tasks. It reports false without
// changing anything when the app is closed, the seed is empty, or the list
// already has tasks (e.g. the user added some while the fetch was running).
func (a *App) ApplySeed(tasks []models.Task) (bool, error) {
	if a.closed.Load() || len(tasks) == 0 || a.store.Len() > 0 {
		return false, nil
	}
	if err := a.TaskService.ReplaceTasks(context.Background(), tasks); err != nil {
		return true, err
	}
	a.logger.Info("Seeded task list", "count", len(tasks))
	return true, nil
}

// SeedOnce fetches and applies the seed synchronously. Failures are logged
// and swallowed; the number of tasks applied is returned.
func (a *App) SeedOnce(ctx context.Context) int {
	tasks, err := a.FetchSeed(ctx)
	if err != nil {
		a.logger.Warn("Seed import failed", "url", a.SeedURL(), "error", err)
		return 0
	}
	applied, err := a.ApplySeed(tasks)
	if err != nil {
		a.logger.Warn("Seed tasks could not be persisted", "error", err)
	}
	if !applied {
		return 0
	}
	return len(tasks)
}

// Close releases the storage connection. Seed results arriving afterwards
// are discarded.
func (a *App) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return nil
	}
	return a.persister.Close()
}
