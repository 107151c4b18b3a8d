package testutil

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/thenoetrevino/tack/internal/app"
	"github.com/thenoetrevino/tack/internal/config"
	"github.com/thenoetrevino/tack/internal/logging"
	"github.com/thenoetrevino/tack/internal/models"
)

// TestConfig returns the default config with storage in a temp directory
func TestConfig(t *testing.T, seedURL string) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "tack.db")
	cfg.Seed.URL = seedURL
	return cfg
}

// NewTestApp creates an app over a temporary SQLite file, preloaded with
// tasks. The app is closed when the test ends.
func NewTestApp(t *testing.T, seedURL string, tasks ...models.Task) *app.App {
	t.Helper()
	return NewTestAppWithConfig(t, TestConfig(t, seedURL), tasks...)
}

// NewTestAppWithConfig is NewTestApp for a caller-built config
func NewTestAppWithConfig(t *testing.T, cfg *config.Config, tasks ...models.Task) *app.App {
	t.Helper()

	a, err := app.New(context.Background(), cfg, app.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	if len(tasks) > 0 {
		if err := a.TaskService.ReplaceTasks(context.Background(), tasks); err != nil {
			t.Fatalf("Failed to preload tasks: %v", err)
		}
	}
	return a
}

// Tasks builds open tasks with ids "1".."n" from titles
func Tasks(titles ...string) []models.Task {
	tasks := make([]models.Task, 0, len(titles))
	for i, title := range titles {
		tasks = append(tasks, models.Task{
			ID:    strconv.Itoa(i + 1),
			Title: title,
		})
	}
	return tasks
}
