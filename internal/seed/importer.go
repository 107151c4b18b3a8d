// Package seed performs the one-time population of an empty task list from a
// remote endpoint.
package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/thenoetrevino/tack/internal/models"
)

// maxBodyBytes caps how much of the upstream response is read
const maxBodyBytes = 4 << 20

// DefaultTimeout bounds the single fetch attempt
const DefaultTimeout = 10 * time.Second

// Emptiness reports whether persisted storage holds no tasks
type Emptiness interface {
	IsEmpty(ctx context.Context) (bool, error)
}

// Options configures an Importer
type Options struct {
	URL     string
	Limit   int
	Timeout time.Duration
	Client  *http.Client
	Logger  *slog.Logger
}

// Importer fetches seed tasks from a configured endpoint.
// It makes exactly one attempt per call and never retries.
type Importer struct {
	url     string
	limit   int
	storage Emptiness
	client  *http.Client
	logger  *slog.Logger
}

// NewImporter creates an importer that checks storage before fetching
func NewImporter(storage Emptiness, opts Options) *Importer {
	limit := opts.Limit
	if limit <= 0 {
		limit = models.DefaultSeedLimit
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Importer{
		url:     opts.URL,
		limit:   limit,
		storage: storage,
		client:  client,
		logger:  logger,
	}
}

// URL returns the configured endpoint
func (i *Importer) URL() string {
	return i.url
}

// Needed reports whether a seed import should run: an endpoint is
// configured and persisted storage is empty.
func (i *Importer) Needed(ctx context.Context) (bool, error) {
	if i.url == "" {
		return false, nil
	}
	empty, err := i.storage.IsEmpty(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check storage: %w", err)
	}
	return empty, nil
}

// Import fetches seed tasks when Needed. A nil slice with a nil error means
// seeding was not needed.
func (i *Importer) Import(ctx context.Context) ([]models.Task, error) {
	needed, err := i.Needed(ctx)
	if err != nil {
		return nil, err
	}
	if !needed {
		i.logger.Debug("Seed import skipped", "url_configured", i.url != "")
		return nil, nil
	}
	return i.Fetch(ctx)
}

// Fetch issues the GET and shapes the first records into tasks
func (i *Importer) Fetch(ctx context.Context) ([]models.Task, error) {
	if i.url == "" {
		return nil, ErrNoEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seed request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			i.logger.Debug("error closing seed response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read seed response: %w", err)
	}

	var records []record
	if err := sonic.ConfigStd.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to parse seed response: %w", err)
	}

	tasks := shape(records, i.limit)
	i.logger.Info("Fetched seed tasks", "url", i.url, "received", len(records), "kept", len(tasks))
	return tasks, nil
}
