package app

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tack/internal/config"
	"github.com/thenoetrevino/tack/internal/logging"
	taskservice "github.com/thenoetrevino/tack/internal/services/task"
)

const seedBody = `[
	{"userId":1,"id":1,"title":"delectus aut autem","completed":false},
	{"userId":1,"id":2,"title":"quis ut nam facilis","completed":true},
	{"userId":1,"id":3,"title":"fugiat veniam minus","completed":false}
]`

// seedServer serves body and counts requests
func seedServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testConfig(t *testing.T, seedURL string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "tack.db")
	cfg.Seed.URL = seedURL
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestNew(t *testing.T) {
	a := newTestApp(t, testConfig(t, ""))

	assert.NotNil(t, a.TaskService)
	assert.NotNil(t, a.Store())
	assert.Equal(t, 0, a.Store().Len())
}

func TestNew_UnknownDriver(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.Storage.Driver = "etcd"

	_, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestChangesPersistAcrossRestart(t *testing.T) {
	cfg := testConfig(t, "")
	ctx := context.Background()

	first, err := New(ctx, cfg, WithLogger(logging.Discard()))
	require.NoError(t, err)
	created, err := first.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{Title: "Buy milk", Description: "2L"})
	require.NoError(t, err)
	_, err = first.TaskService.ToggleTask(ctx, created.ID)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second := newTestApp(t, cfg)
	tasks := second.TaskService.ListTasks(ctx)
	require.Len(t, tasks, 1)
	assert.Equal(t, created.ID, tasks[0].ID)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.True(t, tasks[0].Completed)
}

func TestRedisDriver(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t, "")
	cfg.Storage.Driver = config.DriverRedis
	cfg.Storage.RedisAddr = mr.Addr()
	ctx := context.Background()

	a := newTestApp(t, cfg)
	_, err := a.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{Title: "In redis"})
	require.NoError(t, err)

	stored, err := mr.Get("tack:tasks")
	require.NoError(t, err)
	assert.Contains(t, stored, `"title":"In redis"`)
}

func TestRedisDriver_Unreachable(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.Storage.Driver = config.DriverRedis
	cfg.Storage.RedisAddr = "127.0.0.1:1"

	_, err := New(context.Background(), cfg, WithLogger(logging.Discard()))
	assert.ErrorContains(t, err, "failed to connect to redis")
}

func TestSeedOnce_PopulatesEmptyStore(t *testing.T) {
	srv, hits := seedServer(t, http.StatusOK, seedBody)
	cfg := testConfig(t, srv.URL)
	ctx := context.Background()

	a := newTestApp(t, cfg)
	assert.Equal(t, 3, a.SeedOnce(ctx))

	tasks := a.TaskService.ListTasks(ctx)
	require.Len(t, tasks, 3)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "", tasks[0].Description)
	assert.True(t, tasks[1].Completed)

	// Exactly once per app
	assert.Equal(t, 0, a.SeedOnce(ctx))
	assert.Equal(t, int32(1), hits.Load())

	// Persisted: a restart does not fetch again
	require.NoError(t, a.Close())
	again := newTestApp(t, cfg)
	assert.Len(t, again.TaskService.ListTasks(ctx), 3)
	assert.Equal(t, 0, again.SeedOnce(ctx))
	assert.Equal(t, int32(1), hits.Load())
}

func TestInjectedLoggerReceivesSeedLogs(t *testing.T) {
	srv, _ := seedServer(t, http.StatusOK, seedBody)
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a, err := New(context.Background(), testConfig(t, srv.URL), WithLogger(logger))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, 3, a.SeedOnce(context.Background()))
	assert.Contains(t, logs.String(), "Fetched seed tasks")
	assert.Contains(t, logs.String(), "Seeded task list")
}

func TestSeedOnce_FailureLeavesEmpty(t *testing.T) {
	srv, _ := seedServer(t, http.StatusInternalServerError, "boom")
	a := newTestApp(t, testConfig(t, srv.URL))

	assert.Equal(t, 0, a.SeedOnce(context.Background()))
	assert.Empty(t, a.TaskService.ListTasks(context.Background()))
}

func TestSeedOnce_NoURL(t *testing.T) {
	a := newTestApp(t, testConfig(t, ""))
	assert.Equal(t, 0, a.SeedOnce(context.Background()))
}

func TestApplySeed_IgnoredWhenTasksExist(t *testing.T) {
	srv, _ := seedServer(t, http.StatusOK, seedBody)
	a := newTestApp(t, testConfig(t, srv.URL))
	ctx := context.Background()

	seeded, err := a.FetchSeed(ctx)
	require.NoError(t, err)
	require.Len(t, seeded, 3)

	// User adds a task while the fetch was in flight
	_, err = a.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{Title: "Mine"})
	require.NoError(t, err)

	applied, err := a.ApplySeed(seeded)
	require.NoError(t, err)
	assert.False(t, applied)

	tasks := a.TaskService.ListTasks(ctx)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Mine", tasks[0].Title)
}

func TestApplySeed_IgnoredAfterClose(t *testing.T) {
	srv, _ := seedServer(t, http.StatusOK, seedBody)
	a := newTestApp(t, testConfig(t, srv.URL))

	seeded, err := a.FetchSeed(context.Background())
	require.NoError(t, err)
	require.NoError(t, a.Close())

	applied, err := a.ApplySeed(seeded)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 0, a.Store().Len())

	_, err = a.FetchSeed(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClose_Idempotent(t *testing.T) {
	a := newTestApp(t, testConfig(t, ""))
	require.NoError(t, a.Close())
	assert.NoError(t, a.Close())
}
