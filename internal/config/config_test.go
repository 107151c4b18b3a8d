package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points config lookups at an empty temp dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	for _, key := range []string{"TACK_SEED_URL", "TACK_STORAGE_DRIVER", "TACK_DB_PATH", "TACK_REDIS_ADDR", "TACK_THEME_FILE"} {
		t.Setenv(key, "")
	}
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "tack")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.ToggleTask != "x" {
		t.Errorf("Default ToggleTask key = %s, want x", defaults.ToggleTask)
	}
	if defaults.ViewTask != "space" {
		t.Errorf("Default ViewTask key = %q, want space", defaults.ViewTask)
	}
	if defaults.Search != "/" {
		t.Errorf("Default Search key = %s, want /", defaults.Search)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Seed.URL != "" {
		t.Errorf("Seed URL = %q, want empty", cfg.Seed.URL)
	}
	if cfg.Seed.Limit != 10 {
		t.Errorf("Seed limit = %d, want 10", cfg.Seed.Limit)
	}
	if cfg.Seed.Timeout != 10*time.Second {
		t.Errorf("Seed timeout = %v, want 10s", cfg.Seed.Timeout)
	}
	if cfg.Storage.Driver != DriverSQLite {
		t.Errorf("Storage driver = %s, want sqlite", cfg.Storage.Driver)
	}
	if cfg.Storage.Slot != "tasks" {
		t.Errorf("Storage slot = %s, want tasks", cfg.Storage.Slot)
	}
	if cfg.Storage.RedisPrefix != "tack:" {
		t.Errorf("Redis prefix = %s, want tack:", cfg.Storage.RedisPrefix)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `key_mappings:
  quit: "Q"
  add_task: "n"
  view_task: "v"
seed:
  url: "http://example.test/todos"
  timeout: 3s
  limit: 5
storage:
  driver: redis
  slot: inbox
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "Q" {
		t.Errorf("Loaded Quit key = %s, want Q", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "n" {
		t.Errorf("Loaded AddTask key = %s, want n", cfg.KeyMappings.AddTask)
	}
	if cfg.KeyMappings.ViewTask != "v" {
		t.Errorf("Loaded ViewTask key = %s, want v", cfg.KeyMappings.ViewTask)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditTask != "e" {
		t.Errorf("Loaded EditTask key = %s, want e (default)", cfg.KeyMappings.EditTask)
	}

	if cfg.Seed.URL != "http://example.test/todos" {
		t.Errorf("Seed URL = %s", cfg.Seed.URL)
	}
	if cfg.Seed.Timeout != 3*time.Second {
		t.Errorf("Seed timeout = %v, want 3s", cfg.Seed.Timeout)
	}
	if cfg.Seed.Limit != 5 {
		t.Errorf("Seed limit = %d, want 5", cfg.Seed.Limit)
	}
	if cfg.Storage.Driver != DriverRedis {
		t.Errorf("Storage driver = %s, want redis", cfg.Storage.Driver)
	}
	if cfg.Storage.Slot != "inbox" {
		t.Errorf("Storage slot = %s, want inbox", cfg.Storage.Slot)
	}
	if cfg.Storage.RedisAddr != "localhost:6379" {
		t.Errorf("Redis addr = %s, want default", cfg.Storage.RedisAddr)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "key_mappings: [unclosed")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with invalid yaml should fail")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `seed:
  url: "http://from-file.test"
storage:
  driver: sqlite
`)
	t.Setenv("TACK_SEED_URL", "http://from-env.test")
	t.Setenv("TACK_STORAGE_DRIVER", "redis")
	t.Setenv("TACK_REDIS_ADDR", "10.0.0.1:6380")
	t.Setenv("TACK_DB_PATH", "/tmp/tack-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Seed.URL != "http://from-env.test" {
		t.Errorf("Seed URL = %s, want env value", cfg.Seed.URL)
	}
	if cfg.Storage.Driver != DriverRedis {
		t.Errorf("Storage driver = %s, want redis", cfg.Storage.Driver)
	}
	if cfg.Storage.RedisAddr != "10.0.0.1:6380" {
		t.Errorf("Redis addr = %s, want env value", cfg.Storage.RedisAddr)
	}
	if cfg.Storage.Path != "/tmp/tack-test.db" {
		t.Errorf("DB path = %s, want env value", cfg.Storage.Path)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := isolate(t)

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:     "Q",
			AddTask:  "n",
			ViewTask: "v",
		},
		Seed: SeedConfig{URL: "http://example.test", Timeout: 2 * time.Second},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "tack", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "Q" {
		t.Errorf("Reloaded Quit key = %s, want Q", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.AddTask != "n" {
		t.Errorf("Reloaded AddTask key = %s, want n", cfg2.KeyMappings.AddTask)
	}
	if cfg2.Seed.URL != "http://example.test" {
		t.Errorf("Reloaded seed URL = %s", cfg2.Seed.URL)
	}
	if cfg2.Seed.Timeout != 2*time.Second {
		t.Errorf("Reloaded seed timeout = %v, want 2s", cfg2.Seed.Timeout)
	}
}

func TestPathFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	if want := filepath.Join(home, ".config", "tack", "config.yaml"); path != want {
		t.Errorf("Path() = %s, want %s", path, want)
	}
}
