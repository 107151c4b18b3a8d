package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/tack/internal/config/colors"
	"github.com/thenoetrevino/tack/internal/models"
	"gopkg.in/yaml.v3"
)

// Storage drivers
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// ColorScheme is the configurable set of theme colors
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
	Seed        SeedConfig    `yaml:"seed"`
	Storage     StorageConfig `yaml:"storage"`
}

// SeedConfig configures the one-time seed import
type SeedConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
	Limit   int           `yaml:"limit"`
}

// StorageConfig selects and configures the persistence slot
type StorageConfig struct {
	Driver      string `yaml:"driver"`
	Slot        string `yaml:"slot"`
	Path        string `yaml:"path"` // sqlite file, empty means ~/.tack/tack.db
	RedisAddr   string `yaml:"redis_addr"`
	RedisPrefix string `yaml:"redis_prefix"`
}

// loadThemeFile loads and merges theme from TACK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TACK_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with environment variables.
// The seed URL is normally provided this way.
func applyEnv(config *Config) {
	if v := os.Getenv("TACK_SEED_URL"); v != "" {
		config.Seed.URL = v
	}
	if v := os.Getenv("TACK_STORAGE_DRIVER"); v != "" {
		config.Storage.Driver = v
	}
	if v := os.Getenv("TACK_DB_PATH"); v != "" {
		config.Storage.Path = v
	}
	if v := os.Getenv("TACK_REDIS_ADDR"); v != "" {
		config.Storage.RedisAddr = v
	}
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	var config Config

	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, err
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(&config)
	applyEnv(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tack", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tack", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	c.Seed.applyDefaults()
	c.Storage.applyDefaults()
}

func (s *SeedConfig) applyDefaults() {
	if s.Timeout <= 0 {
		s.Timeout = 10 * time.Second
	}
	if s.Limit <= 0 {
		s.Limit = models.DefaultSeedLimit
	}
}

func (s *StorageConfig) applyDefaults() {
	if s.Driver == "" {
		s.Driver = DriverSQLite
	}
	if s.Slot == "" {
		s.Slot = models.DefaultSlotName
	}
	if s.RedisAddr == "" {
		s.RedisAddr = "localhost:6379"
	}
	if s.RedisPrefix == "" {
		s.RedisPrefix = "tack:"
	}
}
