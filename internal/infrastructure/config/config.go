package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/lumen/internal/theme"
)

// Config holds all launcher configuration. Environment variables are
// the source of truth; an optional TOML file layers theme overrides
// and launcher settings on top.
type Config struct {
	Server    ServerConfig
	Engine    EngineConfig
	Logging   LogConfig
	RateLimit RateLimitConfig

	// File carries settings loadable only from the config file.
	File FileConfig
}

// ServerConfig holds HTTP adapter configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8420"`
	Host string `envconfig:"HOST" default:"127.0.0.1"`
}

// EngineConfig holds query engine configuration.
type EngineConfig struct {
	MaxQueryLen       int    `envconfig:"MAX_QUERY_LEN" default:"1024"`
	MaxResults        int    `envconfig:"MAX_RESULTS" default:"8"`
	ClipboardCapacity int    `envconfig:"CLIPBOARD_CAPACITY" default:"50"`
	StateDir          string `envconfig:"STATE_DIR" default:""`
	ConfigFile        string `envconfig:"CONFIG_FILE" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// FileConfig is the optional TOML config file layout.
type FileConfig struct {
	// ExtraAppDirs are scanned for .desktop files in addition to the
	// XDG defaults.
	ExtraAppDirs []string `toml:"extra_app_dirs"`

	// Themes replace or extend the built-in theme set.
	Themes []theme.Theme `toml:"themes"`
}

// Load reads configuration from environment variables and, when
// CONFIG_FILE names one, the TOML config file.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Engine.ConfigFile != "" {
		file, err := loadFile(cfg.Engine.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg.File = file
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns
// defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8420",
			Host: "127.0.0.1",
		},
		Engine: EngineConfig{
			MaxQueryLen:       1024,
			MaxResults:        8,
			ClipboardCapacity: 50,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}

func loadFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}
	var file FileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return file, nil
}
