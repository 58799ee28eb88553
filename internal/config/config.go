// Package config loads mindweave configuration from an optional TOML file
// with environment variable overrides. Precedence, lowest to highest:
// built-in defaults, config file, environment.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/mindweave/mindweave/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

// Cache backends selectable via [CacheConfig.Backend].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Defaults applied before the file and environment are consulted.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultCacheBackend    = BackendFile
	DefaultMongoDatabase   = "mindweave"
	DefaultMongoCollection = "layouts"
	DefaultLogLevel        = "info"
)

// =============================================================================
// Config
// =============================================================================

// Config is the complete runtime configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig controls the HTTP API server.
type ServerConfig struct {
	Addr string `toml:"addr"`

	// Timeouts in seconds. Write covers the full render of the largest
	// accepted outline, so it is deliberately generous.
	ReadTimeoutSec     int `toml:"read_timeout_sec"`
	WriteTimeoutSec    int `toml:"write_timeout_sec"`
	ShutdownTimeoutSec int `toml:"shutdown_timeout_sec"`
}

// ReadTimeout returns the configured read timeout.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSec) * time.Second
}

// WriteTimeout returns the configured write timeout.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSec) * time.Second
}

// ShutdownTimeout returns the configured graceful shutdown timeout.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSec) * time.Second
}

// CacheConfig selects and parameterizes the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", "none".
	Backend string `toml:"backend"`

	// Namespace prefixes every cache key, isolating deployments that share
	// one Redis or Mongo backend. Empty means no prefix.
	Namespace string `toml:"namespace"`

	// Dir is the file backend's directory. Empty means the XDG default.
	Dir string `toml:"dir"`

	// RedisURL is a redis:// connection URL for the redis backend.
	RedisURL string `toml:"redis_url"`

	// Mongo backend settings.
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// LogConfig controls log output.
type LogConfig struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `toml:"level"`
}

// =============================================================================
// Loading
// =============================================================================

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:               DefaultAddr,
			ReadTimeoutSec:     int(DefaultReadTimeout / time.Second),
			WriteTimeoutSec:    int(DefaultWriteTimeout / time.Second),
			ShutdownTimeoutSec: int(DefaultShutdownTimeout / time.Second),
		},
		Cache: CacheConfig{
			Backend:         DefaultCacheBackend,
			MongoDatabase:   DefaultMongoDatabase,
			MongoCollection: DefaultMongoCollection,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Load builds the configuration from defaults, an optional TOML file, and
// environment overrides. A missing file is not an error; an unreadable or
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays MINDWEAVE_* environment variables.
func applyEnv(cfg *Config) {
	cfg.Server.Addr = envOr("MINDWEAVE_ADDR", cfg.Server.Addr)
	cfg.Server.ReadTimeoutSec = envIntOr("MINDWEAVE_READ_TIMEOUT_SEC", cfg.Server.ReadTimeoutSec)
	cfg.Server.WriteTimeoutSec = envIntOr("MINDWEAVE_WRITE_TIMEOUT_SEC", cfg.Server.WriteTimeoutSec)
	cfg.Server.ShutdownTimeoutSec = envIntOr("MINDWEAVE_SHUTDOWN_TIMEOUT_SEC", cfg.Server.ShutdownTimeoutSec)

	cfg.Cache.Backend = envOr("MINDWEAVE_CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.Namespace = envOr("MINDWEAVE_CACHE_NAMESPACE", cfg.Cache.Namespace)
	cfg.Cache.Dir = envOr("MINDWEAVE_CACHE_DIR", cfg.Cache.Dir)
	cfg.Cache.RedisURL = envOr("MINDWEAVE_REDIS_URL", cfg.Cache.RedisURL)
	cfg.Cache.MongoURI = envOr("MINDWEAVE_MONGO_URI", cfg.Cache.MongoURI)
	cfg.Cache.MongoDatabase = envOr("MINDWEAVE_MONGO_DATABASE", cfg.Cache.MongoDatabase)
	cfg.Cache.MongoCollection = envOr("MINDWEAVE_MONGO_COLLECTION", cfg.Cache.MongoCollection)

	cfg.Log.Level = envOr("MINDWEAVE_LOG_LEVEL", cfg.Log.Level)
}

// Validate checks cross-field consistency.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache backend %q requires redis_url", BackendRedis)
		}
	case BackendMongo:
		if c.Cache.MongoURI == "" {
			return fmt.Errorf("cache backend %q requires mongo_uri", BackendMongo)
		}
	default:
		return fmt.Errorf("unknown cache backend %q (must be file, redis, mongo, or none)", c.Cache.Backend)
	}

	if c.Server.ReadTimeoutSec <= 0 || c.Server.WriteTimeoutSec <= 0 || c.Server.ShutdownTimeoutSec <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	return nil
}

// =============================================================================
// Cache Construction
// =============================================================================

// BuildCache constructs the configured cache backend. Backends that dial a
// remote store use ctx for the initial connection.
func (c Config) BuildCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		return cache.NewRedisCache(ctx, c.Cache.RedisURL)
	case BackendMongo:
		return cache.NewMongoCache(ctx, c.Cache.MongoURI, c.Cache.MongoDatabase, c.Cache.MongoCollection)
	case BackendFile:
		dir := c.Cache.Dir
		if dir == "" {
			var err error
			if dir, err = DefaultCacheDir(); err != nil {
				return cache.NewNullCache(), nil
			}
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
}

// BuildKeyer constructs the cache keyer matching the configured namespace.
func (c Config) BuildKeyer() cache.Keyer {
	if c.Cache.Namespace == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, c.Cache.Namespace+":")
}

// DefaultCacheDir returns the XDG cache directory (~/.cache/mindweave/).
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return cacheHome + "/mindweave", nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home + "/.cache/mindweave", nil
}

// =============================================================================
// Env Helpers
// =============================================================================

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
