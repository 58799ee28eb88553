package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mindweave/mindweave/pkg/cache"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Log.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("missing file should keep defaults, got addr %q", cfg.Server.Addr)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindweave.toml")
	content := `
[server]
addr = ":9090"
write_timeout_sec = 120

[cache]
backend = "none"

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Server.Addr)
	}
	if cfg.Server.WriteTimeout() != 120*time.Second {
		t.Errorf("WriteTimeout = %v, want 120s", cfg.Server.WriteTimeout())
	}
	// Unset file fields keep defaults
	if cfg.Server.ReadTimeoutSec != int(DefaultReadTimeout/time.Second) {
		t.Errorf("ReadTimeoutSec = %d, want default", cfg.Server.ReadTimeoutSec)
	}
	if cfg.Cache.Backend != BackendNone {
		t.Errorf("Backend = %q, want none", cfg.Cache.Backend)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[server\naddr=:80"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MINDWEAVE_ADDR", ":7070")
	t.Setenv("MINDWEAVE_CACHE_BACKEND", "redis")
	t.Setenv("MINDWEAVE_CACHE_NAMESPACE", "staging")
	t.Setenv("MINDWEAVE_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("MINDWEAVE_READ_TIMEOUT_SEC", "30")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("Addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.Cache.Backend != BackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Namespace != "staging" {
		t.Errorf("Namespace = %q, want staging", cfg.Cache.Namespace)
	}
	if cfg.Server.ReadTimeoutSec != 30 {
		t.Errorf("ReadTimeoutSec = %d, want 30", cfg.Server.ReadTimeoutSec)
	}
}

func TestBuildKeyer(t *testing.T) {
	cfg := Default()
	key := cfg.BuildKeyer().LayoutKey("hash", cache.LayoutKeyOpts{Kind: "radial"})
	if !strings.HasPrefix(key, "layout:") {
		t.Errorf("default keyer key = %q, want layout: prefix", key)
	}

	cfg.Cache.Namespace = "staging"
	key = cfg.BuildKeyer().LayoutKey("hash", cache.LayoutKeyOpts{Kind: "radial"})
	if !strings.HasPrefix(key, "staging:layout:") {
		t.Errorf("namespaced key = %q, want staging:layout: prefix", key)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "none backend", mutate: func(c *Config) { c.Cache.Backend = BackendNone }},
		{name: "unknown backend", mutate: func(c *Config) { c.Cache.Backend = "memcached" }, wantErr: true},
		{name: "redis without url", mutate: func(c *Config) { c.Cache.Backend = BackendRedis }, wantErr: true},
		{name: "redis with url", mutate: func(c *Config) {
			c.Cache.Backend = BackendRedis
			c.Cache.RedisURL = "redis://localhost:6379"
		}},
		{name: "mongo without uri", mutate: func(c *Config) { c.Cache.Backend = BackendMongo }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Server.WriteTimeoutSec = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildCacheNone(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = BackendNone

	c, err := cfg.BuildCache(context.Background())
	if err != nil {
		t.Fatalf("BuildCache: %v", err)
	}
	defer c.Close()

	if _, found, _ := c.Get(context.Background(), "anything"); found {
		t.Error("null cache should never hit")
	}
}

func TestBuildCacheFile(t *testing.T) {
	cfg := Default()
	cfg.Cache.Dir = t.TempDir()

	c, err := cfg.BuildCache(context.Background())
	if err != nil {
		t.Fatalf("BuildCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(context.Background(), "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, found, err := c.Get(context.Background(), "k")
	if err != nil || !found || string(data) != "v" {
		t.Errorf("Get = %q, %v, %v", data, found, err)
	}
}
