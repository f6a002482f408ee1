// Package config loads algotrace settings from YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("config: invalid")

// Cache backends.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

// Config is the root of the settings file.
type Config struct {
	Server   Server   `yaml:"server" json:"server"`
	Cache    Cache    `yaml:"cache" json:"cache"`
	Log      Log      `yaml:"log" json:"log"`
	Playback Playback `yaml:"playback" json:"playback"`
	Limits   Limits   `yaml:"limits" json:"limits"`
}

// Server configures the HTTP API.
type Server struct {
	Addr           string   `yaml:"addr" json:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
	ReadTimeout    Duration `yaml:"read_timeout" json:"read_timeout"`
	WriteTimeout   Duration `yaml:"write_timeout" json:"write_timeout"`
}

// Cache configures where finished traces are memoized.
type Cache struct {
	Backend       string   `yaml:"backend" json:"backend"`
	Capacity      int      `yaml:"capacity" json:"capacity"`
	RedisAddr     string   `yaml:"redis_addr" json:"redis_addr"`
	RedisPassword string   `yaml:"redis_password" json:"redis_password"`
	RedisDB       int      `yaml:"redis_db" json:"redis_db"`
	TTL           Duration `yaml:"ttl" json:"ttl"`
	Prefix        string   `yaml:"prefix" json:"prefix"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Playback configures the terminal player and random inputs.
type Playback struct {
	Interval     Duration `yaml:"interval" json:"interval"`
	RandomPoints int      `yaml:"random_points" json:"random_points"`
}

// Limits bounds request sizes accepted over HTTP.
type Limits struct {
	MaxDigits int `yaml:"max_digits" json:"max_digits"`
	MaxPoints int `yaml:"max_points" json:"max_points"`
	// MaxUploadBytes caps multipart bodies.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" json:"max_upload_bytes"`
}

// Default returns the settings the visualizer ships with.
func Default() Config {
	return Config{
		Server: Server{
			Addr:           ":8000",
			AllowedOrigins: []string{"http://localhost:3000"},
			ReadTimeout:    Duration(10 * time.Second),
			WriteTimeout:   Duration(30 * time.Second),
		},
		Cache: Cache{
			Backend:   CacheMemory,
			Capacity:  256,
			RedisAddr: "localhost:6379",
			TTL:       Duration(10 * time.Minute),
			Prefix:    "algotrace:trace:",
		},
		Log: Log{Level: "info", Format: "text"},
		Playback: Playback{
			Interval:     Duration(100 * time.Millisecond),
			RandomPoints: 13,
		},
		Limits: Limits{
			MaxDigits:      2000,
			MaxPoints:      2000,
			MaxUploadBytes: 1 << 20,
		},
	}
}

// Load reads path over Default() and validates the result.
// ".json" files are decoded as JSON, anything else as YAML.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	case c.Limits.MaxDigits < 1:
		return fmt.Errorf("%w: limits.max_digits must be positive", ErrInvalid)
	case c.Limits.MaxPoints < 2:
		return fmt.Errorf("%w: limits.max_points must be at least 2", ErrInvalid)
	case c.Limits.MaxUploadBytes < 1:
		return fmt.Errorf("%w: limits.max_upload_bytes must be positive", ErrInvalid)
	case c.Playback.Interval <= 0:
		return fmt.Errorf("%w: playback.interval must be positive", ErrInvalid)
	case c.Playback.RandomPoints < 2:
		return fmt.Errorf("%w: playback.random_points must be at least 2", ErrInvalid)
	case c.Cache.TTL < 0:
		return fmt.Errorf("%w: cache.ttl is negative", ErrInvalid)
	}

	switch c.Cache.Backend {
	case CacheMemory:
		if c.Cache.Capacity < 1 {
			return fmt.Errorf("%w: cache.capacity must be positive", ErrInvalid)
		}
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("%w: cache.redis_addr is empty", ErrInvalid)
		}
	case CacheNone:
	default:
		return fmt.Errorf("%w: unknown cache.backend %q", ErrInvalid, c.Cache.Backend)
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}
