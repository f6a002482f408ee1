package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/algotrace/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 100*time.Millisecond, cfg.Playback.Interval.Std())
	assert.Equal(t, 13, cfg.Playback.RandomPoints)
	assert.Equal(t, config.CacheMemory, cfg.Cache.Backend)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "algotrace.yaml", `
server:
  addr: ":9090"
  allowed_origins: ["https://viz.example.org"]
cache:
  backend: redis
  redis_addr: "redis:6379"
  ttl: 30s
playback:
  interval: 250ms
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, []string{"https://viz.example.org"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, config.CacheRedis, cfg.Cache.Backend)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL.Std())
	assert.Equal(t, 250*time.Millisecond, cfg.Playback.Interval.Std())
	// untouched sections keep defaults
	assert.Equal(t, "algotrace:trace:", cfg.Cache.Prefix)
	assert.Equal(t, 13, cfg.Playback.RandomPoints)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "algotrace.json", `{"log": {"level": "debug", "format": "json"}, "limits": {"max_points": 50}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 50, cfg.Limits.MaxPoints)
	assert.Equal(t, 2000, cfg.Limits.MaxDigits)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct{ name, body string }{
		"BadYAML":      {"c.yaml", "server: [unclosed"},
		"BadJSON":      {"c.json", `{"server":`},
		"BadDuration":  {"c.yaml", "playback:\n  interval: soon\n"},
		"MapDuration":  {"c.yaml", "playback:\n  interval: {a: 1}\n"},
		"UnknownCache": {"c.yaml", "cache:\n  backend: memcached\n"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.name, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	mutate := map[string]func(*config.Config){
		"EmptyAddr":    func(c *config.Config) { c.Server.Addr = "" },
		"NoDigits":     func(c *config.Config) { c.Limits.MaxDigits = 0 },
		"OnePoint":     func(c *config.Config) { c.Limits.MaxPoints = 1 },
		"NoUpload":     func(c *config.Config) { c.Limits.MaxUploadBytes = 0 },
		"ZeroInterval": func(c *config.Config) { c.Playback.Interval = 0 },
		"FewRandom":    func(c *config.Config) { c.Playback.RandomPoints = 1 },
		"NegativeTTL":  func(c *config.Config) { c.Cache.TTL = -1 },
		"ZeroCapacity": func(c *config.Config) { c.Cache.Capacity = 0 },
		"RedisNoAddr":  func(c *config.Config) { c.Cache.Backend = config.CacheRedis; c.Cache.RedisAddr = "" },
		"BadLogFormat": func(c *config.Config) { c.Log.Format = "xml" },
		"DiskBackend":  func(c *config.Config) { c.Cache.Backend = "disk" },
	}
	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			fn(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	cfg := config.Default()
	cfg.Cache.Backend = config.CacheNone
	cfg.Cache.Capacity = 0
	assert.NoError(t, cfg.Validate())
}

func TestDuration_Text(t *testing.T) {
	d := config.Duration(1500 * time.Millisecond)
	b, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(b))

	var back config.Duration
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, d, back)
}
