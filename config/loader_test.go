package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advisor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultRateLimit, cfg.RateLimit.Capacity)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, DefaultHistoryCapacity, cfg.History.Capacity)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "marcus_chen", cfg.Advisor.Persona)
	assert.Equal(t, 65, cfg.Advisor.RetirementAge)
	assert.Equal(t, 7.0, cfg.Advisor.ExpectedReturn)
	assert.Equal(t, 2.5, cfg.Advisor.InflationRate)
	assert.Equal(t, 12, cfg.Advisor.CompoundsPerYear)
	assert.Empty(t, cfg.Advisor.TablesPath)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
  read_timeout: 5s
rate_limit:
  capacity: 20
cache:
  driver: Redis
  redis_addr: "cache:6379"
  ttl: 1h
log:
  format: console
advisor:
  persona: coach_mike
  retirement_age: 67
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, 20, cfg.RateLimit.Capacity)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "coach_mike", cfg.Advisor.Persona)
	assert.Equal(t, 67, cfg.Advisor.RetirementAge)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ADVISOR_SERVER_ADDR", ":7070")
	t.Setenv("ADVISOR_ADVISOR_EXPECTED_RETURN", "6.5")
	t.Setenv("ADVISOR_CACHE_DRIVER", "none")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 6.5, cfg.Advisor.ExpectedReturn)
	assert.Equal(t, "none", cfg.Cache.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "cache:\n  driver: memcached\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.driver")
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty addr":         func(c *Config) { c.Server.Addr = "" },
		"zero timeout":       func(c *Config) { c.Server.ReadTimeout = 0 },
		"zero shutdown":      func(c *Config) { c.Server.ShutdownTimeout = 0 },
		"zero capacity":      func(c *Config) { c.RateLimit.Capacity = 0 },
		"zero window":        func(c *Config) { c.RateLimit.Window = 0 },
		"redis without addr": func(c *Config) { c.Cache.Driver = "redis"; c.Cache.RedisAddr = "" },
		"negative ttl":       func(c *Config) { c.Cache.TTL = -time.Second },
		"zero history":       func(c *Config) { c.History.Capacity = 0 },
		"bad level":          func(c *Config) { c.Log.Level = "trace" },
		"bad format":         func(c *Config) { c.Log.Format = "xml" },
		"retirement age":     func(c *Config) { c.Advisor.RetirementAge = 0 },
		"compounding":        func(c *Config) { c.Advisor.CompoundsPerYear = 0 },
		"return below -100":  func(c *Config) { c.Advisor.ExpectedReturn = -150 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
