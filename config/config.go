// Package config loads advisor settings from an optional YAML file,
// ADVISOR_* environment variables and built-in defaults.
package config

import (
	"fmt"
	"time"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	History   HistoryConfig   `mapstructure:"history"`
	Log       LogConfig       `mapstructure:"log"`
	Advisor   AdvisorConfig   `mapstructure:"advisor"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RateLimitConfig sizes the per-client token bucket: Capacity requests per
// Window.
type RateLimitConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Window   time.Duration `mapstructure:"window"`
}

type CacheConfig struct {
	Driver    string        `mapstructure:"driver"` // memory, redis or none
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

type HistoryConfig struct {
	Capacity int `mapstructure:"capacity"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AdvisorConfig holds the assumptions the tools fill in for the caller.
type AdvisorConfig struct {
	Persona          string  `mapstructure:"persona"`
	TablesPath       string  `mapstructure:"tables_path"`
	RetirementAge    int     `mapstructure:"retirement_age"`
	ExpectedReturn   float64 `mapstructure:"expected_return"`
	InflationRate    float64 `mapstructure:"inflation_rate"`
	CompoundsPerYear int     `mapstructure:"compounds_per_year"`
}

// Validate checks the loaded configuration for values the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return fmt.Errorf("config: server timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: server.shutdown_timeout must be positive")
	}

	if c.RateLimit.Capacity < 1 {
		return fmt.Errorf("config: rate_limit.capacity must be >= 1, got %d", c.RateLimit.Capacity)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("config: rate_limit.window must be positive")
	}

	switch c.Cache.Driver {
	case "memory", "none":
	case "redis":
		if c.Cache.RedisAddr == "" {
			return fmt.Errorf("config: cache.redis_addr is required when cache.driver is redis")
		}
	default:
		return fmt.Errorf("config: cache.driver %q is invalid; expected memory|redis|none", c.Cache.Driver)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("config: cache.ttl cannot be negative")
	}

	if c.History.Capacity < 1 {
		return fmt.Errorf("config: history.capacity must be >= 1, got %d", c.History.Capacity)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	if c.Advisor.RetirementAge < 1 || c.Advisor.RetirementAge > 150 {
		return fmt.Errorf("config: advisor.retirement_age %d is out of range", c.Advisor.RetirementAge)
	}
	if c.Advisor.CompoundsPerYear < 1 {
		return fmt.Errorf("config: advisor.compounds_per_year must be >= 1")
	}
	if c.Advisor.ExpectedReturn < -100 || c.Advisor.InflationRate < -100 {
		return fmt.Errorf("config: advisor rates cannot be below -100%%")
	}
	return nil
}
