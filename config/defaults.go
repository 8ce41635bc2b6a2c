package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAddr             = ":8080"
	DefaultReadTimeout      = 15 * time.Second
	DefaultWriteTimeout     = 15 * time.Second
	DefaultIdleTimeout      = 60 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultRateLimit        = 5
	DefaultRateLimitWindow  = time.Minute
	DefaultCacheDriver      = "memory"
	DefaultCacheTTL         = 24 * time.Hour
	DefaultHistoryCapacity  = 100
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultPersona          = "marcus_chen"
	DefaultRetirementAge    = 65
	DefaultExpectedReturn   = 7.0
	DefaultInflationRate    = 2.5
	DefaultCompoundsPerYear = 12
)

// setDefaults registers every key with viper. Keys without a default are
// invisible to AutomaticEnv during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("server.read_timeout", DefaultReadTimeout)
	v.SetDefault("server.write_timeout", DefaultWriteTimeout)
	v.SetDefault("server.idle_timeout", DefaultIdleTimeout)
	v.SetDefault("server.shutdown_timeout", DefaultShutdownTimeout)

	v.SetDefault("rate_limit.capacity", DefaultRateLimit)
	v.SetDefault("rate_limit.window", DefaultRateLimitWindow)

	v.SetDefault("cache.driver", DefaultCacheDriver)
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.ttl", DefaultCacheTTL)

	v.SetDefault("history.capacity", DefaultHistoryCapacity)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetDefault("advisor.persona", DefaultPersona)
	v.SetDefault("advisor.tables_path", "")
	v.SetDefault("advisor.retirement_age", DefaultRetirementAge)
	v.SetDefault("advisor.expected_return", DefaultExpectedReturn)
	v.SetDefault("advisor.inflation_rate", DefaultInflationRate)
	v.SetDefault("advisor.compounds_per_year", DefaultCompoundsPerYear)
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	cfg, err := unmarshalAndValidate(newViper())
	if err != nil {
		panic(err)
	}
	return cfg
}
