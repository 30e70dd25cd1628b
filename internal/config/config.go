package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the simulator
type Config struct {
	Redis RedisConfig
	Sim   SimConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: empty means in-memory definitions
}

// SimConfig holds simulation knobs
type SimConfig struct {
	RegenInterval time.Duration // ticking modifier pulse interval
	RegenDuration time.Duration // ticking modifier lifetime
	BuffDuration  time.Duration // temp modifier lifetime
	WaitPadding   time.Duration // extra wall time to let timers drain
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Sim: SimConfig{
			RegenInterval: getEnvAsDurationOrDefault("SIM_REGEN_INTERVAL", 200*time.Millisecond),
			RegenDuration: getEnvAsDurationOrDefault("SIM_REGEN_DURATION", 600*time.Millisecond),
			BuffDuration:  getEnvAsDurationOrDefault("SIM_BUFF_DURATION", 400*time.Millisecond),
			WaitPadding:   getEnvAsDurationOrDefault("SIM_WAIT_PADDING", 100*time.Millisecond),
		},
	}

	if cfg.Sim.RegenInterval <= 0 {
		cfg.Sim.RegenInterval = 200 * time.Millisecond
	}

	return cfg, nil
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if ms, err := strconv.Atoi(value); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultValue
}
