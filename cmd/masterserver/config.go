package main

import (
	"fmt"
	"time"

	"masterserver/adapters/myredis"

	"github.com/caarlos0/env/v11"
)

const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

// envConfig mirrors the environment; LoadConfig validates it into MasterServerConfig.
type envConfig struct {
	HTTPPort        int           `env:"SERVICE_PORT_HTTP" envDefault:"4242"`
	Backend         string        `env:"REGISTRY_BACKEND" envDefault:"memory"`
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPrefix     string        `env:"REDIS_PREFIX" envDefault:"gameserver"`
	LivenessWindow  time.Duration `env:"LIVENESS_WINDOW" envDefault:"120s"`
	SweepInterval   time.Duration `env:"SWEEP_INTERVAL" envDefault:"15s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

type MasterServerConfig struct {
	HTTPPort        int
	Backend         string
	Redis           myredis.RedisConfig
	LivenessWindow  time.Duration // 0 disables expiry
	SweepInterval   time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
}

// LoadConfig loads configuration from environment variables.
// REDIS_ADDR is required only with REGISTRY_BACKEND=redis.
func LoadConfig() (*MasterServerConfig, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if raw.HTTPPort <= 0 || raw.HTTPPort > 65535 {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP must be 1-65535, got %d", raw.HTTPPort)
	}

	switch raw.Backend {
	case backendMemory:
	case backendRedis:
		if raw.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required when REGISTRY_BACKEND=%s", backendRedis)
		}
	default:
		return nil, fmt.Errorf("REGISTRY_BACKEND must be %s or %s, got %q", backendMemory, backendRedis, raw.Backend)
	}

	if raw.LivenessWindow < 0 {
		return nil, fmt.Errorf("LIVENESS_WINDOW must not be negative, got %s", raw.LivenessWindow)
	}
	if raw.LivenessWindow > 0 && raw.Backend == backendMemory && raw.SweepInterval <= 0 {
		return nil, fmt.Errorf("SWEEP_INTERVAL must be positive when LIVENESS_WINDOW is set, got %s", raw.SweepInterval)
	}

	for name, d := range map[string]time.Duration{
		"READ_TIMEOUT":     raw.ReadTimeout,
		"WRITE_TIMEOUT":    raw.WriteTimeout,
		"IDLE_TIMEOUT":     raw.IdleTimeout,
		"SHUTDOWN_TIMEOUT": raw.ShutdownTimeout,
	} {
		if d <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	if _, err := levelOption(raw.LogLevel); err != nil {
		return nil, err
	}

	return &MasterServerConfig{
		HTTPPort: raw.HTTPPort,
		Backend:  raw.Backend,
		Redis: myredis.RedisConfig{
			Addr:   raw.RedisAddr,
			Prefix: raw.RedisPrefix,
		},
		LivenessWindow:  raw.LivenessWindow,
		SweepInterval:   raw.SweepInterval,
		ReadTimeout:     raw.ReadTimeout,
		WriteTimeout:    raw.WriteTimeout,
		IdleTimeout:     raw.IdleTimeout,
		ShutdownTimeout: raw.ShutdownTimeout,
		LogLevel:        raw.LogLevel,
	}, nil
}
