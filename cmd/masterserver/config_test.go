package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 4242, cfg.HTTPPort)
	assert.Equal(t, backendMemory, cfg.Backend)
	assert.Equal(t, "gameserver", cfg.Redis.Prefix)
	assert.Equal(t, 120*time.Second, cfg.LivenessWindow)
	assert.Equal(t, 15*time.Second, cfg.SweepInterval)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Ok(t *testing.T) {
	t.Setenv("SERVICE_PORT_HTTP", "27900")
	t.Setenv("REGISTRY_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis://localhost:6379")
	t.Setenv("REDIS_PREFIX", "quake")
	t.Setenv("LIVENESS_WINDOW", "0")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 27900, cfg.HTTPPort)
	assert.Equal(t, backendRedis, cfg.Backend)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "quake", cfg.Redis.Prefix)
	assert.Zero(t, cfg.LivenessWindow)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_ExpiryDisabledAllowsZeroSweep(t *testing.T) {
	t.Setenv("LIVENESS_WINDOW", "0s")
	t.Setenv("SWEEP_INTERVAL", "0s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Zero(t, cfg.SweepInterval)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{name: "port not a number", env: map[string]string{"SERVICE_PORT_HTTP": "http"}, errContains: "parse env"},
		{name: "port zero", env: map[string]string{"SERVICE_PORT_HTTP": "0"}, errContains: "SERVICE_PORT_HTTP must be 1-65535"},
		{name: "port too large", env: map[string]string{"SERVICE_PORT_HTTP": "70000"}, errContains: "SERVICE_PORT_HTTP must be 1-65535"},
		{name: "unknown backend", env: map[string]string{"REGISTRY_BACKEND": "etcd"}, errContains: "REGISTRY_BACKEND must be memory or redis"},
		{name: "redis without addr", env: map[string]string{"REGISTRY_BACKEND": "redis", "REDIS_ADDR": ""}, errContains: "REDIS_ADDR is required"},
		{name: "negative window", env: map[string]string{"LIVENESS_WINDOW": "-1s"}, errContains: "LIVENESS_WINDOW must not be negative"},
		{name: "bad duration", env: map[string]string{"LIVENESS_WINDOW": "two minutes"}, errContains: "parse env"},
		{name: "zero sweep with expiry", env: map[string]string{"SWEEP_INTERVAL": "0s"}, errContains: "SWEEP_INTERVAL must be positive"},
		{name: "zero write timeout", env: map[string]string{"WRITE_TIMEOUT": "0s"}, errContains: "WRITE_TIMEOUT must be positive"},
		{name: "negative shutdown timeout", env: map[string]string{"SHUTDOWN_TIMEOUT": "-5s"}, errContains: "SHUTDOWN_TIMEOUT must be positive"},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "trace"}, errContains: "LOG_LEVEL must be"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
