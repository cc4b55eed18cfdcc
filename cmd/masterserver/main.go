package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"masterserver/adapters/memory"
	"masterserver/adapters/myredis"
	"masterserver/interfaces"
	"masterserver/service"

	"github.com/go-kit/log/level"
)

func main() {
	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(os.Stderr, config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	level.Info(logger).Log("msg", "Starting master server")
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"registry_backend", config.Backend,
		"liveness_window", config.LivenessWindow,
	)

	clock := service.NewTimeProvider(func() time.Time { return time.Now().UTC() })

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()

	var registry interfaces.Registry
	switch config.Backend {
	case backendRedis:
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis", "prefix", config.Redis.Prefix)

		registry = myredis.NewRegistry(redisClient, config.Redis.Prefix, config.LivenessWindow)
	default:
		memoryRegistry := memory.NewRegistry(config.LivenessWindow, clock, logger)
		go memoryRegistry.Run(sweepCtx, config.SweepInterval)
		registry = memoryRegistry
	}

	// Create HTTP server (Echo)
	e, err := newEcho(config, registry, clock, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create HTTP server", "err", err)
		os.Exit(1)
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			select {
			case quit <- syscall.SIGTERM:
			default:
			}
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")

	// In-flight announces finish before the sweeper and store go away.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	stopSweeper()

	level.Info(logger).Log("msg", "Server stopped")
}
