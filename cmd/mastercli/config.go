package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
)

// CLIConfig holds the announcer settings. Flags override the environment.
type CLIConfig struct {
	URL              string        `env:"MASTER_SERVER_URL" envDefault:"http://localhost:4242"`
	Name             string        `env:"SERVER_NAME"`
	Port             int           `env:"SERVER_PORT"`
	AnnounceInterval time.Duration `env:"ANNOUNCE_INTERVAL" envDefault:"30s"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
}

// LoadConfig reads the environment, then applies command line flags.
// It returns the remaining positional arguments.
func LoadConfig(args []string, output io.Writer) (*CLIConfig, []string, error) {
	var cfg CLIConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("mastercli", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: mastercli [flags] announce true|false | keepalive | list")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.URL, "url", cfg.URL, "master server base URL (MASTER_SERVER_URL)")
	fs.StringVar(&cfg.Name, "name", cfg.Name, "game server name (SERVER_NAME)")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "game server port (SERVER_PORT)")
	fs.DurationVar(&cfg.AnnounceInterval, "interval", cfg.AnnounceInterval, "keepalive announce interval (ANNOUNCE_INTERVAL)")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per request timeout (REQUEST_TIMEOUT)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if cfg.URL == "" {
		return nil, nil, fmt.Errorf("MASTER_SERVER_URL is required")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, nil, fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}
	return &cfg, fs.Args(), nil
}

// validateAnnouncer checks the settings needed to announce a game server.
func (c *CLIConfig) validateAnnouncer() error {
	if c.Name == "" {
		return fmt.Errorf("SERVER_NAME is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be 1-65535, got %d", c.Port)
	}
	return nil
}
