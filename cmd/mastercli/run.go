package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"masterserver/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var errUsage = errors.New("usage: mastercli [flags] announce true|false | keepalive | list")

// run executes one command against master.
func run(ctx context.Context, cfg *CLIConfig, args []string, master interfaces.MasterServer, stdout io.Writer, logger log.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "announce":
		if len(args) != 2 {
			return errUsage
		}
		active, err := parseActiveArg(args[1])
		if err != nil {
			return err
		}
		if err := cfg.validateAnnouncer(); err != nil {
			return err
		}
		return announce(ctx, cfg, master, active)
	case "keepalive":
		if len(args) != 1 {
			return errUsage
		}
		if err := cfg.validateAnnouncer(); err != nil {
			return err
		}
		return keepalive(ctx, cfg, master, logger)
	case "list":
		if len(args) != 1 {
			return errUsage
		}
		return list(ctx, cfg, master, stdout)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func parseActiveArg(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("announce expects true or false, got %q", s)
	}
}

func announce(ctx context.Context, cfg *CLIConfig, master interfaces.MasterServer, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	if err := master.Announce(ctx, cfg.Name, cfg.Port, active); err != nil {
		return fmt.Errorf("announce %s:%d active=%t: %w", cfg.Name, cfg.Port, active, err)
	}
	return nil
}

// keepalive announces every AnnounceInterval until ctx is done, then withdraws.
// Failed refreshes are logged and retried on the next tick.
func keepalive(ctx context.Context, cfg *CLIConfig, master interfaces.MasterServer, logger log.Logger) error {
	if cfg.AnnounceInterval <= 0 {
		return fmt.Errorf("ANNOUNCE_INTERVAL must be positive, got %s", cfg.AnnounceInterval)
	}
	logger = log.With(logger, "name", cfg.Name, "port", cfg.Port)

	ticker := time.NewTicker(cfg.AnnounceInterval)
	defer ticker.Stop()

	for {
		if err := announce(ctx, cfg, master, true); err != nil {
			if ctx.Err() == nil {
				level.Warn(logger).Log("msg", "Announce failed", "err", err)
			}
		} else {
			level.Debug(logger).Log("msg", "Announced")
		}

		select {
		case <-ctx.Done():
			level.Info(logger).Log("msg", "Withdrawing from master server")
			return announce(context.WithoutCancel(ctx), cfg, master, false)
		case <-ticker.C:
		}
	}
}

func list(ctx context.Context, cfg *CLIConfig, master interfaces.MasterServer, stdout io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	records, err := master.ListServers(ctx)
	if err != nil {
		return fmt.Errorf("list servers: %w", err)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(stdout, "%s\t%s\n", r.Name, net.JoinHostPort(r.Host, strconv.Itoa(r.Port))); err != nil {
			return err
		}
	}
	return nil
}
