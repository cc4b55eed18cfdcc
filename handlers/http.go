// Package handlers contains http handlers for the master server.
package handlers

import (
	"fmt"
	"net/http"

	"masterserver/interfaces"
	"masterserver/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface on top of a Registry.
type HTTPServer struct {
	registry interfaces.Registry
	clock    interfaces.TimeProvider
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer. Panics on nil dependencies.
func NewHTTPServer(registry interfaces.Registry, clock interfaces.TimeProvider, logger log.Logger) *HTTPServer {
	logger = service.NilPanic(logger, "handlers.http.go: logger is required")
	return &HTTPServer{
		registry: service.NilPanic(registry, "handlers.http.go: registry is required"),
		clock:    service.NilPanic(clock, "handlers.http.go: clock is required"),
		logger:   log.WithPrefix(logger, "component", "HTTPServer"),
	}
}

// Announce (POST /?name=&port=&active=) upserts or removes the caller's record.
// The host is the connection peer; request content never overrides it.
// Returns 200 on success, 400 on parse/validation error, 500 on registry error.
func (h *HTTPServer) Announce(ectx echo.Context, params AnnounceParams) error {
	req := ectx.Request()
	host, err := peerHost(req.RemoteAddr)
	if err != nil {
		return fmt.Errorf("announce failed to resolve caller address, err: %w", err)
	}

	announce, err := fromAnnounceParams(params, host)
	if err != nil {
		return fmt.Errorf("announce from %s rejected, err: %w", host, err)
	}

	// Nothing has been applied yet; a caller that went away gets no mutation.
	ctx := req.Context()
	if err := ctx.Err(); err != nil {
		return service.NewBadParameterError("request cancelled", err)
	}

	key := announce.Key()
	if announce.Active {
		if err := h.registry.Upsert(ctx, announce.Record(h.clock.Now())); err != nil {
			return fmt.Errorf("announce failed to upsert server (key='%s'), err: %w", key, err)
		}
	} else {
		if err := h.registry.Remove(ctx, key); err != nil {
			return fmt.Errorf("announce failed to remove server (key='%s'), err: %w", key, err)
		}
	}

	level.Debug(h.logger).Log(
		"msg", "Announce applied",
		"key", key,
		"name", announce.Name,
		"active", announce.Active,
	)
	return ectx.NoContent(http.StatusOK)
}

// ListServers (GET /) returns a snapshot of the registry as a JSON array.
func (h *HTTPServer) ListServers(ectx echo.Context) error {
	records, err := h.registry.Snapshot(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("listServers failed to snapshot registry, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toServerListResponse(records))
}

// Health (GET /healthz) reports liveness and the number of listed servers.
func (h *HTTPServer) Health(ectx echo.Context) error {
	records, err := h.registry.Snapshot(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("health failed to snapshot registry, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok", Servers: len(records)})
}
