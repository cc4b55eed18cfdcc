package handlers

import (
	"net/url"

	"masterserver/service"

	"github.com/labstack/echo/v4"
)

// ServerInfo is one element of the listing response.
type ServerInfo struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// ServerListResponse is the body of GET /. It is a set; order is not significant.
type ServerListResponse []ServerInfo

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Servers int    `json:"servers"`
}

// AnnounceParams defines parameters for Announce. Absent parameters are nil.
type AnnounceParams struct {
	Name   *string `form:"name,omitempty" json:"name,omitempty"`
	Port   *string `form:"port,omitempty" json:"port,omitempty"`
	Active *string `form:"active,omitempty" json:"active,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List announced game servers
	// (GET /)
	ListServers(ctx echo.Context) error
	// Announce or withdraw the calling game server
	// (POST /)
	Announce(ctx echo.Context, params AnnounceParams) error
	// Liveness probe
	// (GET /healthz)
	Health(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListServers converts echo context to params.
func (w *ServerInterfaceWrapper) ListServers(ctx echo.Context) error {
	return w.Handler.ListServers(ctx)
}

// Announce converts echo context to params. The raw query must parse as a whole;
// echo's QueryParams silently drops malformed pairs.
func (w *ServerInterfaceWrapper) Announce(ctx echo.Context) error {
	query, err := url.ParseQuery(ctx.Request().URL.RawQuery)
	if err != nil {
		return service.NewBadParameterError("malformed query string", err)
	}

	var params AnnounceParams
	params.Name = firstValue(query, "name")
	params.Port = firstValue(query, "port")
	params.Active = firstValue(query, "active")

	return w.Handler.Announce(ctx, params)
}

// Health converts echo context to params.
func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

func firstValue(query url.Values, name string) *string {
	values, ok := query[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/", wrapper.ListServers)
	router.POST(baseURL+"/", wrapper.Announce)
	router.GET(baseURL+"/healthz", wrapper.Health)
}
