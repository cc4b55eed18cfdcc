package main

import (
	"fmt"

	"masterserver/api"
	"masterserver/handlers"
	"masterserver/interfaces"
	"masterserver/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// announceBodyLimit caps request bodies; announces carry everything in the query.
const announceBodyLimit = "1K"

// newEcho builds the HTTP front of the master server around registry.
func newEcho(config *MasterServerConfig, registry interfaces.Registry, clock interfaces.TimeProvider, logger log.Logger) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validator, err := service.NewOpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("create openapi validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = config.ReadTimeout
	e.Server.ReadTimeout = config.ReadTimeout
	e.Server.WriteTimeout = config.WriteTimeout
	e.Server.IdleTimeout = config.IdleTimeout

	service.RegisterErrorHandler(e, logger)
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(announceBodyLimit))
	e.Use(service.NewRequestLogger(logger))
	e.Use(validator)

	handlers.RegisterHandlers(e, handlers.NewHTTPServer(registry, clock, logger))
	return e, nil
}
