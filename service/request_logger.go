package service

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRequestLogger returns echo middleware that writes one go-kit record per request.
// Errors are passed to the global error handler first so the logged status is the one sent.
func NewRequestLogger(logger log.Logger) echo.MiddlewareFunc {
	logger = log.WithPrefix(logger, "component", "RequestLogger")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			keyvals := []interface{}{
				"msg", "HTTP request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"remote_addr", c.Request().RemoteAddr,
				"latency", v.Latency,
			}
			if v.Error != nil {
				keyvals = append(keyvals, "err", v.Error)
			}
			return level.Info(logger).Log(keyvals...)
		},
	})
}
