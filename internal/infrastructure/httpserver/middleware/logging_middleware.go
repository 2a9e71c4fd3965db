package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware emits one structured line per completed request.
// Probe traffic (health checks, metric scrapes) is skipped to keep the
// logs about actual API usage.
type LoggingMiddleware struct {
	logger *logrus.Logger
}

func NewLoggingMiddleware(logger *logrus.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

func (m *LoggingMiddleware) RequestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if m.logger == nil || path == "/health" || path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			m.logger.WithFields(logrus.Fields{
				"method":      c.Request().Method,
				"path":        path,
				"status":      c.Response().Status,
				"duration_ms": time.Since(start).Milliseconds(),
				"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
			}).Info("request completed")

			return err
		}
	}
}
