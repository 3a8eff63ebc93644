package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"realestate-backend/internal/infrastructure/logger"
)

// RequestLogger writes one access-log line per request, at a level chosen by status.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler pick the status before we read it
				c.Error(err)
			}

			if log == nil {
				return nil
			}
			status := c.Response().Status
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			fields := []interface{}{
				"method", strings.ToUpper(c.Request().Method),
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if rid := c.Response().Header().Get(echo.HeaderXRequestID); rid != "" {
				fields = append(fields, "request_id", rid)
			}

			switch {
			case status >= 500:
				log.Error("HTTP request", fields...)
			case status >= 400:
				log.Warn("HTTP request", fields...)
			default:
				log.Info("HTTP request", fields...)
			}
			return nil
		}
	}
}
