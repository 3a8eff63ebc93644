package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"realestate-backend/pkg/id"
)

// RequestID echoes a client-supplied X-Request-Id or issues a 32-hex one.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: id.NewID32,
	})
}
