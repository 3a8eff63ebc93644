package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// ---- request parsing helpers ----

func pathID(c echo.Context, name string) (uint64, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, invalidParam(name, "must be a positive integer")
	}
	return n, nil
}

// queryInt returns nil when the parameter is absent.
func queryInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalidParam(name, "must be an integer")
	}
	return &n, nil
}

func queryBool(c echo.Context, name string, def bool) (bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, invalidParam(name, "must be a boolean")
	}
	return b, nil
}

func success(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
