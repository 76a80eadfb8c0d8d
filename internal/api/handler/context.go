package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radheonline/storefront/internal/api/middleware"
	"github.com/radheonline/storefront/internal/core/domain"
)

// ctxIdentity returns the signed-in identity of the request. Handlers mounted
// behind RequireSession always have one; its absence means the route was wired
// without the gate.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	m := middleware.SessionFrom(c)
	if m == nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	id, ok := m.Identity()
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return id, nil
}
