package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/radheonline/storefront/internal/core/session"
)

type gateResponse struct {
	Error string `json:"error"`
	Login string `json:"login,omitempty"`
}

// RequireSession guards protected routes. A session that has not resolved yet
// is answered with 503 and never redirected; a signed-out one is sent to
// loginPath, as a redirect for browsers and as 401 for API clients.
func RequireSession(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := session.StateUnknown
			if m := SessionFrom(c); m != nil {
				state = m.State()
			}

			switch state {
			case session.StateAuthenticated:
				return next(c)
			case session.StateUnauthenticated:
				if wantsHTML(c.Request()) {
					return c.Redirect(http.StatusFound, loginPath)
				}
				c.Response().Header().Set(echo.HeaderLocation, loginPath)
				return c.JSON(http.StatusUnauthorized, gateResponse{Error: "authentication required", Login: loginPath})
			default:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, gateResponse{Error: "session loading"})
			}
		}
	}
}

func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
