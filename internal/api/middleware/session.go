package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/radheonline/storefront/internal/core/ports"
	"github.com/radheonline/storefront/internal/core/session"
)

const sessionContextKey = "session"

// StorageFactory opens the session storage of the browser behind c.
type StorageFactory func(c echo.Context) (session.Storage, error)

// SessionConfig wires the Session middleware.
type SessionConfig struct {
	Directory ports.Directory
	Storage   StorageFactory
	// Key is the storage key of the identity blob; session.DefaultKey when empty.
	Key      string
	Logger   zerolog.Logger
	Observer session.Observer
}

// Session builds a session.Manager for every request, hydrates it from the
// browser's storage and exposes it through SessionFrom.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			store, err := cfg.Storage(c)
			if err != nil {
				cfg.Logger.Error().Err(err).Msg("open session storage")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session storage unavailable")
			}

			log := cfg.Logger.With().
				Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
				Logger()
			m := session.New(cfg.Directory, store,
				session.WithKey(cfg.Key),
				session.WithLogger(log),
				session.WithObserver(cfg.Observer),
			)
			m.Hydrate(c.Request().Context())

			c.Set(sessionContextKey, m)
			return next(c)
		}
	}
}

// SessionFrom returns the request's session, or nil when the Session
// middleware did not run.
func SessionFrom(c echo.Context) *session.Manager {
	m, _ := c.Get(sessionContextKey).(*session.Manager)
	return m
}
