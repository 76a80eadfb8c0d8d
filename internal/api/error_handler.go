package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/radheonline/storefront/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

// domainErrors maps sentinel errors to status codes. The sentinel's own text is
// rendered, never the wrapped chain.
var domainErrors = []struct {
	err  error
	code int
}{
	{domain.ErrUpdateNotFound, http.StatusNotFound},
	{domain.ErrContactNotFound, http.StatusNotFound},
	{domain.ErrAdminNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrAdminExists, http.StatusConflict},
	{domain.ErrSelfDeactivate, http.StatusConflict},
	{domain.ErrInvalidPhone, http.StatusBadRequest},
	{domain.ErrInvalidService, http.StatusBadRequest},
	{domain.ErrInvalidStatus, http.StatusBadRequest},
	{domain.ErrInvalidCategory, http.StatusBadRequest},
	{domain.ErrInvalidRole, http.StatusBadRequest},
	{domain.ErrIncompleteAdmin, http.StatusBadRequest},
	{domain.ErrPasswordMismatch, http.StatusBadRequest},
	{domain.ErrPasswordTooLong, http.StatusBadRequest},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	for _, m := range domainErrors {
		if errors.Is(err, m.err) {
			return m.code, m.err.Error()
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
