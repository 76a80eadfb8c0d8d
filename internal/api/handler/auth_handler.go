package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/radheonline/storefront/internal/api/middleware"
	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/session"
)

// AuthHandler exposes the request's session: sign in, sign out and status.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type identityResponse struct {
	Identity domain.Identity `json:"identity"`
}

type sessionResponse struct {
	State         string           `json:"state"`
	Authenticated bool             `json:"authenticated"`
	Identity      *domain.Identity `json:"identity,omitempty"`
}

func (h *AuthHandler) manager(c echo.Context) (*session.Manager, error) {
	m := middleware.SessionFrom(c)
	if m == nil {
		return nil, echo.NewHTTPError(http.StatusServiceUnavailable, "session loading")
	}
	return m, nil
}

// Login signs the browser in.
//
// @Summary      Sign in to the admin area
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  identityResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	m, err := h.manager(c)
	if err != nil {
		return err
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := m.Login(c.Request().Context(), strings.TrimSpace(req.Username), strings.TrimSpace(req.Password))
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, identityResponse{Identity: id})
	case errors.Is(err, session.ErrMissingCredentials):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, session.ErrAlreadyAuthenticated), errors.Is(err, session.ErrLoginSuperseded):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		// Credential mismatch and directory failures both leave the browser
		// signed out; only the message differs.
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
}

// Logout signs the browser out. It always succeeds.
//
// @Summary      Sign out of the admin area
// @Tags         auth
// @Success      204
// @Router       /admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	m, err := h.manager(c)
	if err != nil {
		return err
	}
	m.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session reports the browser's session state.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /admin/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	m := middleware.SessionFrom(c)
	if m == nil {
		return c.JSON(http.StatusOK, sessionResponse{State: session.StateUnknown.String()})
	}

	resp := sessionResponse{
		State:         m.State().String(),
		Authenticated: m.IsAuthenticated(),
	}
	if id, ok := m.Identity(); ok {
		resp.Identity = &id
	}
	return c.JSON(http.StatusOK, resp)
}
