package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

// AdminHandler serves the settings page, user management and the dashboard.
type AdminHandler struct {
	admins    ports.AdminService
	dashboard ports.DashboardService
}

func NewAdminHandler(admins ports.AdminService, dashboard ports.DashboardService) *AdminHandler {
	return &AdminHandler{admins: admins, dashboard: dashboard}
}

func toSettingsResponse(a *domain.Admin) settingsResponse {
	return settingsResponse{ID: a.ID, Username: a.Username, FullName: a.FullName}
}

// Settings handles GET /admin/api/settings.
//
// @Summary      Get account settings
// @Tags         admin-settings
// @Produce      json
// @Success      200  {object}  settingsResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/api/settings [get]
func (h *AdminHandler) Settings(c echo.Context) error {
	admin, err := h.admins.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingsResponse(admin))
}

// UpdateSettings handles PUT /admin/api/settings.
//
// @Summary      Update account settings
// @Tags         admin-settings
// @Accept       json
// @Produce      json
// @Param        body  body      settingsRequest  true  "Settings"
// @Success      200   {object}  settingsResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/api/settings [put]
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	admin, err := h.admins.UpdateSettings(c.Request().Context(), ports.SettingsInput{
		Username:        req.Username,
		FullName:        req.FullName,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingsResponse(admin))
}

// ListUsers handles GET /admin/api/users.
//
// @Summary      List admin users
// @Tags         admin-users
// @Produce      json
// @Success      200  {array}   domain.Admin
// @Failure      403  {object}  errorResponse
// @Router       /admin/api/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	admins, err := h.admins.ListAdmins(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admins)
}

// CreateUser handles POST /admin/api/users.
//
// @Summary      Create an admin user
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User"
// @Success      201   {object}  domain.Admin
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/api/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	admin, err := h.admins.CreateAdmin(c.Request().Context(), ports.CreateAdminInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, admin)
}

// UpdateUser handles PUT /admin/api/users/:id.
//
// @Summary      Edit an admin user
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Changes"
// @Success      200   {object}  domain.Admin
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/api/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	admin, err := h.admins.UpdateAdmin(c.Request().Context(), c.Param("id"), ports.UpdateAdminInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// SetUserActive handles PATCH /admin/api/users/:id/active.
//
// @Summary      Enable or disable an admin user
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "User ID"
// @Param        body  body      activeRequest  true  "Active flag"
// @Success      200   {object}  domain.Admin
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/api/users/{id}/active [patch]
func (h *AdminHandler) SetUserActive(c echo.Context) error {
	var req activeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	me, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if id == me.ID && !req.IsActive {
		return domain.ErrSelfDeactivate
	}

	admin, err := h.admins.SetActive(c.Request().Context(), id, req.IsActive)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, admin)
}

// Dashboard handles GET /admin/api/dashboard.
//
// @Summary      Dashboard counters and recent activity
// @Tags         admin-dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      500  {object}  errorResponse
// @Router       /admin/api/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		TotalPosts:      stats.TotalPosts,
		TotalEnquiries:  stats.TotalEnquiries,
		ActiveUpdates:   stats.ActiveUpdates,
		PendingContacts: stats.PendingContacts,
		RecentPosts:     stats.RecentPosts,
		RecentEnquiries: stats.RecentEnquiries,
		GeneratedAt:     time.Now().UTC(),
	})
}
