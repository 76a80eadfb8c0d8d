package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radheonline/storefront/internal/core/ports"
)

// UpdateHandler serves news posts to the public site and the admin area.
type UpdateHandler struct {
	service ports.UpdateService
}

func NewUpdateHandler(service ports.UpdateService) *UpdateHandler {
	return &UpdateHandler{service: service}
}

func toUpdateInput(req updateRequest) ports.UpdateInput {
	return ports.UpdateInput{
		Title:            req.Title,
		CenterName:       req.CenterName,
		Description:      req.Description,
		Category:         req.Category,
		PublishDate:      req.PublishDate,
		IsPublished:      req.IsPublished,
		IsSliderFeatured: req.IsSliderFeatured,
	}
}

// ListPublished handles GET /v1/updates.
//
// @Summary      List published updates
// @Tags         updates
// @Produce      json
// @Success      200  {array}   domain.Update
// @Failure      500  {object}  errorResponse
// @Router       /v1/updates [get]
func (h *UpdateHandler) ListPublished(c echo.Context) error {
	updates, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updates)
}

// ListSlider handles GET /v1/updates/slider.
//
// @Summary      List homepage slider updates
// @Tags         updates
// @Produce      json
// @Success      200  {array}   domain.Update
// @Failure      500  {object}  errorResponse
// @Router       /v1/updates/slider [get]
func (h *UpdateHandler) ListSlider(c echo.Context) error {
	updates, err := h.service.ListSlider(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updates)
}

// Get handles GET /v1/updates/:id.
//
// @Summary      Get a published update
// @Tags         updates
// @Produce      json
// @Param        id   path      string  true  "Update ID"
// @Success      200  {object}  domain.Update
// @Failure      404  {object}  errorResponse
// @Router       /v1/updates/{id} [get]
func (h *UpdateHandler) Get(c echo.Context) error {
	u, err := h.service.GetPublished(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// List handles GET /admin/api/posts.
//
// @Summary      List all posts, drafts included
// @Tags         admin-posts
// @Produce      json
// @Success      200  {array}   domain.Update
// @Failure      401  {object}  errorResponse
// @Router       /admin/api/posts [get]
func (h *UpdateHandler) List(c echo.Context) error {
	updates, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updates)
}

// Create handles POST /admin/api/posts.
//
// @Summary      Create a post
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Param        body  body      updateRequest  true  "Post"
// @Success      201   {object}  domain.Update
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/api/posts [post]
func (h *UpdateHandler) Create(c echo.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	u, err := h.service.Create(c.Request().Context(), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

// Edit handles PUT /admin/api/posts/:id.
//
// @Summary      Edit a post
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Update ID"
// @Param        body  body      updateRequest  true  "Post"
// @Success      200   {object}  domain.Update
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/api/posts/{id} [put]
func (h *UpdateHandler) Edit(c echo.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	u, err := h.service.Edit(c.Request().Context(), c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// TogglePublished handles PATCH /admin/api/posts/:id/publish.
//
// @Summary      Toggle a post between published and draft
// @Tags         admin-posts
// @Produce      json
// @Param        id   path      string  true  "Update ID"
// @Success      200  {object}  domain.Update
// @Failure      404  {object}  errorResponse
// @Router       /admin/api/posts/{id}/publish [patch]
func (h *UpdateHandler) TogglePublished(c echo.Context) error {
	u, err := h.service.TogglePublished(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// ToggleSlider handles PATCH /admin/api/posts/:id/slider.
//
// @Summary      Toggle a post on the homepage slider
// @Tags         admin-posts
// @Produce      json
// @Param        id   path      string  true  "Update ID"
// @Success      200  {object}  domain.Update
// @Failure      404  {object}  errorResponse
// @Router       /admin/api/posts/{id}/slider [patch]
func (h *UpdateHandler) ToggleSlider(c echo.Context) error {
	u, err := h.service.ToggleSlider(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /admin/api/posts/:id.
//
// @Summary      Delete a post
// @Tags         admin-posts
// @Param        id   path  string  true  "Update ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /admin/api/posts/{id} [delete]
func (h *UpdateHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
