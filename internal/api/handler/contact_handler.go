package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/radheonline/storefront/internal/core/ports"
)

// ContactHandler takes enquiries from the public form and serves them to the admin area.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /v1/contacts.
//
// @Summary      Submit an enquiry
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body      enquiryRequest  true  "Enquiry"
// @Success      201   {object}  enquiryResponse
// @Success      200   {object}  enquiryResponse  "Duplicate inside the dedup window"
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/contacts [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req enquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.service.Submit(c.Request().Context(), ports.EnquiryInput{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Service:     req.Service,
		Message:     req.Message,
	})
	if err != nil {
		return err
	}
	if res.Duplicate {
		return c.JSON(http.StatusOK, enquiryResponse{
			Duplicate: true,
			Message:   "We already have your enquiry and will contact you soon.",
		})
	}
	return c.JSON(http.StatusCreated, enquiryResponse{
		Message: "Thank you! We will contact you soon.",
		Enquiry: res.Contact,
	})
}

// List handles GET /admin/api/enquiries.
//
// @Summary      List enquiries
// @Tags         admin-enquiries
// @Produce      json
// @Param        status  query     string  false  "all, pending or contacted"
// @Param        q       query     string  false  "Name or phone search"
// @Success      200     {array}   domain.Contact
// @Failure      400     {object}  errorResponse
// @Router       /admin/api/enquiries [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.service.List(c.Request().Context(), ports.EnquiryFilter{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("q"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

// SetStatus handles PATCH /admin/api/enquiries/:id/status.
//
// @Summary      Set enquiry status
// @Tags         admin-enquiries
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Enquiry ID"
// @Param        body  body      statusRequest  true  "Status"
// @Success      200   {object}  domain.Contact
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin/api/enquiries/{id}/status [patch]
func (h *ContactHandler) SetStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	contact, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// SetContacted handles PATCH /admin/api/enquiries/:id/contacted.
//
// @Summary      Mark an enquiry as called back
// @Tags         admin-enquiries
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Enquiry ID"
// @Param        body  body      contactedRequest  true  "Contacted flag"
// @Success      200   {object}  domain.Contact
// @Failure      404   {object}  errorResponse
// @Router       /admin/api/enquiries/{id}/contacted [patch]
func (h *ContactHandler) SetContacted(c echo.Context) error {
	var req contactedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	contact, err := h.service.SetContacted(c.Request().Context(), c.Param("id"), req.Contacted)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete handles DELETE /admin/api/enquiries/:id.
//
// @Summary      Delete an enquiry
// @Tags         admin-enquiries
// @Param        id   path  string  true  "Enquiry ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /admin/api/enquiries/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
