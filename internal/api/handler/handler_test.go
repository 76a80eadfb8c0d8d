package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
	"github.com/radheonline/storefront/internal/core/session"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

// ── stub directory ───────────────────────────────────────────────────────────

type stubDirectory struct {
	err error
}

func (d *stubDirectory) Authenticate(_ context.Context, username, password string) (*domain.Admin, error) {
	if d.err != nil {
		return nil, d.err
	}
	if username == "admin" && password == "admin123" {
		return &domain.Admin{ID: "1", Username: "admin", Role: domain.RoleAdmin, IsActive: true}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func (d *stubDirectory) Settings(context.Context) (*domain.Admin, error) {
	return &domain.Admin{ID: "1", Username: "admin"}, nil
}

// withSession attaches a hydrated session over store to c.
func withSession(t *testing.T, c echo.Context, dir ports.Directory, store session.Storage) *session.Manager {
	t.Helper()
	m := session.New(dir, store)
	m.Hydrate(context.Background())
	c.Set("session", m)
	return m
}

// ── stub services ────────────────────────────────────────────────────────────

type stubUpdateService struct {
	ports.UpdateService
	listPublishedFn func(ctx context.Context) ([]*domain.Update, error)
	getFn           func(ctx context.Context, id string) (*domain.Update, error)
	createFn        func(ctx context.Context, in ports.UpdateInput) (*domain.Update, error)
	toggleFn        func(ctx context.Context, id string) (*domain.Update, error)
	deleteFn        func(ctx context.Context, id string) error
}

func (s *stubUpdateService) ListPublished(ctx context.Context) ([]*domain.Update, error) {
	return s.listPublishedFn(ctx)
}

func (s *stubUpdateService) GetPublished(ctx context.Context, id string) (*domain.Update, error) {
	return s.getFn(ctx, id)
}

func (s *stubUpdateService) Create(ctx context.Context, in ports.UpdateInput) (*domain.Update, error) {
	return s.createFn(ctx, in)
}

func (s *stubUpdateService) TogglePublished(ctx context.Context, id string) (*domain.Update, error) {
	return s.toggleFn(ctx, id)
}

func (s *stubUpdateService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubContactService struct {
	ports.ContactService
	submitFn    func(ctx context.Context, in ports.EnquiryInput) (*ports.EnquiryResult, error)
	listFn      func(ctx context.Context, f ports.EnquiryFilter) ([]*domain.Contact, error)
	setStatusFn func(ctx context.Context, id, status string) (*domain.Contact, error)
}

func (s *stubContactService) Submit(ctx context.Context, in ports.EnquiryInput) (*ports.EnquiryResult, error) {
	return s.submitFn(ctx, in)
}

func (s *stubContactService) List(ctx context.Context, f ports.EnquiryFilter) ([]*domain.Contact, error) {
	return s.listFn(ctx, f)
}

func (s *stubContactService) SetStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	return s.setStatusFn(ctx, id, status)
}

type stubAdminService struct {
	ports.AdminService
	updateSettingsFn func(ctx context.Context, in ports.SettingsInput) (*domain.Admin, error)
	createFn         func(ctx context.Context, in ports.CreateAdminInput) (*domain.Admin, error)
	setActiveFn      func(ctx context.Context, id string, active bool) (*domain.Admin, error)
}

func (s *stubAdminService) UpdateSettings(ctx context.Context, in ports.SettingsInput) (*domain.Admin, error) {
	return s.updateSettingsFn(ctx, in)
}

func (s *stubAdminService) CreateAdmin(ctx context.Context, in ports.CreateAdminInput) (*domain.Admin, error) {
	return s.createFn(ctx, in)
}

func (s *stubAdminService) SetActive(ctx context.Context, id string, active bool) (*domain.Admin, error) {
	return s.setActiveFn(ctx, id, active)
}

type stubDashboardService struct {
	stats *ports.DashboardStats
	err   error
}

func (s *stubDashboardService) Stats(context.Context) (*ports.DashboardStats, error) {
	return s.stats, s.err
}
