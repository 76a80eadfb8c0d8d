package ports

import (
	"context"

	"github.com/radheonline/storefront/internal/core/domain"
)

// SettingsInput carries the settings form. A blank NewPassword keeps the current password.
type SettingsInput struct {
	Username        string
	FullName        string
	NewPassword     string
	ConfirmPassword string
}

// CreateAdminInput carries a new operator account.
type CreateAdminInput struct {
	Username string
	Password string
	Role     string
}

// UpdateAdminInput edits an operator account; empty fields are left untouched.
type UpdateAdminInput struct {
	Username string
	Password string
	Role     string
}

// AdminService covers the settings page and user management.
type AdminService interface {
	Directory
	UpdateSettings(ctx context.Context, in SettingsInput) (*domain.Admin, error)
	ListAdmins(ctx context.Context) ([]*domain.Admin, error)
	CreateAdmin(ctx context.Context, in CreateAdminInput) (*domain.Admin, error)
	UpdateAdmin(ctx context.Context, id string, in UpdateAdminInput) (*domain.Admin, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.Admin, error)
}
