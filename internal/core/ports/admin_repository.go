package ports

import (
	"context"

	"github.com/radheonline/storefront/internal/core/domain"
)

// AdminRepository defines persistence for operator accounts.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	// First returns the oldest admin record, the one the settings page edits.
	First(ctx context.Context) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	Update(ctx context.Context, id string, changes AdminChanges) (*domain.Admin, error)
}

// AdminChanges is a partial update; nil fields are left untouched.
type AdminChanges struct {
	Username     *string
	FullName     *string
	PasswordHash *string
	Role         *string
	IsActive     *bool
}
