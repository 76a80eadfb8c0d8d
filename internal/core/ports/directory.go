package ports

import (
	"context"

	"github.com/radheonline/storefront/internal/core/domain"
)

// Directory is the credential authority the session layer consults.
type Directory interface {
	// Authenticate returns the active admin matching username and password,
	// or domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.Admin, error)
	// Settings returns the first admin record.
	Settings(ctx context.Context) (*domain.Admin, error)
}
