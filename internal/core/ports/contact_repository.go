package ports

import (
	"context"

	"github.com/radheonline/storefront/internal/core/domain"
)

// ContactRepository defines persistence for enquiries.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	// List returns enquiries newest first; an empty status lists all of them.
	List(ctx context.Context, status domain.ContactStatus) ([]*domain.Contact, error)
	SetStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error)
	SetContacted(ctx context.Context, id string, contacted bool) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}
