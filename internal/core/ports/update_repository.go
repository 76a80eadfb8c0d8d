package ports

import (
	"context"

	"github.com/radheonline/storefront/internal/core/domain"
)

// UpdateFilter narrows a post listing. Zero value lists everything.
type UpdateFilter struct {
	PublishedOnly bool
	SliderOnly    bool
}

// UpdateRepository defines persistence for posts.
type UpdateRepository interface {
	Create(ctx context.Context, u *domain.Update) (*domain.Update, error)
	FindByID(ctx context.Context, id string) (*domain.Update, error)
	// List returns posts ordered by publish date, newest first.
	List(ctx context.Context, filter UpdateFilter) ([]*domain.Update, error)
	Replace(ctx context.Context, u *domain.Update) (*domain.Update, error)
	Delete(ctx context.Context, id string) error
}
