package ports

import (
	"context"

	"github.com/radheonline/storefront/internal/core/domain"
)

// UpdateInput is the post form. Empty CenterName, Category and PublishDate get
// defaults. A nil IsPublished means published on create and unchanged on edit.
type UpdateInput struct {
	Title            string
	CenterName       string
	Description      string
	Category         string
	PublishDate      string
	IsPublished      *bool
	IsSliderFeatured bool
}

// UpdateService defines use cases for posts.
type UpdateService interface {
	ListPublished(ctx context.Context) ([]*domain.Update, error)
	ListSlider(ctx context.Context) ([]*domain.Update, error)
	GetPublished(ctx context.Context, id string) (*domain.Update, error)

	ListAll(ctx context.Context) ([]*domain.Update, error)
	Create(ctx context.Context, in UpdateInput) (*domain.Update, error)
	Edit(ctx context.Context, id string, in UpdateInput) (*domain.Update, error)
	TogglePublished(ctx context.Context, id string) (*domain.Update, error)
	ToggleSlider(ctx context.Context, id string) (*domain.Update, error)
	Delete(ctx context.Context, id string) error
}
