package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/radheonline/storefront/internal/api/metrics"
	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

type updateService struct {
	repo ports.UpdateRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewUpdateService returns an UpdateService implementation.
func NewUpdateService(repo ports.UpdateRepository, log zerolog.Logger) ports.UpdateService {
	return &updateService{repo: repo, log: log, now: time.Now}
}

func (s *updateService) ListPublished(ctx context.Context) ([]*domain.Update, error) {
	return s.list(ctx, ports.UpdateFilter{PublishedOnly: true})
}

func (s *updateService) ListSlider(ctx context.Context) ([]*domain.Update, error) {
	return s.list(ctx, ports.UpdateFilter{SliderOnly: true})
}

func (s *updateService) ListAll(ctx context.Context) ([]*domain.Update, error) {
	return s.list(ctx, ports.UpdateFilter{})
}

func (s *updateService) list(ctx context.Context, f ports.UpdateFilter) ([]*domain.Update, error) {
	updates, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	return updates, nil
}

// GetPublished hides drafts from the public site.
func (s *updateService) GetPublished(ctx context.Context, id string) (*domain.Update, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get update: %w", err)
	}
	if !u.IsPublished {
		return nil, domain.ErrUpdateNotFound
	}
	return u, nil
}

func (s *updateService) Create(ctx context.Context, in ports.UpdateInput) (*domain.Update, error) {
	now := s.now().UTC()
	u := &domain.Update{CreatedAt: now, IsPublished: true}
	if err := s.apply(u, in, now); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create update: %w", err)
	}
	metrics.UpdatesSavedTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("update_id", created.ID).Str("category", created.Category).Msg("update created")
	return created, nil
}

func (s *updateService) Edit(ctx context.Context, id string, in ports.UpdateInput) (*domain.Update, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("edit update: %w", err)
	}
	if err := s.apply(u, in, s.now().UTC()); err != nil {
		return nil, err
	}

	saved, err := s.repo.Replace(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("edit update: %w", err)
	}
	metrics.UpdatesSavedTotal.WithLabelValues("edit").Inc()
	return saved, nil
}

func (s *updateService) TogglePublished(ctx context.Context, id string) (*domain.Update, error) {
	return s.toggle(ctx, id, "publish", func(u *domain.Update) { u.IsPublished = !u.IsPublished })
}

func (s *updateService) ToggleSlider(ctx context.Context, id string) (*domain.Update, error) {
	return s.toggle(ctx, id, "slider", func(u *domain.Update) { u.IsSliderFeatured = !u.IsSliderFeatured })
}

func (s *updateService) toggle(ctx context.Context, id, op string, flip func(*domain.Update)) (*domain.Update, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle %s: %w", op, err)
	}
	flip(u)
	u.UpdatedAt = s.now().UTC()

	saved, err := s.repo.Replace(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("toggle %s: %w", op, err)
	}
	metrics.UpdatesSavedTotal.WithLabelValues(op).Inc()
	return saved, nil
}

func (s *updateService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete update: %w", err)
	}
	metrics.UpdatesSavedTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("update_id", id).Msg("update deleted")
	return nil
}

// apply copies the form onto u, filling the defaults for blank fields.
func (s *updateService) apply(u *domain.Update, in ports.UpdateInput, now time.Time) error {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = domain.CategoryGeneral
	}
	if !domain.ValidCategory(category) {
		return domain.ErrInvalidCategory
	}
	center := strings.TrimSpace(in.CenterName)
	if center == "" {
		center = domain.DefaultCenterName
	}
	date := strings.TrimSpace(in.PublishDate)
	if date == "" {
		date = now.Format(domain.PublishDateLayout)
	}

	u.Title = strings.TrimSpace(in.Title)
	u.Description = in.Description
	u.CenterName = center
	u.Category = category
	u.PublishDate = date
	if in.IsPublished != nil {
		u.IsPublished = *in.IsPublished
	}
	u.IsSliderFeatured = in.IsSliderFeatured
	u.UpdatedAt = now
	return nil
}
