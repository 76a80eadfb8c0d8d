package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/radheonline/storefront/internal/core/domain"
	"github.com/radheonline/storefront/internal/core/ports"
)

func newTestUpdateService(repo *stubUpdateRepo) *updateService {
	svc := NewUpdateService(repo, zerolog.Nop()).(*updateService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestUpdateService_Create_Defaults(t *testing.T) {
	svc := newTestUpdateService(newStubUpdateRepo())

	u, err := svc.Create(context.Background(), ports.UpdateInput{Title: "  New PAN rules  "})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected id")
	}
	if u.Title != "New PAN rules" {
		t.Errorf("title not trimmed: %q", u.Title)
	}
	if u.CenterName != domain.DefaultCenterName {
		t.Errorf("unexpected center: %q", u.CenterName)
	}
	if u.Category != domain.CategoryGeneral {
		t.Errorf("unexpected category: %q", u.Category)
	}
	if u.PublishDate != "2024-03-15" {
		t.Errorf("unexpected publish date: %q", u.PublishDate)
	}
	if !u.IsPublished || u.IsSliderFeatured {
		t.Errorf("unexpected flags: %+v", u)
	}
}

func TestUpdateService_Create_Draft(t *testing.T) {
	svc := newTestUpdateService(newStubUpdateRepo())
	draft := false

	u, err := svc.Create(context.Background(), ports.UpdateInput{Title: "x", IsPublished: &draft})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if u.IsPublished {
		t.Fatal("expected draft")
	}
}

func TestUpdateService_Create_InvalidCategory(t *testing.T) {
	repo := newStubUpdateRepo()
	svc := newTestUpdateService(repo)

	if _, err := svc.Create(context.Background(), ports.UpdateInput{Title: "x", Category: "Lottery"}); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if len(repo.updates) != 0 {
		t.Fatal("nothing should be written")
	}
}

func TestUpdateService_PublicListings(t *testing.T) {
	repo := newStubUpdateRepo(
		&domain.Update{ID: "a", PublishDate: "2024-01-01", IsPublished: true, IsSliderFeatured: true},
		&domain.Update{ID: "b", PublishDate: "2024-02-01", IsPublished: true},
		&domain.Update{ID: "c", PublishDate: "2024-03-01", IsPublished: false, IsSliderFeatured: true},
	)
	svc := newTestUpdateService(repo)
	ctx := context.Background()

	published, err := svc.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}
	if len(published) != 2 || published[0].ID != "b" {
		t.Fatalf("unexpected published listing: %+v", published)
	}

	slider, err := svc.ListSlider(ctx)
	if err != nil {
		t.Fatalf("ListSlider: %v", err)
	}
	if len(slider) != 1 || slider[0].ID != "a" {
		t.Fatalf("draft must not reach the slider: %+v", slider)
	}

	if _, err := svc.GetPublished(ctx, "c"); !errors.Is(err, domain.ErrUpdateNotFound) {
		t.Fatalf("draft should be hidden, got %v", err)
	}
	if _, err := svc.GetPublished(ctx, "b"); err != nil {
		t.Fatalf("GetPublished: %v", err)
	}

	all, err := svc.ListAll(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("ListAll: %d %v", len(all), err)
	}
}

func TestUpdateService_Toggles(t *testing.T) {
	repo := newStubUpdateRepo(&domain.Update{ID: "a", IsPublished: true})
	svc := newTestUpdateService(repo)
	ctx := context.Background()

	u, err := svc.TogglePublished(ctx, "a")
	if err != nil || u.IsPublished {
		t.Fatalf("expected unpublished, got %+v %v", u, err)
	}
	u, err = svc.ToggleSlider(ctx, "a")
	if err != nil || !u.IsSliderFeatured {
		t.Fatalf("expected featured, got %+v %v", u, err)
	}
	if _, err := svc.TogglePublished(ctx, "missing"); !errors.Is(err, domain.ErrUpdateNotFound) {
		t.Fatalf("expected ErrUpdateNotFound, got %v", err)
	}
}

func TestUpdateService_EditAndDelete(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := newStubUpdateRepo(&domain.Update{ID: "a", Title: "old", CreatedAt: created})
	svc := newTestUpdateService(repo)
	ctx := context.Background()

	u, err := svc.Edit(ctx, "a", ports.UpdateInput{Title: "new", Category: domain.CategoryAadhaar, PublishDate: "2024-01-05"})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if u.IsPublished {
		t.Error("nil IsPublished must keep the draft state on edit")
	}
	if u.Title != "new" || u.Category != domain.CategoryAadhaar || u.PublishDate != "2024-01-05" {
		t.Fatalf("unexpected edit result: %+v", u)
	}
	if !u.CreatedAt.Equal(created) {
		t.Errorf("edit must keep created_at, got %v", u.CreatedAt)
	}

	if err := svc.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "a"); !errors.Is(err, domain.ErrUpdateNotFound) {
		t.Fatalf("expected ErrUpdateNotFound, got %v", err)
	}
}
